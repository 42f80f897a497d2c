// Package bridge connects the in-memory store to the remote document store.
//
// On sign-in it binds the user's namespace and opens one live subscription
// per collection. Every snapshot a subscription delivers replaces the
// matching store collection wholesale. On sign-out everything is torn down
// again.
package bridge

import (
	"errors"
	"sync"

	"github.com/fintrack-app/backend/internal/docstore"
	"github.com/fintrack-app/backend/internal/store"
	"github.com/rs/zerolog/log"
)

// Bridge wires one Store to one docstore Client. Start and Stop may be
// called repeatedly, switching namespaces tears the previous one down first.
type Bridge struct {
	client *docstore.Client
	store  *store.Store

	mu           sync.Mutex
	namespace    string
	unsubscribes []func()
}

func New(client *docstore.Client, s *store.Store) *Bridge {
	return &Bridge{
		client: client,
		store:  s,
	}
}

// Namespace returns the namespace the bridge is currently serving, or ""
// when stopped.
func (b *Bridge) Namespace() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.namespace
}

// Start binds the store to the namespace and opens the live subscriptions.
// Collections whose subscription cannot be opened are marked as failed in
// the store, the others keep working. The returned error joins all
// subscription failures.
func (b *Bridge) Start(namespace string) error {
	b.stop()

	b.mu.Lock()
	defer b.mu.Unlock()

	incomeSources := docstore.IncomeSources(b.client, namespace)
	expenses := docstore.Expenses(b.client, namespace)
	goals := docstore.Goals(b.client, namespace)
	appointments := docstore.Appointments(b.client, namespace)

	b.store.Bind(store.Remotes{
		IncomeSources: incomeSources,
		Expenses:      expenses,
		Goals:         goals,
		Appointments:  appointments,
	})
	b.namespace = namespace

	var errs []error

	subscribe := func(name string, open func() (func(), error)) {
		unsubscribe, err := open()
		if err != nil {
			log.Error().Err(err).Str("collection", name).Str("namespace", namespace).Msg("opening subscription failed")
			b.store.MarkSyncFailed(name)
			errs = append(errs, err)
			return
		}
		b.unsubscribes = append(b.unsubscribes, unsubscribe)
	}

	subscribe(store.CollectionIncomeSources, func() (func(), error) {
		return incomeSources.Subscribe(b.store.ReplaceIncomeSources)
	})
	subscribe(store.CollectionExpenses, func() (func(), error) {
		return expenses.Subscribe(b.store.ReplaceExpenses)
	})
	subscribe(store.CollectionGoals, func() (func(), error) {
		return goals.Subscribe(b.store.ReplaceGoals)
	})
	subscribe(store.CollectionAppointments, func() (func(), error) {
		return appointments.Subscribe(b.store.ReplaceAppointments)
	})

	log.Info().Str("namespace", namespace).Int("subscriptions", len(b.unsubscribes)).Msg("bridge started")

	return errors.Join(errs...)
}

// Stop closes all subscriptions and unbinds the store. Stopping a stopped
// bridge is a no-op.
func (b *Bridge) Stop() {
	b.stop()
}

func (b *Bridge) stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.namespace == "" {
		return
	}

	for _, unsubscribe := range b.unsubscribes {
		unsubscribe()
	}
	b.unsubscribes = nil

	b.store.Unbind()

	log.Info().Str("namespace", b.namespace).Msg("bridge stopped")
	b.namespace = ""
}

// HandleIdentity is meant to be registered with identity.Service.OnChange.
// It follows sign-in and sign-out events with Start and Stop.
func (b *Bridge) HandleIdentity(userID string, signedIn bool) {
	if !signedIn {
		b.Stop()
		return
	}

	if err := b.Start(userID); err != nil {
		log.Error().Err(err).Str("namespace", userID).Msg("starting bridge after sign-in failed")
	}
}
