package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/fintrack-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Remote is the part of the sync adapter a collection mutates through.
// Subscriptions are handled by the bridge, not by the store.
type Remote[T models.Document] interface {
	Save(ctx context.Context, record T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SyncState describes the health of a collection's live subscription.
type SyncState string

const (
	SyncUnsynced SyncState = "unsynced" // no snapshot received yet
	SyncLive     SyncState = "live"     // subscription established, snapshots arriving
	SyncFailed   SyncState = "failed"   // subscription could not be established
)

// collection holds the in-memory records of one record type.
//
// Mutations are optimistic: the local change is applied first, then mirrored
// to the remote. A failed remote call rolls the local change back, unless a
// later mutation or snapshot superseded it. epoch changes with every
// wholesale replacement, gens track per-record mutation generations, version
// changes with every modification of the slice.
type collection[T models.Document] struct {
	name string

	mu      sync.Mutex
	records []T
	remote  Remote[T]
	epoch   uint64
	version uint64
	gens    map[uuid.UUID]uint64
	state   SyncState
}

func newCollection[T models.Document](name string) *collection[T] {
	return &collection[T]{
		name:  name,
		gens:  make(map[uuid.UUID]uint64),
		state: SyncUnsynced,
	}
}

func (c *collection[T]) bind(remote Remote[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remote = remote
}

// unbind detaches the remote and drops all records. Domain records are never
// kept across namespace changes, they are re-hydrated by the next snapshot.
func (c *collection[T]) unbind() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remote = nil
	c.records = nil
	c.epoch++
	c.version++
	c.gens = make(map[uuid.UUID]uint64)
	c.state = SyncUnsynced
}

// replaceAll overwrites the collection with a snapshot. The snapshot always
// wins: every pending rollback is superseded.
func (c *collection[T]) replaceAll(records []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = slices.Clone(records)
	c.epoch++
	c.version++
	c.gens = make(map[uuid.UUID]uint64)
	c.state = SyncLive
}

func (c *collection[T]) markSyncFailed() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = SyncFailed
}

func (c *collection[T]) syncState() SyncState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *collection[T]) all() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.records)
}

func (c *collection[T]) byID(id uuid.UUID) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.records, func(r T) bool { return r.DocumentID() == id })
	if idx < 0 {
		var zero T
		return zero, false
	}

	return c.records[idx], true
}

// addRecord appends the record optimistically and mirrors it to the remote.
// On remote failure the record is removed again and ErrRemote returned.
func addRecord[T models.Document](ctx context.Context, c *collection[T], record T) (T, error) {
	var zero T
	id := record.DocumentID()

	c.mu.Lock()
	if c.remote == nil {
		c.mu.Unlock()
		return zero, ErrNoNamespace
	}

	c.records = append(c.records, record)
	c.version++
	c.gens[id]++
	remote, epoch, gen := c.remote, c.epoch, c.gens[id]
	c.mu.Unlock()

	if err := remote.Save(ctx, record); err != nil {
		c.mu.Lock()
		if c.epoch == epoch && c.gens[id] == gen {
			idx := slices.IndexFunc(c.records, func(r T) bool { return r.DocumentID() == id })
			if idx >= 0 {
				c.records = slices.Delete(c.records, idx, idx+1)
				c.version++
			}
		}
		c.mu.Unlock()

		log.Warn().Err(err).Str("collection", c.name).Stringer("id", id).Msg("add rolled back")
		return zero, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	return record, nil
}

// updateRecord applies mutate to the record optimistically and mirrors the
// result to the remote. On remote failure the complete pre-call state of the
// collection is restored, not just the one record, unless a later mutation
// interleaved; then only the stale record itself is put back.
func updateRecord[T models.Document](ctx context.Context, c *collection[T], id uuid.UUID, mutate func(*T)) (T, error) {
	var zero T

	c.mu.Lock()
	if c.remote == nil {
		c.mu.Unlock()
		return zero, ErrNoNamespace
	}

	idx := slices.IndexFunc(c.records, func(r T) bool { return r.DocumentID() == id })
	if idx < 0 {
		c.mu.Unlock()
		return zero, ErrNotFound
	}

	snapshot := slices.Clone(c.records)
	previous := c.records[idx]
	mutate(&c.records[idx])
	updated := c.records[idx]
	c.version++
	c.gens[id]++
	remote, epoch, gen, version := c.remote, c.epoch, c.gens[id], c.version
	c.mu.Unlock()

	if err := remote.Save(ctx, updated); err != nil {
		c.mu.Lock()
		if c.epoch == epoch && c.gens[id] == gen {
			if c.version == version {
				c.records = snapshot
			} else if i := slices.IndexFunc(c.records, func(r T) bool { return r.DocumentID() == id }); i >= 0 {
				c.records[i] = previous
			}
			c.version++
		}
		c.mu.Unlock()

		log.Warn().Err(err).Str("collection", c.name).Stringer("id", id).Msg("update rolled back")
		return zero, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	return updated, nil
}

// deleteRecord removes the record optimistically and mirrors the deletion to
// the remote. Deleting an ID that does not exist is a no-op. On remote
// failure the record is put back, its position is not preserved.
func deleteRecord[T models.Document](ctx context.Context, c *collection[T], id uuid.UUID) error {
	c.mu.Lock()
	if c.remote == nil {
		c.mu.Unlock()
		return ErrNoNamespace
	}

	idx := slices.IndexFunc(c.records, func(r T) bool { return r.DocumentID() == id })
	if idx < 0 {
		c.mu.Unlock()
		return nil
	}

	previous := c.records[idx]
	c.records = slices.Delete(c.records, idx, idx+1)
	c.version++
	c.gens[id]++
	remote, epoch, gen := c.remote, c.epoch, c.gens[id]
	c.mu.Unlock()

	if err := remote.Delete(ctx, id); err != nil {
		c.mu.Lock()
		if c.epoch == epoch && c.gens[id] == gen {
			c.records = append(c.records, previous)
			c.version++
		}
		c.mu.Unlock()

		log.Warn().Err(err).Str("collection", c.name).Stringer("id", id).Msg("delete rolled back")
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}

	return nil
}
