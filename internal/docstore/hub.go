package docstore

import "sync"

// hub broadcasts change notifications for (namespace, collection) pairs.
// Listeners are notified synchronously after every successful mutation.
type hub struct {
	mu        sync.Mutex
	seq       uint64
	listeners map[string]map[uint64]func()
}

func newHub() *hub {
	return &hub{
		listeners: make(map[string]map[uint64]func()),
	}
}

// subscribe registers notify for a key and returns a function that
// removes the registration.
func (h *hub) subscribe(key string, notify func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	id := h.seq

	if h.listeners[key] == nil {
		h.listeners[key] = make(map[uint64]func())
	}
	h.listeners[key][id] = notify

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		delete(h.listeners[key], id)
		if len(h.listeners[key]) == 0 {
			delete(h.listeners, key)
		}
	}
}

// publish notifies all listeners registered for the key.
func (h *hub) publish(key string) {
	h.mu.Lock()
	notify := make([]func(), 0, len(h.listeners[key]))
	for _, n := range h.listeners[key] {
		notify = append(notify, n)
	}
	h.mu.Unlock()

	for _, n := range notify {
		n()
	}
}
