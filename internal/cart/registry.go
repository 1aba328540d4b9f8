package cart

import "sync"

// Registry maps session ids to their carts. State is process-scoped:
// carts vanish on restart and are never persisted.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Store
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Store)}
}

// Get returns the cart for the session, creating it on first use.
func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.carts[sessionID]
	if !ok {
		store = NewStore()
		r.carts[sessionID] = store
	}
	return store
}
