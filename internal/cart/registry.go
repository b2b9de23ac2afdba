package cart

import "sync"

// Registry holds the live cart for each signed-in user so the HTTP layer
// can serve cart reads and writes across requests. Carts are session
// state only; they are never persisted.
type Registry struct {
	mu sync.RWMutex
	m  map[string]Cart
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]Cart)}
}

// Get returns the user's current cart snapshot, empty if none exists.
func (r *Registry) Get(userID string) Cart {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.m[userID]; ok {
		return c
	}
	return Cart{}
}

// Put stores a new snapshot for the user.
func (r *Registry) Put(userID string, c Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[userID] = c
}

// Mutate applies fn to the user's cart under the registry lock and
// stores the returned snapshot. It returns the new snapshot.
func (r *Registry) Mutate(userID string, fn func(Cart) Cart) Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.m[userID]
	if !ok {
		cur = Cart{}
	}
	next := fn(cur)
	r.m[userID] = next
	return next
}

// Drop discards the user's cart.
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, userID)
}
