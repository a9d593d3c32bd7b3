package cart

import (
	"sync"

	"github.com/storefront/cartsync/internal/domain/cart"
)

// Runtime is the per-user cart state held by this process: the last-synced
// cart snapshot, the order-history snapshot, and the selection set. The
// stores guard themselves; there is deliberately no runtime-level lock —
// concurrent mutations race and the mandatory refetch after each mutation
// resolves them in favor of server truth (last refetch wins).
type Runtime struct {
	items     *cart.Store
	orders    *cart.OrderStore
	selection *cart.Selection
}

func newRuntime() *Runtime {
	return &Runtime{
		items:     cart.NewStore(),
		orders:    cart.NewOrderStore(),
		selection: cart.NewSelection(),
	}
}

// reset drops all local state, used when the session becomes invalid so one
// user's cart view never leaks into another's session.
func (rt *Runtime) reset() {
	rt.items.Clear()
	rt.orders.Clear()
	rt.selection.ClearAll()
}

// Registry maps user ids to their cart runtimes so a single process can
// serve many sessions.
type Registry struct {
	mu       sync.RWMutex
	runtimes map[string]*Runtime
}

// NewRegistry creates an empty runtime registry
func NewRegistry() *Registry {
	return &Registry{
		runtimes: make(map[string]*Runtime),
	}
}

// Get returns the runtime for the user, creating it on first use
func (r *Registry) Get(userID string) *Runtime {
	r.mu.RLock()
	rt, ok := r.runtimes[userID]
	r.mu.RUnlock()
	if ok {
		return rt
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if rt, ok := r.runtimes[userID]; ok {
		return rt
	}
	rt = newRuntime()
	r.runtimes[userID] = rt
	return rt
}

// Drop removes the user's runtime entirely
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.runtimes, userID)
}

// Len returns the number of active runtimes
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.runtimes)
}
