// Package routing maps the action names rendered into markup back to the
// Go callbacks that handle them.
package routing

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aydenstechdungeon/modalkit/component/modal"
)

// ErrActionNotFound is returned when dispatching an unregistered action.
var ErrActionNotFound = errors.New("action not found")

// ActionFunc handles an activated control.
type ActionFunc func(ctx context.Context) error

// ActionRegistry holds the actions a host can dispatch.
type ActionRegistry struct {
	mu      sync.RWMutex
	actions map[string]ActionFunc
}

// NewActionRegistry creates an empty registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make(map[string]ActionFunc),
	}
}

// Register registers an action, replacing any previous one with the same name.
func (r *ActionRegistry) Register(name string, action ActionFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = action
}

// Unregister removes an action.
func (r *ActionRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.actions, name)
}

// Get retrieves a registered action.
func (r *ActionRegistry) Get(name string) (ActionFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.actions[name]
	return fn, ok
}

// Names returns the registered action names in sorted order.
func (r *ActionRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named action once.
func (r *ActionRegistry) Dispatch(ctx context.Context, name string) error {
	fn, ok := r.Get(name)
	if !ok {
		return ErrActionNotFound
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

// Bind registers the close action of cfg. A config without OnClose gets an
// inert action so its controls still resolve.
func (r *ActionRegistry) Bind(cfg modal.Config) {
	r.Register(cfg.CloseAction(), func(context.Context) error {
		cfg.Close()
		return nil
	})
}
