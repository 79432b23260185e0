package container

import (
	"slices"
	"sync"
	"sync/atomic"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory builds a value from the container. The container handed to the
// factory can be used to Make further dependencies.
type Factory func(c *Container) (any, error)

// registry owns every name → factory binding. It is shared by all handles
// derived from the same New() call.
type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container, a stripped-down Illuminate\Container\Container.
//
// It only knows two things:
//   - Bind: remember how to build something under a name
//   - Make: build it, every time
//
// There is no instance cache. A factory runs once per Make call; anything
// that must be shared has to be cached by the factory itself.
//
// The *Container passed into a factory is a handle on the same registry that
// also knows which names are being resolved by the Make call that is running
// the factory. That is how circular bindings are reported instead of
// overflowing the stack. Once the factory returns the handle behaves like the
// root container, so services may keep it and Make through it later.
type Container struct {
	reg *registry

	// innermost resolution this handle was handed to; nil for the root
	frame *frame
}

// frame is one name being built. A frame is live until its factory returns.
type frame struct {
	name   string
	parent *frame
	done   atomic.Bool
}

// New creates an empty container.
func New() *Container {
	return &Container{
		reg: &registry{factories: make(map[string]Factory)},
	}
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers factory under name. A later Bind for the same name replaces
// the earlier one.
//
//	// Laravel: $app->bind('log', fn($app) => new Logger)
//	c.Bind("log", func(c *container.Container) (any, error) {
//	    return logging.NewWriter(os.Stdout), nil
//	})
func (c *Container) Bind(name string, factory Factory) {
	c.reg.mu.Lock()
	defer c.reg.mu.Unlock()
	c.reg.factories[name] = factory
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves name by running its factory.
//
//	// Laravel: $app->make('log')
//	logger, err := c.Make("log")
//
// Errors returned by the factory come back untouched. A missing binding is a
// *BindingNotFoundError; a factory that (directly or indirectly) asks for the
// name it is building yields a *CircularResolutionError.
func (c *Container) Make(name string) (any, error) {
	chain := c.inFlight()
	if slices.Contains(chain, name) {
		return nil, &CircularResolutionError{Chain: append(chain, name)}
	}

	c.reg.mu.RLock()
	factory, ok := c.reg.factories[name]
	c.reg.mu.RUnlock()

	if !ok {
		return nil, &BindingNotFoundError{Name: name}
	}

	handle := &Container{reg: c.reg, frame: &frame{name: name, parent: c.live()}}
	defer handle.frame.done.Store(true)
	return factory(handle)
}

// live returns the handle's frame, or nil once its factory has returned.
func (c *Container) live() *frame {
	if c.frame == nil || c.frame.done.Load() {
		return nil
	}
	return c.frame
}

// inFlight lists the names being resolved through this handle, outermost
// first.
func (c *Container) inFlight() []string {
	var chain []string
	for f := c.live(); f != nil; f = f.parent {
		chain = append(chain, f.name)
	}
	slices.Reverse(chain)
	return chain
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound reports whether name has a factory.
//
//	// Laravel: $app->bound('log')
func (c *Container) Bound(name string) bool {
	c.reg.mu.RLock()
	defer c.reg.mu.RUnlock()
	_, ok := c.reg.factories[name]
	return ok
}

// Names returns every bound name, sorted. Meant for debugging output.
func (c *Container) Names() []string {
	c.reg.mu.RLock()
	defer c.reg.mu.RUnlock()
	out := make([]string, 0, len(c.reg.factories))
	for name := range c.reg.factories {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
