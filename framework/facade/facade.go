package facade

import (
	"fmt"
	"sync/atomic"

	"github.com/km-arc/go-facade/framework/container"
)

// ── Container reference ───────────────────────────────────────────────────────

// root is the container every facade resolves against.
var root atomic.Pointer[container.Container]

// SetContainer points every facade at c and returns the container it
// replaces (nil on first use). Call it once during bootstrap, after all
// providers are registered; tests may call it again to install a fake.
//
//	// Laravel: Facade::setFacadeApplication($app)
//	facade.SetContainer(app.Container)
func SetContainer(c *container.Container) *container.Container {
	return root.Swap(c)
}

// Reset clears the container reference. Facades fail with
// *ContainerNotInitializedError until SetContainer is called again.
func Reset() {
	root.Store(nil)
}

// Container returns the container facades resolve against.
func Container() (*container.Container, error) {
	c := root.Load()
	if c == nil {
		return nil, &ContainerNotInitializedError{}
	}
	return c, nil
}

// ── Facade ────────────────────────────────────────────────────────────────────

// Facade forwards calls to whatever the container resolves for accessor.
// T is the capability the resolved value must implement.
//
//	// Laravel:
//	// class Log extends Facade {
//	//     protected static function getFacadeAccessor() { return 'log'; }
//	// }
//	var logFacade = facade.New[logging.Logger]("log")
//
// Nothing is cached: every call resolves the accessor again.
type Facade[T any] struct {
	accessor string
}

// New returns a facade for accessor.
func New[T any](accessor string) Facade[T] {
	return Facade[T]{accessor: accessor}
}

// Accessor returns the container name the facade resolves.
func (f Facade[T]) Accessor() string { return f.accessor }

// Root resolves the facade's target.
//
//	// Laravel: Log::getFacadeRoot()
func (f Facade[T]) Root() (T, error) {
	return f.root("")
}

func (f Facade[T]) root(operation string) (T, error) {
	var zero T
	c := root.Load()
	if c == nil {
		return zero, &ContainerNotInitializedError{Accessor: f.accessor}
	}
	instance, err := c.Make(f.accessor)
	if err != nil {
		return zero, err
	}
	target, ok := instance.(T)
	if !ok {
		return zero, &UnsupportedOperationError{
			Accessor:  f.accessor,
			Operation: operation,
			Type:      fmt.Sprintf("%T", instance),
		}
	}
	return target, nil
}

// Invoke resolves the target and runs fn on it. operation names the call in
// error messages. fn's error is returned as is.
//
//	func (Logger) Log(message string) error {
//	    return logFacade.Invoke("log", func(l logging.Logger) error { return l.Log(message) })
//	}
func (f Facade[T]) Invoke(operation string, fn func(T) error) error {
	target, err := f.root(operation)
	if err != nil {
		return err
	}
	return fn(target)
}

// Call is Invoke for operations that return a value.
func Call[T, R any](f Facade[T], operation string, fn func(T) (R, error)) (R, error) {
	target, err := f.root(operation)
	if err != nil {
		var zero R
		return zero, err
	}
	return fn(target)
}
