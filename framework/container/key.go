package container

import (
	"fmt"
	"reflect"
)

// Key names a binding and fixes the type it resolves to.
//
//	var LoggerKey = container.NewKey[logging.Logger]("log")
//	container.Provide(c, LoggerKey, func(c *container.Container) (logging.Logger, error) { ... })
//	logger, err := container.Resolve(c, LoggerKey)
type Key[T any] struct {
	name string
}

// NewKey returns a Key for name.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// TypeKey returns a Key named after T's package-qualified type name, useful
// when the type itself is the natural identifier.
//
//	key := container.TypeKey[*GoodBye]()  // "github.com/km-arc/go-facade/app.GoodBye"
func TypeKey[T any]() Key[T] {
	return Key[T]{name: typeName(reflect.TypeFor[T]())}
}

// Name returns the binding name.
func (k Key[T]) Name() string { return k.name }

func (k Key[T]) String() string { return k.name }

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Provide binds a typed factory under key.
func Provide[T any](c *Container, key Key[T], factory func(c *Container) (T, error)) {
	c.Bind(key.name, func(c *Container) (any, error) {
		v, err := factory(c)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// Resolve makes key and asserts the result to T.
//
//	// Instead of: v, _ := c.Make("log"); logger := v.(logging.Logger)
//	// Write:      logger, err := container.Resolve(c, LoggerKey)
func Resolve[T any](c *Container, key Key[T]) (T, error) {
	var zero T
	instance, err := c.Make(key.name)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Name:     key.name,
			Expected: reflect.TypeFor[T]().String(),
			Got:      fmt.Sprintf("%T", instance),
		}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on error. Bootstrap code only.
func MustResolve[T any](c *Container, key Key[T]) T {
	v, err := Resolve(c, key)
	if err != nil {
		panic(err)
	}
	return v
}
