package facade

import "fmt"

// ContainerNotInitializedError is returned when a facade is used before
// SetContainer.
type ContainerNotInitializedError struct {
	Accessor string
}

func (e *ContainerNotInitializedError) Error() string {
	if e.Accessor == "" {
		return "facade: container has not been set"
	}
	return fmt.Sprintf("facade: container has not been set, cannot resolve [%s]", e.Accessor)
}

// UnsupportedOperationError is returned when the value resolved for a
// facade does not implement the facade's capability.
type UnsupportedOperationError struct {
	Accessor  string
	Operation string
	Type      string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("facade: [%s] resolved to %s, which does not implement the facade", e.Accessor, e.Type)
	}
	return fmt.Sprintf("facade: [%s] resolved to %s, which does not support %s()", e.Accessor, e.Type, e.Operation)
}
