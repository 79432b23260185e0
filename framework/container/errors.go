package container

import (
	"errors"
	"fmt"
	"strings"
)

// BindingNotFoundError is returned by Make when nothing is bound under Name.
type BindingNotFoundError struct {
	Name string
}

func (e *BindingNotFoundError) Error() string {
	return fmt.Sprintf("container: no binding registered for [%s]", e.Name)
}

// CircularResolutionError is returned when a factory ends up asking for a
// name that is already being built further up the same Make call.
type CircularResolutionError struct {
	Chain []string
}

func (e *CircularResolutionError) Error() string {
	return fmt.Sprintf("container: circular resolution [%s]", strings.Join(e.Chain, " -> "))
}

// TypeMismatchError is returned by Resolve when the bound value does not
// have the type the key promises.
type TypeMismatchError struct {
	Name     string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("container: [%s] resolved to %s, expected %s", e.Name, e.Got, e.Expected)
}

// IsNotFound reports whether err is (or wraps) a *BindingNotFoundError.
func IsNotFound(err error) bool {
	var e *BindingNotFoundError
	return errors.As(err, &e)
}

// IsCircular reports whether err is (or wraps) a *CircularResolutionError.
func IsCircular(err error) bool {
	var e *CircularResolutionError
	return errors.As(err, &e)
}
