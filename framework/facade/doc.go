// Package facade lets code call a service without holding it, the way
// Laravel's facades do.
//
// A facade is a fixed container name (the accessor) plus the capability
// interface the resolved value has to implement. Each call reads the
// process-wide container set with SetContainer, resolves the accessor and
// forwards to the result:
//
//	facade.SetContainer(c)                       // bootstrap, once
//
//	var logFacade = facade.New[logging.Logger]("log")
//	err := logFacade.Invoke("log", func(l logging.Logger) error {
//	    return l.Log("hello")
//	})
//
// Laravel forwards any static method name through __callStatic. Here a
// facade only exposes the methods written for it against T; calling a method
// the capability does not have is a compile error rather than a runtime one.
// When the container hands back something that is not a T the call fails
// with *UnsupportedOperationError.
//
// Errors:
//   - no container set            → *ContainerNotInitializedError
//   - accessor not bound          → *container.BindingNotFoundError (unchanged)
//   - factory or target error     → returned unchanged
//   - value does not implement T  → *UnsupportedOperationError
//
// The container reference is stored atomically, so a container set before
// any goroutine starts using facades is visible to all of them. Tests swap
// it with SetContainer and restore the previous one afterwards:
//
//	prev := facade.SetContainer(fake)
//	t.Cleanup(func() { facade.SetContainer(prev) })
package facade
