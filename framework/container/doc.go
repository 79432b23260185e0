// Package container provides a minimal Laravel-style IoC (Inversion of
// Control) container and Service Provider system for Go.
//
// # Overview
//
// The container maps names to factories and nothing else. It has no
// singletons, no aliases, no contextual bindings and no constructor
// reflection: every Make runs the bound factory again. Because Go has no
// runtime constructor reflection, wiring is done by explicit factory
// functions that receive the container and Make their own dependencies.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot()
//  4. Resolve: c.Make("name") / container.Resolve(c, key)
//
// Bind calls are expected to finish before resolution starts. The binding
// map is lock protected, but factories are run without any lock held, so a
// factory that is resolved from several goroutines must be safe for that
// itself.
//
// # Bindings
//
//	// Laravel: $app->bind('log', fn($app) => new Logger)
//	c.Bind("log", func(c *container.Container) (any, error) {
//	    return logging.NewWriter(os.Stdout), nil
//	})
//
// Binding a name twice replaces the first factory.
//
// # Resolving
//
//	// Untyped
//	// Laravel: $app->make('log')
//	raw, err := c.Make("log")
//
//	// Typed, no type assertion required
//	var LoggerKey = container.NewKey[logging.Logger]("log")
//	logger, err := container.Resolve(c, LoggerKey)
//
// # Dependencies between factories
//
//	c.Bind("service", func(c *container.Container) (any, error) {
//	    logger, err := container.Resolve(c, LoggerKey)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewService(logger), nil
//	})
//
// A dependency only has to be bound by the time Make runs, not by the time
// the dependent factory was bound.
//
// # Circular bindings
//
// A factory that, directly or through other factories, resolves the name it
// is currently building gets a *CircularResolutionError from Make instead of
// recursing until the stack is exhausted:
//
//	a -> b -> a   =>   container: circular resolution [a -> b -> a]
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    app.Bind("mailer", func(c *container.Container) (any, error) { ... })
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
package container
