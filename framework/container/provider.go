package container

import (
	"errors"
	"reflect"
)

// ErrNilProvider is returned by ProviderRegistry.Register for a nil provider.
var ErrNilProvider = errors.New("container: nil service provider")

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider mirrors Laravel's Illuminate\Support\ServiceProvider,
// reduced to its register() method.
//
//	// Laravel:
//	// class LogServiceProvider extends ServiceProvider {
//	//     public function register(): void { $this->app->bind('log', ...); }
//	// }
//
//	type LogServiceProvider struct{ container.BaseProvider }
//
//	func (p *LogServiceProvider) Register(app *container.Container) {
//	    app.Bind("log", func(c *container.Container) (any, error) {
//	        return logging.NewWriter(os.Stdout), nil
//	    })
//	}
//
// Register only binds. Resolving inside Register is allowed but only sees
// what earlier providers bound; the container does not check ordering, so a
// missing dependency shows up later as a *BindingNotFoundError from Make.
type ServiceProvider interface {
	Register(app *Container)
}

// Booter is implemented by providers that need a second pass once every
// provider has been registered. Safe to resolve any binding in Boot.
type Booter interface {
	Boot(app *Container) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot.
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(app *container.Container) { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }

// RegisterProviders calls Register on each provider, in order.
func RegisterProviders(app *Container, providers ...ServiceProvider) {
	for _, p := range providers {
		p.Register(app)
	}
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers providers in the order they are handed to it and
// later boots them in that same order.
//
// It mirrors the behaviour of Laravel's Application::register and
// Application::boot.
type ProviderRegistry struct {
	app        *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool

	// providers[:next] have booted
	next   int
	booted bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register calls provider.Register. The same provider value is only ever
// registered once; non-comparable provider values are not deduplicated.
// Providers added after Boot are booted straight away. A nil provider is
// rejected with ErrNilProvider.
//
//	// Laravel: $app->register(new AppServiceProvider($app))
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if provider == nil {
		return ErrNilProvider
	}
	if reflect.TypeOf(provider).Comparable() {
		if r.registered[provider] {
			return nil
		}
		r.registered[provider] = true
	}

	provider.Register(r.app)
	r.providers = append(r.providers, provider)

	if r.booted {
		if err := boot(r.app, provider); err != nil {
			return err
		}
		r.next = len(r.providers)
	}
	return nil
}

// Boot runs Boot on every registered provider that implements Booter.
// The first failing provider stops the loop and the registry stays unbooted;
// calling Boot again retries from that provider. Once every provider has
// booted, further calls are no-ops.
//
//	// Laravel: $app->boot()
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	for r.next < len(r.providers) {
		if err := boot(r.app, r.providers[r.next]); err != nil {
			return err
		}
		r.next++
	}
	r.booted = true
	return nil
}

func boot(app *Container, provider ServiceProvider) error {
	if b, ok := provider.(Booter); ok {
		return b.Boot(app)
	}
	return nil
}

// Booted reports whether every registered provider has booted.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
