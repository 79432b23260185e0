package providers

import (
	"io"
	"strings"
	"sync"

	"github.com/km-arc/go-facade/framework/config"
	"github.com/km-arc/go-facade/framework/container"
	"github.com/km-arc/go-facade/framework/logging"
	"github.com/km-arc/go-facade/framework/routing"
	"github.com/km-arc/go-facade/framework/support/facades"
)

// Typed keys for the framework bindings.
var (
	ConfigKey = container.NewKey[*config.Config](facades.ConfigAccessor)
	LoggerKey = container.NewKey[logging.Logger](facades.LogAccessor)
	RouterKey = container.NewKey[*routing.Router](facades.RouteAccessor)
)

// Shared wraps factory so that it runs once; every later call returns the
// first result, error included. The container itself never caches, so this
// is how a provider hands out one shared instance.
//
//	// Laravel: $app->singleton('router', fn($app) => new Router)
//	app.Bind("router", providers.Shared(func(c *container.Container) (any, error) {
//	    return routing.New(), nil
//	}))
func Shared(factory container.Factory) container.Factory {
	var (
		once     sync.Once
		instance any
		err      error
	)
	return func(c *container.Container) (any, error) {
		once.Do(func() { instance, err = factory(c) })
		return instance, err
	}
}

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config". The env files are read once, on
// first resolution.
//
// Laravel equivalent:
//
//	// Illuminate\Foundation\Bootstrap\LoadConfiguration
//	$app->singleton('config', fn() => new Repository($items));
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	container.Provide(app, ConfigKey, sharedTyped(func(c *container.Container) (*config.Config, error) {
		return config.Load(envFiles...), nil
	}))
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider binds "log" to the Logger selected by config.Log.
// A fresh Logger is built on every resolution, except for the zap channel:
// one zap logger is built on first use and shared, so its buffers can be
// flushed with Sync.
//
// Laravel equivalent:
//
//	// Illuminate\Log\LogServiceProvider
//	$app->bind('log', fn($app) => new LogManager($app));
type LogServiceProvider struct {
	container.BaseProvider
	Out io.Writer // stdout/json destination, default os.Stdout
}

func (p *LogServiceProvider) Register(app *container.Container) {
	out := p.Out
	build := func(cfg *config.Config) (logging.Logger, error) {
		return logging.New(logging.Options{
			Channel: cfg.Log.Channel,
			Path:    cfg.Log.Path,
			Level:   cfg.Log.Level,
			Out:     out,
		})
	}
	zapShared := sharedTyped(func(c *container.Container) (logging.Logger, error) {
		cfg, err := container.Resolve(c, ConfigKey)
		if err != nil {
			return nil, err
		}
		return build(cfg)
	})

	container.Provide(app, LoggerKey, func(c *container.Container) (logging.Logger, error) {
		cfg, err := container.Resolve(c, ConfigKey)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(cfg.Log.Channel, logging.ChannelZap) {
			return zapShared(c)
		}
		return build(cfg)
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider binds "router" to a single shared *routing.Router,
// so routes added through the Route facade land on the router that serves.
//
// Laravel equivalent:
//
//	// Illuminate\Routing\RoutingServiceProvider
//	$app->singleton('router', fn($app) => new Router($app['events'], $app));
type RoutingServiceProvider struct {
	container.BaseProvider
	// Bare skips the default request logging and recovery middleware.
	Bare bool
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	bare := p.Bare
	container.Provide(app, RouterKey, sharedTyped(func(c *container.Container) (*routing.Router, error) {
		if bare {
			return routing.Bare(), nil
		}
		return routing.New(), nil
	}))
}

func sharedTyped[T any](factory func(c *container.Container) (T, error)) func(c *container.Container) (T, error) {
	shared := Shared(func(c *container.Container) (any, error) { return factory(c) })
	return func(c *container.Container) (T, error) {
		v, err := shared(c)
		if err != nil {
			var zero T
			return zero, err
		}
		return v.(T), nil
	}
}
