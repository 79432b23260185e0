package foundation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/km-arc/go-facade/framework/config"
	"github.com/km-arc/go-facade/framework/container"
	"github.com/km-arc/go-facade/framework/facade"
	"github.com/km-arc/go-facade/framework/logging"
	"github.com/km-arc/go-facade/framework/manifest"
	"github.com/km-arc/go-facade/framework/providers"
	"github.com/km-arc/go-facade/framework/routing"
)

// Application is the top-level application container.
// It embeds the IoC Container and ProviderRegistry so user code can
// call app.Bind(), app.Make() and app.Register() directly, like $app in
// Laravel's bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry

	log *slog.Logger
}

// Options configures New.
type Options struct {
	// EnvFiles are handed to the config provider. Default: .env
	EnvFiles []string
	// Manifest is an HCL provider manifest. Empty registers the framework
	// providers in their default order: config, log, routing.
	Manifest string
	// Catalog adds application providers that the manifest can name.
	Catalog manifest.Catalog
	// LogOut receives stdout/json channel output. Default: os.Stdout
	LogOut io.Writer
	// Logger receives bootstrap diagnostics. Default: slog.Default()
	Logger *slog.Logger
}

// DefaultProviders is the registration order used without a manifest.
var DefaultProviders = []string{"config", "log", "routing"}

// New creates the application and registers its providers. It does not
// boot; call Boot once every extra provider is registered.
func New(opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := container.New()
	app := &Application{
		Container: c,
		Providers: container.NewProviderRegistry(c),
		log:       logger,
	}

	catalog := FrameworkCatalog(opts.EnvFiles, opts.LogOut)
	for name, ctor := range opts.Catalog {
		catalog[name] = ctor
	}

	m := defaultManifest()
	if opts.Manifest != "" {
		loaded, err := manifest.Load(opts.Manifest)
		if err != nil {
			return nil, err
		}
		m = loaded
	}

	list, err := m.Build(catalog)
	if err != nil {
		return nil, err
	}
	for i, p := range list {
		if err := app.Register(p); err != nil {
			return nil, err
		}
		logger.Debug("Provider registered.", "provider", m.Providers[i].Name)
	}
	return app, nil
}

func defaultManifest() *manifest.Manifest {
	m := &manifest.Manifest{}
	for _, name := range DefaultProviders {
		m.Providers = append(m.Providers, manifest.Provider{Name: name})
	}
	return m
}

// FrameworkCatalog returns constructors for the framework providers.
//
// Manifest options:
//   - routing: bare = "true" drops the default middleware
func FrameworkCatalog(envFiles []string, logOut io.Writer) manifest.Catalog {
	return manifest.Catalog{
		"config": func(map[string]string) (container.ServiceProvider, error) {
			return &providers.ConfigServiceProvider{EnvFiles: envFiles}, nil
		},
		"log": func(map[string]string) (container.ServiceProvider, error) {
			return &providers.LogServiceProvider{Out: logOut}, nil
		},
		"routing": func(opts map[string]string) (container.ServiceProvider, error) {
			p := &providers.RoutingServiceProvider{}
			if v, ok := opts["bare"]; ok {
				bare, err := strconv.ParseBool(v)
				if err != nil {
					return nil, fmt.Errorf("option bare: %w", err)
				}
				p.Bare = bare
			}
			return p, nil
		},
	}
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers and points the facades at
// this application's container.
//
//	// Laravel: $app->boot(); Facade::setFacadeApplication($app);
func (a *Application) Boot() error {
	if err := a.Providers.Boot(); err != nil {
		return fmt.Errorf("boot providers: %w", err)
	}
	facade.SetContainer(a.Container)
	a.log.Debug("Application booted.", "bindings", a.Names())
	return nil
}

// Config resolves *config.Config from the container.
func (a *Application) Config() (*config.Config, error) {
	return container.Resolve(a.Container, providers.ConfigKey)
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() (*routing.Router, error) {
	return container.Resolve(a.Container, providers.RouterKey)
}

// Logger resolves the "log" binding.
func (a *Application) Logger() (logging.Logger, error) {
	return container.Resolve(a.Container, providers.LoggerKey)
}

// Flush syncs the bound logger when it buffers output (the zap channel).
func (a *Application) Flush() error {
	logger, err := a.Logger()
	if err != nil {
		return err
	}
	if s, ok := logger.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// Run boots the application (if needed) and serves HTTP on APP_PORT until
// ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}
	cfg, err := a.Config()
	if err != nil {
		return err
	}
	router, err := a.Router()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("HTTP server listening.", "app", cfg.App.Name, "addr", srv.Addr, "env", cfg.App.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	grace := time.Duration(config.GetInt("APP_SHUTDOWN_TIMEOUT", 5)) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	a.log.Info("HTTP server shutting down.")
	err = srv.Shutdown(shutdownCtx)
	if ferr := a.Flush(); ferr != nil {
		a.log.Debug("Log flush failed.", "error", ferr)
	}
	return err
}
