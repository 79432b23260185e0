package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-facade/app"
	"github.com/km-arc/go-facade/framework/console"
	"github.com/km-arc/go-facade/framework/container"
	"github.com/km-arc/go-facade/framework/foundation"
	"github.com/km-arc/go-facade/framework/manifest"
	"github.com/km-arc/go-facade/framework/support/facades"
)

type cliConfig struct {
	manifest string
	envFile  string
	serve    bool
	routes   bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (*cliConfig, error) {
	fs := flag.NewFlagSet("go-facade", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &cliConfig{}
	fs.StringVar(&cfg.manifest, "manifest", "", "Path to an HCL provider manifest (e.g. bootstrap/providers.hcl).")
	fs.StringVar(&cfg.envFile, "env", ".env", "Path to the .env file.")
	fs.BoolVar(&cfg.serve, "serve", false, "Register the demo routes and serve HTTP on APP_PORT.")
	fs.BoolVar(&cfg.routes, "routes", false, "Print the bindings and demo routes, then exit.")
	fs.BoolVar(&cfg.verbose, "v", false, "Log bootstrap diagnostics.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// catalog lists the application providers a manifest may name.
func catalog() manifest.Catalog {
	return manifest.Catalog{
		"goodbye": func(map[string]string) (container.ServiceProvider, error) {
			return &app.GoodByeServiceProvider{}, nil
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	application, err := foundation.New(foundation.Options{
		EnvFiles: []string{cli.envFile},
		Manifest: cli.manifest,
		Catalog:  catalog(),
		LogOut:   stdout,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if cli.manifest == "" {
		// Without a manifest only the framework providers are registered.
		if err := application.Register(&app.GoodByeServiceProvider{}); err != nil {
			return err
		}
	}
	if err := application.Boot(); err != nil {
		return err
	}
	if cli.routes {
		return listRoutes(application, stdout)
	}

	// Laravel: Log::info('Hello Facade!')
	if err := facades.Log.Info("Hello Facade!"); err != nil {
		return err
	}

	goodBye, err := container.Resolve(application.Container, app.GoodByeKey)
	if err != nil {
		return err
	}
	if err := goodBye.To("Facade"); err != nil {
		return err
	}

	if !cli.serve {
		if err := application.Flush(); err != nil {
			logger.Debug("Log flush failed.", "error", err)
		}
		return nil
	}
	if err := app.RegisterRoutes(); err != nil {
		return err
	}
	return application.Run(ctx)
}

// listRoutes is the route:list command.
func listRoutes(application *foundation.Application, w io.Writer) error {
	if err := app.RegisterRoutes(); err != nil {
		return err
	}
	router, err := application.Router()
	if err != nil {
		return err
	}
	routes, err := router.Routes()
	if err != nil {
		return err
	}
	console.BindingList(w, application.Names())
	console.RouteList(w, routes)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("Application failed.", "error", err)
		os.Exit(1)
	}
}
