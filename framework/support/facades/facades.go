// Package facades holds the concrete facades: Log, Route and Config.
//
//	// Laravel: Log::info('Hello Facade!')
//	facades.Log.Log("Hello Facade!")
//
//	// Laravel: Route::get('/', fn() => ...)
//	facades.Route.Get("/", handler)
//
// Each facade resolves its accessor from the container set with
// facade.SetContainer on every call.
package facades

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/km-arc/go-facade/framework/config"
	"github.com/km-arc/go-facade/framework/facade"
	"github.com/km-arc/go-facade/framework/logging"
	"github.com/km-arc/go-facade/framework/routing"
)

// Accessors the framework providers bind.
const (
	LogAccessor    = "log"
	RouteAccessor  = "router"
	ConfigAccessor = "config"
)

var (
	Log    = LogFacade{facade.New[logging.Logger](LogAccessor)}
	Route  = RouteFacade{facade.New[routing.Registrar](RouteAccessor)}
	Config = ConfigFacade{facade.New[*config.Config](ConfigAccessor)}
)

// ── Log ──────────────────────────────────────────────────────────────────────

type LogFacade struct {
	facade.Facade[logging.Logger]
}

func (f LogFacade) Log(message string) error {
	return f.Invoke("log", func(l logging.Logger) error { return l.Log(message) })
}

func (f LogFacade) Logf(format string, args ...any) error {
	return f.Invoke("logf", func(l logging.Logger) error { return l.Log(fmt.Sprintf(format, args...)) })
}

// Info logs at info level on loggers that have levels, plain Log otherwise.
//
//	// Laravel: Log::info('Hello Facade!')
func (f LogFacade) Info(message string) error {
	return f.Invoke("info", func(l logging.Logger) error { return logging.At(l, slog.LevelInfo, message) })
}

// Error logs at error level on loggers that have levels, plain Log otherwise.
//
//	// Laravel: Log::error('Disk full')
func (f LogFacade) Error(message string) error {
	return f.Invoke("error", func(l logging.Logger) error { return logging.At(l, slog.LevelError, message) })
}

// ── Route ────────────────────────────────────────────────────────────────────

type RouteFacade struct {
	facade.Facade[routing.Registrar]
}

func (f RouteFacade) Get(pattern string, h http.HandlerFunc) error {
	return f.Invoke("get", func(r routing.Registrar) error { r.Get(pattern, h); return nil })
}

func (f RouteFacade) Post(pattern string, h http.HandlerFunc) error {
	return f.Invoke("post", func(r routing.Registrar) error { r.Post(pattern, h); return nil })
}

func (f RouteFacade) Put(pattern string, h http.HandlerFunc) error {
	return f.Invoke("put", func(r routing.Registrar) error { r.Put(pattern, h); return nil })
}

func (f RouteFacade) Delete(pattern string, h http.HandlerFunc) error {
	return f.Invoke("delete", func(r routing.Registrar) error { r.Delete(pattern, h); return nil })
}

func (f RouteFacade) Group(fn func(r *routing.Router)) error {
	return f.Invoke("group", func(r routing.Registrar) error { r.Group(fn); return nil })
}

func (f RouteFacade) Prefix(pattern string, fn func(r *routing.Router)) error {
	return f.Invoke("prefix", func(r routing.Registrar) error { r.Prefix(pattern, fn); return nil })
}

func (f RouteFacade) Middleware(mw ...func(http.Handler) http.Handler) error {
	return f.Invoke("middleware", func(r routing.Registrar) error { r.Middleware(mw...); return nil })
}

// ── Config ───────────────────────────────────────────────────────────────────

type ConfigFacade struct {
	facade.Facade[*config.Config]
}

func (f ConfigFacade) Get(key, defaultVal string) (string, error) {
	return facade.Call(f.Facade, "get", func(c *config.Config) (string, error) {
		return c.Get(key, defaultVal), nil
	})
}

func (f ConfigFacade) Environment() (string, error) {
	return facade.Call(f.Facade, "environment", func(c *config.Config) (string, error) {
		return c.Environment(), nil
	})
}
