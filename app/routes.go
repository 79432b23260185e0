package app

import (
	"errors"
	"mime"
	"net/http"

	"github.com/km-arc/go-facade/framework/routing"
	"github.com/km-arc/go-facade/framework/support/facades"
	gohttp "github.com/km-arc/go-facade/http"
)

// RegisterRoutes declares the demo routes through the Route facade.
//
//	// Laravel: routes/web.php
//	Route::get('/', ...);
//	Route::middleware('json')->group(function () {
//	    Route::post('/log', ...);
//	    Route::post('/log/{level}', ...);
//	});
func RegisterRoutes() error {
	if err := facades.Route.Get("/", welcome); err != nil {
		return err
	}
	return facades.Route.Group(func(r *routing.Router) {
		r.Middleware(requireJSON)
		r.Post("/log", writeLog)
		r.Post("/log/{level}", writeLogAt)
	})
}

func welcome(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	name, err := facades.Config.Get("APP_NAME", "GoFacade")
	if err != nil {
		res.Fail(err)
		return
	}
	env, err := facades.Config.Environment()
	if err != nil {
		res.Fail(err)
		return
	}
	res.Success(map[string]string{"app": name, "env": env})
}

// requireJSON rejects requests whose body is not declared as JSON.
func requireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			gohttp.NewResponse(w).Error(http.StatusUnsupportedMediaType, "Content-Type must be application/json.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type logRequest struct {
	Message string `json:"message"`
}

// readMessage decodes the body and writes the error response itself when it
// returns false.
func readMessage(w http.ResponseWriter, r *http.Request, res *gohttp.Response) (logRequest, bool) {
	var body logRequest
	if err := gohttp.DecodeJSON(w, r, &body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			res.Error(http.StatusRequestEntityTooLarge, "Request body is too large.")
		} else {
			res.Error(http.StatusBadRequest, "Request body must be JSON.")
		}
		return body, false
	}
	if body.Message == "" {
		res.Error(http.StatusUnprocessableEntity, "The message field is required.")
		return body, false
	}
	return body, true
}

func writeLog(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	body, ok := readMessage(w, r, res)
	if !ok {
		return
	}
	if err := facades.Log.Log(body.Message); err != nil {
		res.Fail(err)
		return
	}
	res.Created(body)
}

// writeLogAt logs through Log::info or Log::error, picked by {level}.
func writeLogAt(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)

	var logAt func(string) error
	switch routing.Param(r, "level") {
	case "info":
		logAt = facades.Log.Info
	case "error":
		logAt = facades.Log.Error
	default:
		res.Error(http.StatusNotFound, "Unknown log level.")
		return
	}

	body, ok := readMessage(w, r, res)
	if !ok {
		return
	}
	if err := logAt(body.Message); err != nil {
		res.Fail(err)
		return
	}
	res.Created(body)
}
