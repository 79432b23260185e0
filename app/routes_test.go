package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-facade/app"
	"github.com/km-arc/go-facade/framework/facade"
	"github.com/km-arc/go-facade/framework/foundation"
	"github.com/km-arc/go-facade/framework/routing"
	gohttp "github.com/km-arc/go-facade/http"
)

// bootApp boots a fresh application and returns its router plus the
// buffer the log channel writes to. Facades are restored on cleanup.
func bootApp(t *testing.T) (*routing.Router, *bytes.Buffer) {
	t.Helper()
	return bootAppOn(t, "stdout")
}

func bootAppOn(t *testing.T, channel string) (*routing.Router, *bytes.Buffer) {
	t.Helper()
	t.Setenv("LOG_CHANNEL", channel)
	t.Setenv("APP_NAME", "RoutesTest")
	t.Setenv("APP_ENV", "testing")

	prev := facade.SetContainer(nil)
	t.Cleanup(func() { facade.SetContainer(prev) })

	var out bytes.Buffer
	a, err := foundation.New(foundation.Options{
		LogOut: &out,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.NoError(t, a.Boot())
	require.NoError(t, app.RegisterRoutes())

	router, err := a.Router()
	require.NoError(t, err)
	return router, &out
}

func TestRegisterRoutes(t *testing.T) {
	router, _ := bootApp(t)

	routes, err := router.Routes()
	require.NoError(t, err)
	assert.Equal(t, []routing.Route{
		{Method: http.MethodGet, Pattern: "/"},
		{Method: http.MethodPost, Pattern: "/log"},
		{Method: http.MethodPost, Pattern: "/log/{level}"},
	}, routes)
}

func TestRegisterRoutes_NoContainer(t *testing.T) {
	prev := facade.SetContainer(nil)
	t.Cleanup(func() { facade.SetContainer(prev) })

	var notInit *facade.ContainerNotInitializedError
	assert.ErrorAs(t, app.RegisterRoutes(), &notInit)
}

func TestWelcome(t *testing.T) {
	router, _ := bootApp(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, map[string]string{"app": "RoutesTest", "env": "testing"}, body.Data)
}

func postLog(t *testing.T, router *routing.Router, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(rr, req)
	return rr
}

func TestWriteLog(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
		status      int
		logged      string
	}{
		{"logs message", "/log", "application/json", `{"message":"Hello Facade!"}`, http.StatusCreated, "Hello Facade!\n"},
		{"charset param", "/log", "application/json; charset=utf-8", `{"message":"hi"}`, http.StatusCreated, "hi\n"},
		{"missing message", "/log", "application/json", `{}`, http.StatusUnprocessableEntity, ""},
		{"not json", "/log", "application/json", `hello`, http.StatusBadRequest, ""},
		{"empty body", "/log", "application/json", ``, http.StatusBadRequest, ""},
		{"wrong content type", "/log", "text/plain", `{"message":"hi"}`, http.StatusUnsupportedMediaType, ""},
		{"info level", "/log/info", "application/json", `{"message":"started"}`, http.StatusCreated, "started\n"},
		{"error level", "/log/error", "application/json", `{"message":"disk full"}`, http.StatusCreated, "disk full\n"},
		{"unknown level", "/log/loud", "application/json", `{"message":"x"}`, http.StatusNotFound, ""},
		{"too large", "/log", "application/json", `{"message":"` + strings.Repeat("x", gohttp.MaxBodyBytes) + `"}`, http.StatusRequestEntityTooLarge, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, out := bootApp(t)

			rr := postLog(t, router, tt.path, tt.contentType, tt.body)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.logged, out.String())
		})
	}
}

func TestWriteLogAt_JSONChannelLevels(t *testing.T) {
	router, out := bootAppOn(t, "json")

	rr := postLog(t, router, "/log/error", "application/json", `{"message":"disk full"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "disk full", entry["msg"])
}
