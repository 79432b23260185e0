package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/km-arc/go-facade/framework/container"
	"github.com/km-arc/go-facade/framework/facade"
	gohttp "github.com/km-arc/go-facade/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newResponse(t *testing.T) (*gohttp.Response, *httptest.ResponseRecorder) {
	t.Helper()
	rr := httptest.NewRecorder()
	return gohttp.NewResponse(rr), rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("decodeJSON: %v", err)
	}
	return m
}

// ── JSON ──────────────────────────────────────────────────────────────────────

func TestResponse_JSON(t *testing.T) {
	res, rr := newResponse(t)
	res.JSON(http.StatusOK, map[string]any{"key": "val"})

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q want application/json", ct)
	}
	m := decodeJSON(t, rr)
	if m["key"] != "val" {
		t.Errorf("body key: got %v want val", m["key"])
	}
}

func TestResponse_Envelopes(t *testing.T) {
	tests := []struct {
		name   string
		send   func(*gohttp.Response)
		status int
		key    string
	}{
		{"Success", func(r *gohttp.Response) { r.Success("x") }, http.StatusOK, "data"},
		{"Created", func(r *gohttp.Response) { r.Created("x") }, http.StatusCreated, "data"},
		{"Error", func(r *gohttp.Response) { r.Error(http.StatusBadRequest, "x") }, http.StatusBadRequest, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, rr := newResponse(t)
			tt.send(res)
			if rr.Code != tt.status {
				t.Errorf("status: got %d want %d", rr.Code, tt.status)
			}
			if got := decodeJSON(t, rr)[tt.key]; got != "x" {
				t.Errorf("%s: got %v want x", tt.key, got)
			}
		})
	}
}

// ── Fail ──────────────────────────────────────────────────────────────────────

func TestResponse_Fail(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not initialized", &facade.ContainerNotInitializedError{Accessor: "log"}, http.StatusServiceUnavailable, "Application is still booting."},
		{"not bound", &container.BindingNotFoundError{Name: "log"}, http.StatusInternalServerError, "Service [log] is not bound."},
		{"other", errors.New("disk full"), http.StatusInternalServerError, "Server Error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, rr := newResponse(t)
			res.Fail(tt.err)
			if rr.Code != tt.status {
				t.Errorf("status: got %d want %d", rr.Code, tt.status)
			}
			if got := decodeJSON(t, rr)["message"]; got != tt.message {
				t.Errorf("message: got %v want %q", got, tt.message)
			}
		})
	}
}

// ── DecodeJSON ────────────────────────────────────────────────────────────────

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/log", strings.NewReader(`{"message":"hi"}`))
	var body struct {
		Message string `json:"message"`
	}
	if err := gohttp.DecodeJSON(httptest.NewRecorder(), req, &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "hi" {
		t.Errorf("message: got %q want %q", body.Message, "hi")
	}
}

func TestDecodeJSON_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/log", nil)
	var body struct{}
	if err := gohttp.DecodeJSON(httptest.NewRecorder(), req, &body); err == nil {
		t.Error("expected error for empty body")
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	big := `{"message":"` + strings.Repeat("x", gohttp.MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/log", strings.NewReader(big))
	var body struct {
		Message string `json:"message"`
	}

	err := gohttp.DecodeJSON(httptest.NewRecorder(), req, &body)

	var tooLarge *http.MaxBytesError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("DecodeJSON: got %v, want *http.MaxBytesError", err)
	}
	if tooLarge.Limit != gohttp.MaxBodyBytes {
		t.Errorf("limit: got %d want %d", tooLarge.Limit, gohttp.MaxBodyBytes)
	}
}
