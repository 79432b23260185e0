package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/km-arc/go-facade/framework/container"
	"github.com/km-arc/go-facade/framework/facade"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with Laravel-style helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Created sends 201 JSON: {"data": v}
func (res *Response) Created(v any) {
	res.JSON(http.StatusCreated, envelope{"data": v})
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusBadRequest, "message is required")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// Fail turns a container or facade error into a JSON error response.
//
//	ContainerNotInitializedError → 503
//	anything else                → 500
func (res *Response) Fail(err error) {
	var notInit *facade.ContainerNotInitializedError
	var notFound *container.BindingNotFoundError
	switch {
	case errors.As(err, &notInit):
		res.Error(http.StatusServiceUnavailable, "Application is still booting.")
	case errors.As(err, &notFound):
		res.Error(http.StatusInternalServerError, fmt.Sprintf("Service [%s] is not bound.", notFound.Name))
	default:
		res.Error(http.StatusInternalServerError, "Server Error.")
	}
}

// ── Request ──────────────────────────────────────────────────────────────────

// MaxBodyBytes caps the request body DecodeJSON will read.
const MaxBodyBytes = 1 << 20 // 1 MB

// DecodeJSON reads r's body into v. Bodies over MaxBodyBytes fail with
// *http.MaxBytesError.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	r.Body.Close()
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(body, v)
}

type envelope map[string]any
