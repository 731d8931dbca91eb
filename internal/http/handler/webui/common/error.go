package common

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

type Error struct {
	err         string
	userMessage string
	statusCode  int
}

// StatusCode implements HTTPError.
func (e *Error) StatusCode() int {
	return e.statusCode
}

// Error implements UserFacingError.
func (e *Error) Error() string {
	return e.err
}

// UserMessage implements UserFacingError.
func (e *Error) UserMessage() string {
	return e.userMessage
}

func NewError(err string, userMessage string, statusCode int) *Error {
	return &Error{err, userMessage, statusCode}
}

var _ UserFacingError = &Error{}
var _ HTTPError = &Error{}

func NewHTTPError(statusCode int) *Error {
	return &Error{http.StatusText(statusCode), http.StatusText(statusCode), statusCode}
}

func resolveError(r *http.Request, err error) (int, string) {
	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
	}

	message := http.StatusText(statusCode)

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		message = userFacingErr.UserMessage()
	}

	if httpErr == nil && userFacingErr == nil {
		slog.ErrorContext(r.Context(), "unexpected error", slogx.Error(errors.WithStack(err)))
	}

	return statusCode, message
}

// HandleError answers the request with a plain text message derived from err.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode, message := resolveError(r, err)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	if _, err := w.Write([]byte(message)); err != nil {
		slog.ErrorContext(r.Context(), "could not write response", slogx.Error(errors.WithStack(err)))
	}
}

// HandleJSONError answers the request with a {"error": "..."} JSON document
// derived from err.
func HandleJSONError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode, message := resolveError(r, err)

	WriteJSON(w, r, statusCode, map[string]string{"error": message})
}

func WriteJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(errors.WithStack(err)))
	}
}
