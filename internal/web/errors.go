package web

// errors.go provides unified error responses for the JSON API.
//
// Handlers call respondError with the technical error; the error is logged
// server-side with the request ID, mapped to a user-facing message via
// core.MapError, and returned as JSON. HTTP status is derived from the
// error kind with errors.Is, never from message text.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JonMunkholm/BatesView/internal/core"
	"github.com/JonMunkholm/BatesView/internal/loadfile"
	"github.com/JonMunkholm/BatesView/internal/logging"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs the technical error and writes the mapped user message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	userMsg := core.MapError(err)
	status := statusFor(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// statusFor maps error kinds to HTTP status codes.
func statusFor(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, loadfile.ErrDecode),
		errors.Is(err, loadfile.ErrHeaderNotFound),
		errors.Is(err, loadfile.ErrEmptyHeader):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrUploadNotFound):
		return http.StatusNotFound
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes a plain JSON error without core mapping, for request
// shape problems (missing file, bad parameters).
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logging.FromContext(r.Context()).Warn("request rejected",
		"path", r.URL.Path,
		"status", status,
		"reason", message,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Message: message, Code: "REQ400"})
}

// writeJSON encodes v and writes it with a 200 status.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; all we can do is log.
		logging.FromContext(r.Context()).Error("json encode failed",
			"path", r.URL.Path,
			"error", err,
		)
	}
}
