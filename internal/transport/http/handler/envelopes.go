package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/aws/smithy-go"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Client-facing messages.
const (
	msgHandleTaken   = "This handle is already taken"
	msgEmailInUse    = "Email is already in use"
	msgGeneric       = "Something went wrong, please try again"
	msgWrongCreds    = "Wrong credentials, please try again"
	msgUserNotFound  = "User not found"
	msgWrongFileType = "Wrong file type submitted"
	msgNoFile        = "No file submitted"
	msgTooLarge      = "File too large"
	msgBadBody       = "invalid request body"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TokenEnvelope wraps signup/login responses.
type TokenEnvelope struct {
	Token string `json:"token"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// httpError maps a service error onto a status code and body.
func httpError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		writeError(w, http.StatusBadRequest, msgWrongFileType)
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusBadRequest, msgTooLarge)
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusForbidden, "Unauthorized")
	default:
		logServerError(r, err)
		writeError(w, http.StatusInternalServerError, errorCode(err))
	}
}

func logServerError(r *http.Request, err error) {
	slog.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
		"err", err,
	)
}

// errorCode exposes the collaborator's error code, never its message.
func errorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() != "" {
		return apiErr.ErrorCode()
	}
	return "internal"
}
