package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Evanshango/chatty-backend/internal/application/user"
	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/Evanshango/chatty-backend/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// UserHandler handles signup, login and profile endpoints.
type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}
	if ok, errs := user.ValidateRegistration(req); !ok {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}
	token, err := h.svc.Register(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, TokenEnvelope{Token: token})
	case errors.Is(err, domain.ErrHandleTaken):
		writeJSON(w, http.StatusBadRequest, map[string]string{"handle": msgHandleTaken})
	case errors.Is(err, domain.ErrEmailInUse):
		writeJSON(w, http.StatusBadRequest, map[string]string{"email": msgEmailInUse})
	default:
		logServerError(r, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"general": msgGeneric})
	}
}

// Login never tells the caller which credential was wrong.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}
	if ok, errs := user.ValidateSignIn(req); !ok {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}
	token, err := h.svc.SignIn(r.Context(), req)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			slog.Warn("sign in failed", "err", err)
		}
		writeJSON(w, http.StatusForbidden, map[string]string{"general": msgWrongCreds})
		return
	}
	writeJSON(w, http.StatusOK, TokenEnvelope{Token: token})
}

// UpdateDetails only ever touches the caller's own record.
func (h *UserHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "Unauthorized")
		return
	}
	var req domain.UpdateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}
	if err := h.svc.UpdateDetails(r.Context(), claims.Handle, req); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Profile details updated"})
}

func (h *UserHandler) GetAuthenticated(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "Unauthorized")
		return
	}
	data, err := h.svc.GetAuthenticated(r.Context(), claims.Handle)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *UserHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.GetDetails(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}
