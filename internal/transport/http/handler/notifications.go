package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Evanshango/chatty-backend/internal/application/notification"
	"github.com/Evanshango/chatty-backend/internal/transport/http/middleware"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// MarkRead expects a JSON array of notification ids.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.ClaimsFromContext(r.Context()); !ok {
		writeError(w, http.StatusForbidden, "Unauthorized")
		return
	}
	var ids []string
	// null decodes without error but is not an array.
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil || ids == nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}
	if err := h.svc.MarkRead(r.Context(), ids); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Notifications marked as read"})
}
