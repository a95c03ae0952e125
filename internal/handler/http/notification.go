package http

import (
	"encoding/json"
	"net/http"

	"github.com/techcreator/ems-backend-go/internal/domain/notification"
	"github.com/techcreator/ems-backend-go/internal/handler/http/response"
)

// NotificationHandler defines the push notification handler interface
type NotificationHandler interface {
	Broadcast(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notifService notification.Service
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{notifService: notifService}
}

// Broadcast sends a push notification to every registered device
func (h *notificationHandlerImpl) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req notification.BroadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.notifService.Broadcast(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Broadcast dispatched", result)
}

// Send delivers a push notification to a single employee
func (h *notificationHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	var req notification.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.notifService.Send(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification dispatched", result)
}
