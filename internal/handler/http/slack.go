package http

import (
	"encoding/json"
	"net/http"

	"github.com/techcreator/ems-backend-go/internal/handler/http/response"
	"github.com/techcreator/ems-backend-go/internal/pkg/slack"
	"github.com/techcreator/ems-backend-go/internal/pkg/validator"
)

// SlackHandler defines the Slack messaging handler interface
type SlackHandler interface {
	Approval(w http.ResponseWriter, r *http.Request)
	Rejection(w http.ResponseWriter, r *http.Request)
	DailyLog(w http.ResponseWriter, r *http.Request)
	Messages(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type slackHandlerImpl struct {
	client *slack.Client
}

// NewSlackHandler creates a new Slack handler
func NewSlackHandler(client *slack.Client) SlackHandler {
	return &slackHandlerImpl{client: client}
}

type slackMessageRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

func (req *slackMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	} else if !validator.IsValidSlackID(req.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is not a valid Slack ID"})
	}
	if validator.IsEmpty(req.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "message is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Approval DMs an employee that their request was approved
func (h *slackHandlerImpl) Approval(w http.ResponseWriter, r *http.Request) {
	h.postDirect(w, r, "Approval message sent")
}

// Rejection DMs an employee that their request was rejected
func (h *slackHandlerImpl) Rejection(w http.ResponseWriter, r *http.Request) {
	h.postDirect(w, r, "Rejection message sent")
}

func (h *slackHandlerImpl) postDirect(w http.ResponseWriter, r *http.Request, successMsg string) {
	var req slackMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.client.PostDirectMessage(r.Context(), req.UserID, req.Message); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, successMsg, nil)
}

type dailyLogRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Message  string `json:"message"`
}

func (req *dailyLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if validator.IsEmpty(req.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "message is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DailyLog posts an employee's daily log to the shared channel
func (h *slackHandlerImpl) DailyLog(w http.ResponseWriter, r *http.Request) {
	var req dailyLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.client.PostDailyLog(r.Context(), req.UserID, req.UserName, req.Message); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily log posted", nil)
}

type messagesRequest struct {
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
}

func (req *messagesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.ChannelID) {
		errs = append(errs, validator.ValidationError{Field: "channel_id", Message: "channel_id is required"})
	}
	if validator.IsEmpty(req.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Messages returns one user's messages from a channel, newest first
func (h *slackHandlerImpl) Messages(w http.ResponseWriter, r *http.Request) {
	var req messagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	messages, err := h.client.UserMessages(r.Context(), req.ChannelID, req.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"count":    len(messages),
		"messages": messages,
	})
}

type slackEventPayload struct {
	Type      string `json:"type"`
	Challenge string `json:"challenge"`
}

// Events answers the Slack Events API. URL verification echoes the
// challenge; every other callback is acknowledged without processing.
func (h *slackHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	var payload slackEventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid event payload", nil)
		return
	}

	if payload.Type == "url_verification" {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"challenge": payload.Challenge})
		return
	}

	w.WriteHeader(http.StatusOK)
}
