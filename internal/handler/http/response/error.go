package response

import (
	"errors"
	"net/http"

	"github.com/techcreator/ems-backend-go/internal/domain/attendance"
	"github.com/techcreator/ems-backend-go/internal/domain/notification"
	"github.com/techcreator/ems-backend-go/internal/pkg/push"
	"github.com/techcreator/ems-backend-go/internal/pkg/slack"
	"github.com/techcreator/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceLogNotFound):
		NotFound(w, "Attendance log not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNoDeviceTokens):
		NotFound(w, "No device tokens registered")
	case errors.Is(err, notification.ErrPushDisabled), errors.Is(err, push.ErrDisabled):
		ServiceUnavailable(w, "Push notifications are not configured")

	// Slack integration errors
	case errors.Is(err, slack.ErrNotConfigured):
		ServiceUnavailable(w, "Slack bot is not configured")
	case errors.Is(err, slack.ErrNoWebhook):
		ServiceUnavailable(w, "Slack webhook is not configured")
	case errors.Is(err, slack.ErrNoDailyLogChannel):
		ServiceUnavailable(w, "Slack daily-log channel is not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
