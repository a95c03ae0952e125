package notification

import (
	"github.com/techcreator/ems-backend-go/internal/pkg/validator"
)

type BroadcastRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

func (r *BroadcastRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SendRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Token      string `json:"fcm_token"`
	EmployeeID string `json:"employee_id"`
	URL        string `json:"url"`
}

func (r *SendRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}
	if validator.IsEmpty(r.Token) && validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "fcm_token",
			Message: "either fcm_token or employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeliveryResult is the outcome for one token in a fan-out.
type DeliveryResult struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Pruned  bool   `json:"pruned,omitempty"`
}

type FanOutResponse struct {
	Success      bool             `json:"success"`
	TotalTokens  int              `json:"total_tokens"`
	SuccessCount int              `json:"success_count"`
	Results      []DeliveryResult `json:"results"`
}
