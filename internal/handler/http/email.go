package http

import (
	"encoding/json"
	"net/http"

	"github.com/techcreator/ems-backend-go/internal/handler/http/response"
	"github.com/techcreator/ems-backend-go/internal/pkg/email"
	"github.com/techcreator/ems-backend-go/internal/pkg/validator"
)

// EmailHandler defines the transactional email handler interface
type EmailHandler interface {
	LeaveRequest(w http.ResponseWriter, r *http.Request)
	LeaveApproval(w http.ResponseWriter, r *http.Request)
	LeaveRejection(w http.ResponseWriter, r *http.Request)
	Alert(w http.ResponseWriter, r *http.Request)
}

type emailHandlerImpl struct {
	emailService email.EmailService
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService email.EmailService) EmailHandler {
	return &emailHandlerImpl{emailService: emailService}
}

type leaveRequestEmail struct {
	To           []string `json:"to"`
	EmployeeName string   `json:"employee_name"`
	LeaveType    string   `json:"leave_type"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Reason       string   `json:"reason"`
}

func (req *leaveRequestEmail) Validate() error {
	var errs validator.ValidationErrors

	if len(req.To) == 0 {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "at least one recipient is required"})
	}
	for _, addr := range req.To {
		if !validator.IsValidEmail(addr) {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "invalid email address: " + addr})
			break
		}
	}
	if validator.IsEmpty(req.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "employee_name is required"})
	}
	if validator.IsEmpty(req.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LeaveRequest notifies approvers of a new leave request
func (h *emailHandlerImpl) LeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req leaveRequestEmail
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.emailService.SendLeaveRequest(req.To, req.EmployeeName, req.LeaveType, req.StartDate, req.EndDate, req.Reason); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request email sent", nil)
}

type leaveDecisionEmail struct {
	To           string `json:"to"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Remarks      string `json:"remarks"`
}

func (req *leaveDecisionEmail) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(req.To) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "a valid recipient email is required"})
	}
	if validator.IsEmpty(req.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "employee_name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LeaveApproval tells an employee their leave was approved
func (h *emailHandlerImpl) LeaveApproval(w http.ResponseWriter, r *http.Request) {
	var req leaveDecisionEmail
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.emailService.SendLeaveApproved(req.To, req.EmployeeName, req.LeaveType, req.StartDate, req.EndDate); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Approval email sent", nil)
}

// LeaveRejection tells an employee their leave was rejected
func (h *emailHandlerImpl) LeaveRejection(w http.ResponseWriter, r *http.Request) {
	var req leaveDecisionEmail
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.emailService.SendLeaveRejected(req.To, req.EmployeeName, req.LeaveType, req.StartDate, req.EndDate, req.Remarks); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rejection email sent", nil)
}

type alertEmail struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

func (req *alertEmail) Validate() error {
	var errs validator.ValidationErrors

	if len(req.To) == 0 {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "at least one recipient is required"})
	}
	if validator.IsEmpty(req.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "subject is required"})
	}
	if validator.IsEmpty(req.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "body is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Alert sends a plain-text operational alert to a recipient list
func (h *emailHandlerImpl) Alert(w http.ResponseWriter, r *http.Request) {
	var req alertEmail
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.emailService.SendAlert(req.To, req.Subject, req.Body); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Alert email sent", nil)
}
