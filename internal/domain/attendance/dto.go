package attendance

import (
	"github.com/techcreator/ems-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

// DailyReportRow is one employee's line in a daily attendance report.
// Reports are rendered from rows posted by the dashboard, which has already
// resolved names and formatted the timestamps for display.
type DailyReportRow struct {
	FullName string `json:"full_name"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	WorkMode string `json:"work_mode"`
	Status   string `json:"status"`
}

// SummaryReportRow is one employee's line in a weekly/monthly/filtered
// attendance summary.
type SummaryReportRow struct {
	FullName     string  `json:"full_name"`
	PresentDays  int     `json:"present_days"`
	AbsentDays   int     `json:"absent_days"`
	HoursWorked  float64 `json:"hours_worked"`
	HoursPercent float64 `json:"hours_percent"`
}

type DailyReportRequest struct {
	Date string           `json:"date"`
	Rows []DailyReportRow `json:"data"`
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "data",
			Message: "data is required",
		})
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryReportRequest struct {
	Title string             `json:"title"`
	Rows  []SummaryReportRow `json:"data"`
}

func (r *SummaryReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "data",
			Message: "data is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
