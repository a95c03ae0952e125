package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/techcreator/ems-backend-go/internal/domain/attendance"
	"github.com/techcreator/ems-backend-go/internal/handler/http/response"
	"github.com/techcreator/ems-backend-go/internal/service/report"
)

// ReportHandler defines the attendance report handler interface
type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func reportFormat(r *http.Request) report.Format {
	if r.URL.Query().Get("format") == "xlsx" {
		return report.FormatXLSX
	}
	return report.FormatPDF
}

func writeDocument(w http.ResponseWriter, format report.Format, baseName string, buf *bytes.Buffer) {
	stamp := time.Now().Format("2006-01-02")
	if format == report.FormatXLSX {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s.xlsx"`, baseName, stamp))
	} else {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s.pdf"`, baseName, stamp))
	}
	_, _ = w.Write(buf.Bytes())
}

// Daily renders a daily attendance report from posted rows
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	var req attendance.DailyReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	format := reportFormat(r)
	var buf bytes.Buffer
	if err := h.reportService.RenderDaily(r.Context(), req, format, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	writeDocument(w, format, "daily-attendance", &buf)
}

// Weekly renders a weekly attendance summary from posted rows
func (h *reportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	h.summary(w, r, "Weekly Attendance Report", "weekly-attendance")
}

// Monthly renders a monthly attendance summary from posted rows
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	h.summary(w, r, "Monthly Attendance Report", "monthly-attendance")
}

func (h *reportHandlerImpl) summary(w http.ResponseWriter, r *http.Request, defaultTitle, baseName string) {
	var req attendance.SummaryReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Title == "" {
		req.Title = defaultTitle
	}

	format := reportFormat(r)
	var buf bytes.Buffer
	if err := h.reportService.RenderSummary(r.Context(), req, format, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	writeDocument(w, format, baseName, &buf)
}
