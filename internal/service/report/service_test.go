package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techcreator/ems-backend-go/internal/domain/attendance"
)

func dailyRequest() attendance.DailyReportRequest {
	return attendance.DailyReportRequest{
		Date: "2026-08-26",
		Rows: []attendance.DailyReportRow{
			{FullName: "Ayesha Khan", CheckIn: "09:02", CheckOut: "17:10", WorkMode: "Onsite", Status: "Present"},
			{FullName: "Bilal Ahmed", CheckIn: "-", CheckOut: "-", WorkMode: "-", Status: "Absent"},
		},
	}
}

func TestRenderDailyPDF(t *testing.T) {
	svc := NewReportService()

	var buf bytes.Buffer
	require.NoError(t, svc.RenderDaily(context.Background(), dailyRequest(), FormatPDF, &buf))

	// %PDF magic bytes
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderDailyXLSX(t *testing.T) {
	svc := NewReportService()

	var buf bytes.Buffer
	require.NoError(t, svc.RenderDaily(context.Background(), dailyRequest(), FormatXLSX, &buf))

	// XLSX files are ZIP archives (PK magic bytes).
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}

func TestRenderSummaryPDF(t *testing.T) {
	svc := NewReportService()

	req := attendance.SummaryReportRequest{
		Title: "Weekly Attendance Report",
		Rows: []attendance.SummaryReportRow{
			{FullName: "Ayesha Khan", PresentDays: 5, AbsentDays: 0, HoursWorked: 41.5, HoursPercent: 103.7},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, svc.RenderSummary(context.Background(), req, FormatPDF, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderDailyRejectsEmptyRows(t *testing.T) {
	svc := NewReportService()

	var buf bytes.Buffer
	err := svc.RenderDaily(context.Background(), attendance.DailyReportRequest{}, FormatPDF, &buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestRenderDailyRejectsBadDate(t *testing.T) {
	svc := NewReportService()

	req := dailyRequest()
	req.Date = "26/08/2026"

	var buf bytes.Buffer
	err := svc.RenderDaily(context.Background(), req, FormatPDF, &buf)
	assert.Error(t, err)
}
