package attendance

import (
	"context"
	"time"
)

// AttendanceLogRepository defines data access methods for attendance logs.
type AttendanceLogRepository interface {
	// ListByCheckInRange retrieves logs whose check-in falls in [start, end).
	// Both bounds are UTC instants; the caller derives them from the job's
	// local day boundaries.
	ListByCheckInRange(ctx context.Context, start, end time.Time) ([]AttendanceLog, error)

	// SetAutoCheckout fills in the check-out timestamp on a log and marks it
	// as auto-checked-out. Keyed by the log's unique ID.
	SetAutoCheckout(ctx context.Context, logID string, checkOut time.Time) error
}

// AbsenteeRepository defines data access methods for absentee records.
type AbsenteeRepository interface {
	// ListByCreatedRange retrieves records created in [start, end).
	ListByCreatedRange(ctx context.Context, start, end time.Time) ([]AbsenteeRecord, error)

	// BulkCreate inserts all records in one statement. There is no
	// partial-success mode: either the whole batch lands or none of it does.
	BulkCreate(ctx context.Context, records []AbsenteeRecord) error
}

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	// ListDates retrieves every holiday date.
	ListDates(ctx context.Context) ([]time.Time, error)
}
