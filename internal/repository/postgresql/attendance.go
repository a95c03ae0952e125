package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/techcreator/ems-backend-go/internal/domain/attendance"
	"github.com/techcreator/ems-backend-go/internal/pkg/database"
)

type attendanceLogRepository struct {
	db *database.DB
}

// NewAttendanceLogRepository creates a new attendance log repository
func NewAttendanceLogRepository(db *database.DB) attendance.AttendanceLogRepository {
	return &attendanceLogRepository{db: db}
}

// ListByCheckInRange retrieves logs whose check-in falls in [start, end)
func (r *attendanceLogRepository) ListByCheckInRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceLog, error) {
	query := `
		SELECT id, employee_id, check_in, check_out, auto_checkout, work_mode, created_at
		FROM attendance_logs
		WHERE check_in >= $1 AND check_in < $2
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.AttendanceLog
	for rows.Next() {
		var l attendance.AttendanceLog
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.CheckIn, &l.CheckOut, &l.AutoCheckout, &l.WorkMode, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance logs: %w", err)
	}

	return logs, nil
}

// SetAutoCheckout stamps the check-out time and flags the log as
// auto-checked-out
func (r *attendanceLogRepository) SetAutoCheckout(ctx context.Context, logID string, checkOut time.Time) error {
	query := `
		UPDATE attendance_logs
		SET check_out = $2, auto_checkout = TRUE
		WHERE id = $1 AND check_out IS NULL
	`

	tag, err := r.db.Exec(ctx, query, logID, checkOut)
	if err != nil {
		return fmt.Errorf("failed to set auto checkout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceLogNotFound
	}

	return nil
}
