package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/techcreator/ems-backend-go/internal/domain/attendance"
	"github.com/techcreator/ems-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *database.DB) attendance.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListDates retrieves every holiday date
func (r *holidayRepository) ListDates(ctx context.Context) ([]time.Time, error) {
	query := `
		SELECT holiday_date
		FROM holidays
		ORDER BY holiday_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan holiday date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return dates, nil
}
