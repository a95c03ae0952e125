package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/techcreator/ems-backend-go/internal/domain/attendance"
	"github.com/techcreator/ems-backend-go/internal/pkg/database"
)

type absenteeRepository struct {
	db *database.DB
}

// NewAbsenteeRepository creates a new absentee repository
func NewAbsenteeRepository(db *database.DB) attendance.AbsenteeRepository {
	return &absenteeRepository{db: db}
}

// ListByCreatedRange retrieves records created in [start, end)
func (r *absenteeRepository) ListByCreatedRange(ctx context.Context, start, end time.Time) ([]attendance.AbsenteeRecord, error) {
	query := `
		SELECT id, employee_id, absentee_type, absentee_timing, created_at
		FROM absentees
		WHERE created_at >= $1 AND created_at < $2
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list absentee records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AbsenteeRecord
	for rows.Next() {
		var rec attendance.AbsenteeRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Type, &rec.Timing, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan absentee record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absentee records: %w", err)
	}

	return records, nil
}

// BulkCreate inserts all records in a single statement. Either the whole
// batch lands or none of it does.
func (r *absenteeRepository) BulkCreate(ctx context.Context, records []attendance.AbsenteeRecord) error {
	if len(records) == 0 {
		return attendance.ErrNothingToInsert
	}

	valueStrings := make([]string, 0, len(records))
	valueArgs := make([]interface{}, 0, len(records)*4)

	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}

		base := i * 4
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, NOW())",
			base+1, base+2, base+3, base+4,
		))
		valueArgs = append(valueArgs,
			rec.ID,
			rec.EmployeeID,
			string(rec.Type),
			rec.Timing,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO absentees (id, employee_id, absentee_type, absentee_timing, created_at)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := r.db.Exec(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("failed to bulk create absentee records: %w", err)
	}

	return nil
}
