package postgresql

import (
	"context"
	"fmt"

	"github.com/techcreator/ems-backend-go/internal/domain/notification"
	"github.com/techcreator/ems-backend-go/internal/pkg/database"
)

type deviceTokenRepository struct {
	db *database.DB
}

// NewDeviceTokenRepository creates a new device token repository
func NewDeviceTokenRepository(db *database.DB) notification.DeviceTokenRepository {
	return &deviceTokenRepository{db: db}
}

// ListAll retrieves every registered token with its owner's name
func (r *deviceTokenRepository) ListAll(ctx context.Context) ([]notification.DeviceToken, error) {
	query := `
		SELECT dt.id, dt.employee_id, dt.token, dt.device_info, dt.last_used_at, dt.created_at, e.full_name
		FROM device_tokens dt
		JOIN employees e ON e.id = dt.employee_id
		ORDER BY dt.last_used_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []notification.DeviceToken
	for rows.Next() {
		var t notification.DeviceToken
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.Token, &t.DeviceInfo, &t.LastUsedAt, &t.CreatedAt, &t.OwnerName); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate device tokens: %w", err)
	}

	return tokens, nil
}

// ListByEmployee retrieves all tokens registered for one employee
func (r *deviceTokenRepository) ListByEmployee(ctx context.Context, employeeID string) ([]notification.DeviceToken, error) {
	query := `
		SELECT id, employee_id, token, device_info, last_used_at, created_at
		FROM device_tokens
		WHERE employee_id = $1
		ORDER BY last_used_at DESC
	`

	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens for employee: %w", err)
	}
	defer rows.Close()

	var tokens []notification.DeviceToken
	for rows.Next() {
		var t notification.DeviceToken
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.Token, &t.DeviceInfo, &t.LastUsedAt, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate device tokens: %w", err)
	}

	return tokens, nil
}

// DeleteByToken removes a registration reported dead by the push provider
func (r *deviceTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	query := `DELETE FROM device_tokens WHERE token = $1`

	if _, err := r.db.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to delete device token: %w", err)
	}

	return nil
}
