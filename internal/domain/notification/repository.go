package notification

import (
	"context"
)

// DeviceTokenRepository defines data access methods for push registrations.
type DeviceTokenRepository interface {
	// ListAll retrieves every registered token with its owner's name,
	// most recently used first.
	ListAll(ctx context.Context) ([]DeviceToken, error)

	// ListByEmployee retrieves all tokens registered for one employee.
	ListByEmployee(ctx context.Context, employeeID string) ([]DeviceToken, error)

	// DeleteByToken removes a registration the messaging provider has
	// reported as no longer valid.
	DeleteByToken(ctx context.Context, token string) error
}
