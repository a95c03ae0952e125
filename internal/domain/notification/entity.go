package notification

import (
	"time"
)

// DeviceToken is one push-notification registration for an employee's
// device. An employee may hold several (phone, browser, tablet).
type DeviceToken struct {
	ID         string
	EmployeeID string
	Token      string
	DeviceInfo *string
	LastUsedAt time.Time
	CreatedAt  time.Time

	// DTO
	OwnerName *string
}
