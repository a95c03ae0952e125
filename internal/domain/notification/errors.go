package notification

import "errors"

// Notification domain errors
var (
	ErrPushDisabled   = errors.New("push notifications are not available")
	ErrNoDeviceTokens = errors.New("no valid device tokens found")
)
