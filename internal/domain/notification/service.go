package notification

import (
	"context"
)

// Service defines the push-notification fan-out operations.
type Service interface {
	// Broadcast sends a push message to every registered device token.
	// Tokens the provider reports as dead are pruned along the way.
	Broadcast(ctx context.Context, req BroadcastRequest) (*FanOutResponse, error)

	// Send delivers a push message to one employee: the explicit token from
	// the request, plus every token registered for the employee ID.
	Send(ctx context.Context, req SendRequest) (*FanOutResponse, error)
}
