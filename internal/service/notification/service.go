package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/techcreator/ems-backend-go/internal/domain/notification"
	"github.com/techcreator/ems-backend-go/internal/pkg/push"
)

type NotificationServiceImpl struct {
	notification.DeviceTokenRepository
	sender push.Sender
}

func NewNotificationService(
	tokenRepo notification.DeviceTokenRepository,
	sender push.Sender,
) notification.Service {
	return &NotificationServiceImpl{
		DeviceTokenRepository: tokenRepo,
		sender:                sender,
	}
}

// Broadcast implements notification.Service. The title is personalized with
// the token owner's name when it is known.
func (s *NotificationServiceImpl) Broadcast(ctx context.Context, req notification.BroadcastRequest) (*notification.FanOutResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !s.sender.Enabled() {
		return nil, notification.ErrPushDisabled
	}

	tokens, err := s.DeviceTokenRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	if len(tokens) == 0 {
		return nil, notification.ErrNoDeviceTokens
	}

	resp := s.fanOut(ctx, tokens, func(t notification.DeviceToken) push.Message {
		title := req.Title
		if t.OwnerName != nil && *t.OwnerName != "" {
			title = fmt.Sprintf("%s: %s", *t.OwnerName, req.Title)
		}
		return push.Message{Token: t.Token, Title: title, Body: req.Body, URL: req.URL}
	})

	slog.Info("Push broadcast finished",
		"total", resp.TotalTokens, "delivered", resp.SuccessCount)
	return resp, nil
}

// Send implements notification.Service. The explicit token and the
// employee's registered tokens are merged; duplicates collapse to one send.
func (s *NotificationServiceImpl) Send(ctx context.Context, req notification.SendRequest) (*notification.FanOutResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !s.sender.Enabled() {
		return nil, notification.ErrPushDisabled
	}

	var targets []notification.DeviceToken
	seen := make(map[string]bool)

	if req.Token != "" {
		targets = append(targets, notification.DeviceToken{Token: req.Token})
		seen[req.Token] = true
	}

	if req.EmployeeID != "" {
		registered, err := s.DeviceTokenRepository.ListByEmployee(ctx, req.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to list device tokens for employee: %w", err)
		}
		for _, t := range registered {
			if seen[t.Token] {
				continue
			}
			seen[t.Token] = true
			targets = append(targets, t)
		}
	}

	if len(targets) == 0 {
		return nil, notification.ErrNoDeviceTokens
	}

	resp := s.fanOut(ctx, targets, func(t notification.DeviceToken) push.Message {
		return push.Message{Token: t.Token, Title: req.Title, Body: req.Body, URL: req.URL}
	})

	slog.Info("Push send finished",
		"employee_id", req.EmployeeID,
		"total", resp.TotalTokens, "delivered", resp.SuccessCount)
	return resp, nil
}

// fanOut delivers one message per token. Failures never stop the loop; dead
// tokens reported by the provider are pruned from storage as they surface.
func (s *NotificationServiceImpl) fanOut(
	ctx context.Context,
	tokens []notification.DeviceToken,
	build func(notification.DeviceToken) push.Message,
) *notification.FanOutResponse {
	resp := &notification.FanOutResponse{
		TotalTokens: len(tokens),
		Results:     make([]notification.DeliveryResult, 0, len(tokens)),
	}

	for _, t := range tokens {
		result := notification.DeliveryResult{Token: t.Token}

		if err := s.sender.Send(ctx, build(t)); err != nil {
			result.Error = err.Error()
			if s.sender.IsTokenInvalid(err) {
				result.Pruned = true
				if delErr := s.DeviceTokenRepository.DeleteByToken(ctx, t.Token); delErr != nil {
					slog.Error("Failed to prune dead device token",
						"token", truncateToken(t.Token), "error", delErr)
					result.Pruned = false
				}
			} else {
				slog.Error("Failed to deliver push message",
					"token", truncateToken(t.Token), "error", err)
			}
		} else {
			result.Success = true
			resp.SuccessCount++
		}

		resp.Results = append(resp.Results, result)
	}

	resp.Success = resp.SuccessCount > 0
	return resp
}

// truncateToken keeps logs free of full registration tokens.
func truncateToken(token string) string {
	if len(token) <= 12 {
		return token
	}
	return token[:12] + "..."
}
