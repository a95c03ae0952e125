package slack

import "errors"

var (
	ErrNotConfigured     = errors.New("slack bot token is missing")
	ErrNoWebhook         = errors.New("slack webhook URL is missing")
	ErrNoDailyLogChannel = errors.New("slack daily-log channel is not configured")
)
