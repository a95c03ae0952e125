package slack

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	slackapi "github.com/slack-go/slack"

	"github.com/techcreator/ems-backend-go/internal/config"
)

// historyPageSize is the per-request limit for conversations.history.
const historyPageSize = 200

// maxHistoryMessages caps how deep UserMessages paginates into a channel.
const maxHistoryMessages = 1000

// UserMessage is one human-authored channel message, already filtered down
// to the requesting user.
type UserMessage struct {
	Text      string    `json:"text"`
	Timestamp string    `json:"ts"`
	SentAt    time.Time `json:"sent_at"`
}

// Client wraps the Slack Web API and the incoming webhook used by the
// reminder broadcasts.
type Client struct {
	api             *slackapi.Client
	webhookURL      string
	dailyLogChannel string
}

// NewClient creates a Slack client. An empty bot token disables the Web API
// methods; an empty webhook URL disables PostWebhook.
func NewClient(cfg config.SlackConfig) *Client {
	var api *slackapi.Client
	if cfg.BotToken != "" {
		opts := []slackapi.Option{}
		if cfg.APIURL != "" {
			opts = append(opts, slackapi.OptionAPIURL(cfg.APIURL))
		}
		api = slackapi.New(cfg.BotToken, opts...)
	}

	return &Client{
		api:             api,
		webhookURL:      cfg.WebhookURL,
		dailyLogChannel: cfg.DailyLogChannel,
	}
}

// Enabled reports whether the Web API is configured.
func (c *Client) Enabled() bool {
	return c.api != nil
}

// PostDirectMessage sends text to a user's DM (channel = Slack user ID).
func (c *Client) PostDirectMessage(ctx context.Context, userID, text string) error {
	if c.api == nil {
		return ErrNotConfigured
	}

	_, _, err := c.api.PostMessageContext(ctx, strings.TrimSpace(userID),
		slackapi.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post message to %s: %w", userID, err)
	}
	return nil
}

// PostDailyLog posts a formatted daily-log entry to the configured channel,
// mentioning the author.
func (c *Client) PostDailyLog(ctx context.Context, userID, userName, message string) error {
	if c.api == nil {
		return ErrNotConfigured
	}
	if c.dailyLogChannel == "" {
		return ErrNoDailyLogChannel
	}

	if userName == "" {
		userName = "Employee"
	}
	text := fmt.Sprintf("*Daily Log from %s* (User: <@%s>)\n\n%s", userName, strings.TrimSpace(userID), message)

	_, _, err := c.api.PostMessageContext(ctx, c.dailyLogChannel,
		slackapi.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post daily log: %w", err)
	}
	return nil
}

// UserMessages pages through a channel's history and returns the given
// user's human messages, newest first. Pagination stops after
// maxHistoryMessages raw messages.
func (c *Client) UserMessages(ctx context.Context, channelID, userID string) ([]UserMessage, error) {
	if c.api == nil {
		return nil, ErrNotConfigured
	}

	userID = strings.TrimSpace(userID)
	var collected []UserMessage
	cursor := ""
	fetched := 0

	for {
		resp, err := c.api.GetConversationHistoryContext(ctx, &slackapi.GetConversationHistoryParameters{
			ChannelID: channelID,
			Limit:     historyPageSize,
			Cursor:    cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch channel history: %w", err)
		}

		fetched += len(resp.Messages)
		for _, msg := range resp.Messages {
			if msg.User != userID || msg.BotID != "" || msg.Type != "message" {
				continue
			}
			if strings.TrimSpace(msg.Text) == "" {
				continue
			}
			collected = append(collected, UserMessage{
				Text:      msg.Text,
				Timestamp: msg.Timestamp,
				SentAt:    parseSlackTimestamp(msg.Timestamp),
			})
		}

		cursor = resp.ResponseMetaData.NextCursor
		if !resp.HasMore || cursor == "" || fetched >= maxHistoryMessages {
			break
		}
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].SentAt.After(collected[j].SentAt)
	})

	slog.Info("Fetched Slack messages", "channel", channelID, "user", userID,
		"total_fetched", fetched, "user_messages", len(collected))
	return collected, nil
}

// PostWebhook sends text through the incoming webhook. Used by the reminder
// broadcasts; failures are the caller's to log.
func (c *Client) PostWebhook(ctx context.Context, text string) error {
	if c.webhookURL == "" {
		return ErrNoWebhook
	}

	if err := slackapi.PostWebhookContext(ctx, c.webhookURL, &slackapi.WebhookMessage{Text: text}); err != nil {
		return fmt.Errorf("failed to send webhook message: %w", err)
	}
	return nil
}

// parseSlackTimestamp converts Slack's "seconds.fraction" ts into a time.
func parseSlackTimestamp(ts string) time.Time {
	f, err := strconv.ParseFloat(ts, 64)
	if err != nil {
		return time.Time{}
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}
