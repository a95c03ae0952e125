package push

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/techcreator/ems-backend-go/internal/config"
)

// ErrDisabled is returned when no Firebase credentials were configured.
var ErrDisabled = errors.New("push messaging is disabled")

// Message is one push notification addressed to a single device token.
type Message struct {
	Token string
	Title string
	Body  string
	URL   string
}

// Sender delivers push messages. Satisfied by the FCM client; faked in tests.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	Enabled() bool
	IsTokenInvalid(err error) bool
}

// Client wraps the Firebase Cloud Messaging SDK.
type Client struct {
	messaging *messaging.Client
}

// NewClient initializes FCM from the service-account credentials file. An
// empty path yields a disabled client; sends then fail with ErrDisabled, the
// same way the EMS behaves without its firebase-admin-sdk.json.
func NewClient(ctx context.Context, cfg config.FirebaseConfig) (*Client, error) {
	if cfg.CredentialsFile == "" {
		slog.Warn("Firebase credentials not configured, push notifications disabled")
		return &Client{}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize messaging client: %w", err)
	}

	return &Client{messaging: client}, nil
}

// Enabled reports whether the SDK was initialized with credentials.
func (c *Client) Enabled() bool {
	return c.messaging != nil
}

// Send delivers one message. The platform-specific blocks mirror what the
// employee app expects: high-priority Android channel, APNs badge, webpush
// link-through.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.messaging == nil {
		return ErrDisabled
	}

	link := msg.URL
	if link == "" {
		link = "/"
	}

	_, err := c.messaging.Send(ctx, &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: map[string]string{
			"url":       link,
			"timestamp": strconv.FormatInt(time.Now().UnixMilli(), 10),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     "default",
				ChannelID: "general-notifications",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound:            "default",
					Badge:            intPtr(1),
					ContentAvailable: true,
				},
			},
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Icon:               "/favicon.ico",
				Badge:              "/favicon.ico",
				RequireInteraction: true,
			},
			FCMOptions: &messaging.WebpushFCMOptions{
				Link: link,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send push message: %w", err)
	}
	return nil
}

// IsTokenInvalid reports whether err means the target token is dead and its
// registration should be pruned.
func (c *Client) IsTokenInvalid(err error) bool {
	return messaging.IsUnregistered(err) || errorutils.IsInvalidArgument(err)
}

func intPtr(i int) *int {
	return &i
}
