package notify

import (
	"context"
	"fmt"
	"strconv"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// MessagingClient is the subset of the FCM client used for pushes
type MessagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// TokenLookup resolves the push token registered for a user
type TokenLookup interface {
	DeviceToken(ctx context.Context, userID string) (string, error)
}

// FirebasePusher delivers notifications as FCM pushes
type FirebasePusher struct {
	client MessagingClient
	tokens TokenLookup
	logger *zap.Logger
}

// NewFirebaseMessaging initializes an FCM client from a service account file
func NewFirebaseMessaging(ctx context.Context, credentialsFile string) (*messaging.Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}
	return client, nil
}

// NewFirebasePusher creates a new FirebasePusher
func NewFirebasePusher(client MessagingClient, tokens TokenLookup, logger *zap.Logger) *FirebasePusher {
	return &FirebasePusher{
		client: client,
		tokens: tokens,
		logger: logger,
	}
}

// Notify implements reminder.Notifier. Users without a device token are skipped.
func (p *FirebasePusher) Notify(ctx context.Context, n reminder.Notification) error {
	token, err := p.tokens.DeviceToken(ctx, n.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up device token: %w", err)
	}
	if token == "" {
		p.logger.Debug("no device token, skipping push", zap.String("user_id", n.UserID))
		return nil
	}

	id, err := p.client.Send(ctx, buildMessage(token, n))
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}

	p.logger.Debug("push sent",
		zap.String("user_id", n.UserID),
		zap.String("message_id", id),
		zap.String("kind", string(n.Kind)),
	)
	return nil
}

func buildMessage(token string, n reminder.Notification) *messaging.Message {
	android := &messaging.AndroidNotification{
		ChannelID: "dose_reminders",
		Priority:  messaging.PriorityHigh,
	}
	if n.Sound {
		android.Sound = "default"
		android.DefaultSound = true
	}
	if n.Vibration {
		android.DefaultVibrateTimings = true
	}

	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: map[string]string{
			"type":        string(n.Kind),
			"key":         n.Key,
			"schedule_id": n.ScheduleID,
			"timestamp":   strconv.FormatInt(n.SentAt.Unix(), 10),
		},
		Android: &messaging.AndroidConfig{
			Priority:     "high",
			Notification: android,
		},
	}
}
