package reminder

import (
	"context"
	"time"

	"github.com/vcscsvcscs/dosewise/pkg/model"
)

// Kind tells reminders apart from follow-ups and milestone messages
type Kind string

const (
	KindReminder  Kind = "reminder"
	KindSnooze    Kind = "snooze"
	KindMilestone Kind = "milestone"
)

// Notification is a message addressed to one user
type Notification struct {
	Kind       Kind      `json:"kind"`
	UserID     string    `json:"user_id"`
	Key        string    `json:"key,omitempty"`
	ScheduleID string    `json:"schedule_id,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Sound      bool      `json:"sound"`
	Vibration  bool      `json:"vibration"`
	SentAt     time.Time `json:"sent_at"`
}

// Notifier delivers notifications to a user
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, n Notification) error

// Notify calls f
func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// PositionSource resolves the current position of a user's device
type PositionSource interface {
	CurrentPosition(ctx context.Context, userID string) (model.Location, error)
}
