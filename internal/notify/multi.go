package notify

import (
	"context"
	"errors"

	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"go.uber.org/zap"
)

// Multi delivers every notification through all of its notifiers
type Multi []reminder.Notifier

// Notify calls every notifier and joins their errors
func (m Multi) Notify(ctx context.Context, n reminder.Notification) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogNotifier writes notifications to the log
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements reminder.Notifier
func (l *LogNotifier) Notify(_ context.Context, n reminder.Notification) error {
	l.logger.Info("notification",
		zap.String("user_id", n.UserID),
		zap.String("kind", string(n.Kind)),
		zap.String("key", n.Key),
		zap.String("title", n.Title),
		zap.String("body", n.Body),
	)
	return nil
}
