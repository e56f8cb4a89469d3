package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// ReminderScheduler arms and cancels one-shot dose reminders
type ReminderScheduler interface {
	SetReminder(req reminder.Request, prefs model.NotificationPreferences) ([]string, error)
	Cancel(key string) bool
	CancelSchedule(scheduleID string) int
	Pending() []reminder.Pending
}

var _ ReminderScheduler = (*reminder.Scheduler)(nil)

// ReminderService arms the reminders of users from their stored schedules
type ReminderService struct {
	scheduler ReminderScheduler
	schedules ScheduleRepository
	users     UserRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewReminderService creates a new ReminderService
func NewReminderService(scheduler ReminderScheduler, schedules ScheduleRepository, users UserRepository, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		scheduler: scheduler,
		schedules: schedules,
		users:     users,
		logger:    logger,
		now:       time.Now,
	}
}

// Arm sets reminders for the remaining doses of today of every active schedule
// of the user. Already armed doses are kept. It returns the newly armed keys.
func (s *ReminderService) Arm(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, validationErrorf("user ID is required")
	}

	prefs, err := s.preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !prefs.RemindersEnabled {
		return []string{}, nil
	}

	schedules, err := s.schedules.FindByUserID(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}

	now := s.now()
	armed := make([]string, 0)
	for _, sc := range schedules {
		if !dueToday(sc, now) {
			continue
		}
		keys, err := s.scheduler.SetReminder(reminder.FromSchedule(sc), prefs)
		if err != nil {
			if errors.Is(err, reminder.ErrNoTimes) {
				continue
			}
			return armed, fmt.Errorf("failed to arm reminders: %w", err)
		}
		armed = append(armed, keys...)
	}
	return armed, nil
}

// RearmAll arms reminders for every known user and returns how many were armed
func (s *ReminderService) RearmAll(ctx context.Context) (int, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	total := 0
	for _, u := range users {
		keys, err := s.Arm(ctx, u.ID)
		total += len(keys)
		if err != nil {
			if errors.Is(err, reminder.ErrClosed) {
				return total, err
			}
			s.logger.Warn("failed to arm reminders for user", zap.Error(err), zap.String("user_id", u.ID))
		}
	}
	return total, nil
}

// Pending lists the armed reminders of the user ordered by due time
func (s *ReminderService) Pending(userID string) []reminder.Pending {
	out := make([]reminder.Pending, 0)
	for _, p := range s.scheduler.Pending() {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// Cancel removes one armed reminder of the user
func (s *ReminderService) Cancel(userID, key string) error {
	for _, p := range s.scheduler.Pending() {
		if p.Key == key && p.UserID == userID {
			if s.scheduler.Cancel(key) {
				return nil
			}
			break
		}
	}
	return fmt.Errorf("reminder %s: %w", key, ErrNotFound)
}

// CancelAll removes every armed reminder of the user
func (s *ReminderService) CancelAll(userID string) int {
	n := 0
	for _, p := range s.Pending(userID) {
		if s.scheduler.Cancel(p.Key) {
			n++
		}
	}
	return n
}

// ScheduleSaved arms reminders for a created or edited schedule
func (s *ReminderService) ScheduleSaved(ctx context.Context, sc model.Schedule) {
	if !dueToday(sc, s.now()) {
		return
	}
	prefs, err := s.preferences(ctx, sc.UserID)
	if err != nil {
		s.logger.Warn("failed to load preferences for reminders", zap.Error(err), zap.String("user_id", sc.UserID))
		return
	}
	if !prefs.RemindersEnabled {
		return
	}
	if _, err := s.scheduler.SetReminder(reminder.FromSchedule(sc), prefs); err != nil {
		s.logger.Warn("failed to arm schedule reminders", zap.Error(err), zap.String("schedule_id", sc.ID))
	}
}

// ScheduleRemoved drops the armed reminders of a schedule
func (s *ReminderService) ScheduleRemoved(_ context.Context, sc model.Schedule) {
	if n := s.scheduler.CancelSchedule(sc.ID); n > 0 {
		s.logger.Info("schedule reminders cancelled", zap.String("schedule_id", sc.ID), zap.Int("count", n))
	}
}

// PreferencesChanged re-arms reminders under the new preferences
func (s *ReminderService) PreferencesChanged(ctx context.Context, userID string, prefs model.NotificationPreferences) {
	s.CancelAll(userID)
	if !prefs.RemindersEnabled {
		return
	}
	if _, err := s.Arm(ctx, userID); err != nil {
		s.logger.Warn("failed to re-arm reminders", zap.Error(err), zap.String("user_id", userID))
	}
}

func (s *ReminderService) preferences(ctx context.Context, userID string) (model.NotificationPreferences, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.DefaultNotificationPreferences(), nil
		}
		return model.NotificationPreferences{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user.Preferences, nil
}
