package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vcscsvcscs/dosewise/internal/repository"
	"github.com/vcscsvcscs/dosewise/pkg/model"
)

var (
	// ErrValidation marks errors caused by invalid caller input
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when a requested resource does not exist for the user
	ErrNotFound = repository.ErrNotFound
)

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ScheduleRepository defines schedule persistence
type ScheduleRepository interface {
	Create(ctx context.Context, s *model.Schedule) error
	Update(ctx context.Context, s *model.Schedule) error
	SetActive(ctx context.Context, scheduleID string, active bool) error
	Delete(ctx context.Context, scheduleID string) error
	FindByID(ctx context.Context, scheduleID string) (*model.Schedule, error)
	FindByUserID(ctx context.Context, userID string, activeOnly bool) ([]model.Schedule, error)
	FindAllActive(ctx context.Context) ([]model.Schedule, error)
}

// DoseLogRepository defines dose log persistence
type DoseLogRepository interface {
	Create(ctx context.Context, l *model.DoseLog) error
	FindByUserID(ctx context.Context, userID string) ([]model.DoseLog, error)
	FindRecent(ctx context.Context, userID string, limit int) ([]model.DoseLog, error)
	FindInRange(ctx context.Context, userID string, from, to time.Time) ([]model.DoseLog, error)
	FindForDose(ctx context.Context, scheduleID, tod string, from, to time.Time) ([]model.DoseLog, error)
}

// UserRepository defines user persistence
type UserRepository interface {
	Ensure(ctx context.Context, userID string) error
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	UpdatePreferences(ctx context.Context, userID string, prefs model.NotificationPreferences) error
	UpdateDeviceToken(ctx context.Context, userID, token string) error
	MarkAchievementsSeen(ctx context.Context, userID string, keys []string) error
}

// ReportRepository defines report persistence
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, reportID string) (*model.Report, error)
}

var (
	_ ScheduleRepository = (*repository.ScheduleRepository)(nil)
	_ DoseLogRepository  = (*repository.DoseLogRepository)(nil)
	_ UserRepository     = (*repository.UserRepository)(nil)
	_ ReportRepository   = (*repository.ReportRepository)(nil)
)

// dueToday reports whether s expects doses on the calendar day of now:
// active, started, not ended, and daily or weekly with today's weekday listed
func dueToday(s model.Schedule, now time.Time) bool {
	if !s.Active {
		return false
	}
	if now.Before(s.StartDate) {
		return false
	}
	if s.EndDate != nil && now.After(*s.EndDate) {
		return false
	}

	switch s.Frequency {
	case model.FrequencyDaily:
		return true
	case model.FrequencyWeekly:
		weekday := int(now.Weekday())
		for _, d := range s.DaysOfWeek {
			if d == weekday {
				return true
			}
		}
	}
	return false
}
