package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vcscsvcscs/dosewise/internal/audit"
	"github.com/vcscsvcscs/dosewise/internal/timeutil"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// ScheduleObserver is told about schedule changes that affect armed reminders
type ScheduleObserver interface {
	ScheduleSaved(ctx context.Context, s model.Schedule)
	ScheduleRemoved(ctx context.Context, s model.Schedule)
}

// ScheduleService handles medication schedule management
type ScheduleService struct {
	repo     ScheduleRepository
	users    UserRepository
	audit    audit.Recorder
	observer ScheduleObserver
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(repo ScheduleRepository, users UserRepository, recorder audit.Recorder, logger *zap.Logger) *ScheduleService {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &ScheduleService{
		repo:   repo,
		users:  users,
		audit:  recorder,
		logger: logger,
		now:    time.Now,
	}
}

// SetObserver registers the component notified about schedule changes
func (s *ScheduleService) SetObserver(observer ScheduleObserver) {
	s.observer = observer
}

// CreateSchedule validates and stores a new active schedule for the user
func (s *ScheduleService) CreateSchedule(ctx context.Context, userID string, schedule *model.Schedule) error {
	if userID == "" {
		return validationErrorf("user ID is required")
	}
	if err := normalizeSchedule(schedule); err != nil {
		return err
	}

	now := s.now()
	schedule.ID = uuid.New().String()
	schedule.UserID = userID
	schedule.Active = true
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	if err := s.users.Ensure(ctx, userID); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		s.logger.Error("failed to create schedule",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("name", schedule.Name),
		)
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	s.record(ctx, userID, audit.OperationCreate, schedule.ID)
	s.logger.Info("schedule created",
		zap.String("schedule_id", schedule.ID),
		zap.String("user_id", userID),
		zap.Strings("times", schedule.Times),
	)

	if s.observer != nil {
		s.observer.ScheduleSaved(ctx, *schedule)
	}
	return nil
}

// ListSchedules returns the user's schedules, optionally only the active ones
func (s *ScheduleService) ListSchedules(ctx context.Context, userID string, activeOnly bool) ([]model.Schedule, error) {
	if userID == "" {
		return nil, validationErrorf("user ID is required")
	}

	schedules, err := s.repo.FindByUserID(ctx, userID, activeOnly)
	if err != nil {
		s.logger.Error("failed to list schedules", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

// GetSchedule returns one of the user's schedules
func (s *ScheduleService) GetSchedule(ctx context.Context, userID, scheduleID string) (*model.Schedule, error) {
	schedule, err := s.repo.FindByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if schedule.UserID != userID {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, ErrNotFound)
	}
	return schedule, nil
}

// UpdateSchedule replaces the editable fields of a schedule. ID, owner, and
// active flag are preserved.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, userID, scheduleID string, updates *model.Schedule) (*model.Schedule, error) {
	existing, err := s.GetSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}
	if err := normalizeSchedule(updates); err != nil {
		return nil, err
	}

	updates.ID = existing.ID
	updates.UserID = existing.UserID
	updates.Active = existing.Active
	updates.CreatedAt = existing.CreatedAt
	updates.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, updates); err != nil {
		s.logger.Error("failed to update schedule", zap.Error(err), zap.String("schedule_id", scheduleID))
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	s.record(ctx, userID, audit.OperationUpdate, scheduleID)
	s.logger.Info("schedule updated", zap.String("schedule_id", scheduleID))

	if s.observer != nil {
		s.observer.ScheduleRemoved(ctx, *existing)
		s.observer.ScheduleSaved(ctx, *updates)
	}
	return updates, nil
}

// DeactivateSchedule keeps the schedule but stops reminders and dashboard tracking
func (s *ScheduleService) DeactivateSchedule(ctx context.Context, userID, scheduleID string) error {
	existing, err := s.GetSchedule(ctx, userID, scheduleID)
	if err != nil {
		return err
	}

	if err := s.repo.SetActive(ctx, scheduleID, false); err != nil {
		s.logger.Error("failed to deactivate schedule", zap.Error(err), zap.String("schedule_id", scheduleID))
		return fmt.Errorf("failed to deactivate schedule: %w", err)
	}

	s.record(ctx, userID, audit.OperationUpdate, scheduleID)
	s.logger.Info("schedule deactivated", zap.String("schedule_id", scheduleID))

	if s.observer != nil {
		s.observer.ScheduleRemoved(ctx, *existing)
	}
	return nil
}

// DeleteSchedule removes a schedule. Its dose logs are kept.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, userID, scheduleID string) error {
	existing, err := s.GetSchedule(ctx, userID, scheduleID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, scheduleID); err != nil {
		s.logger.Error("failed to delete schedule", zap.Error(err), zap.String("schedule_id", scheduleID))
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	s.record(ctx, userID, audit.OperationDelete, scheduleID)
	s.logger.Info("schedule deleted", zap.String("schedule_id", scheduleID))

	if s.observer != nil {
		s.observer.ScheduleRemoved(ctx, *existing)
	}
	return nil
}

func (s *ScheduleService) record(ctx context.Context, userID string, op audit.OperationType, scheduleID string) {
	err := s.audit.Record(ctx, audit.Entry{
		UserID:        userID,
		OperationType: op,
		ResourceType:  audit.ResourceSchedule,
		ResourceID:    scheduleID,
		Timestamp:     s.now(),
	})
	if err != nil {
		s.logger.Warn("failed to record schedule audit entry", zap.Error(err), zap.String("schedule_id", scheduleID))
	}
}

// normalizeSchedule validates user-supplied fields and derives the end date
func normalizeSchedule(s *model.Schedule) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Dosage = strings.TrimSpace(s.Dosage)

	if s.Name == "" {
		return validationErrorf("medication name is required")
	}
	if s.Dosage == "" {
		return validationErrorf("dosage is required")
	}
	if len(s.Times) == 0 {
		return validationErrorf("at least one dose time is required")
	}

	seen := make(map[string]bool, len(s.Times))
	for _, raw := range s.Times {
		tod, err := timeutil.ParseTimeOfDay(raw)
		if err != nil {
			return validationErrorf("invalid dose time %q", raw)
		}
		if seen[tod.String()] {
			return validationErrorf("duplicate dose time %q", raw)
		}
		seen[tod.String()] = true
	}

	if s.Frequency == "" {
		s.Frequency = model.FrequencyDaily
	}
	switch s.Frequency {
	case model.FrequencyDaily:
		s.DaysOfWeek = nil
	case model.FrequencyWeekly:
		if len(s.DaysOfWeek) == 0 {
			return validationErrorf("weekly schedules need at least one weekday")
		}
		for _, d := range s.DaysOfWeek {
			if d < 0 || d > 6 {
				return validationErrorf("weekday %d out of range 0-6", d)
			}
		}
	default:
		return validationErrorf("unknown frequency %q", s.Frequency)
	}

	if s.StartDate.IsZero() {
		return validationErrorf("start date is required")
	}
	span, err := timeutil.ParseDurationDescriptor(s.Duration)
	if err != nil {
		return validationErrorf("invalid duration %q", s.Duration)
	}
	if s.EndDate == nil {
		end := span.EndDate(s.StartDate)
		s.EndDate = &end
	}
	if s.EndDate.Before(s.StartDate) {
		return validationErrorf("end date is before start date")
	}
	return nil
}
