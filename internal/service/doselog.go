package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vcscsvcscs/dosewise/internal/audit"
	"github.com/vcscsvcscs/dosewise/internal/timeutil"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// DefaultMissedGrace is how long after its due time an unsettled dose is swept as missed
const DefaultMissedGrace = 2 * time.Hour

// LogDoseInput is a dose action reported by the user
type LogDoseInput struct {
	ScheduleID string
	Time       string
	Status     model.DoseStatus
	// ActionTime defaults to the current time
	ActionTime time.Time
}

// DoseLogService records dose actions
type DoseLogService struct {
	logs      DoseLogRepository
	schedules ScheduleRepository
	audit     audit.Recorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewDoseLogService creates a new DoseLogService
func NewDoseLogService(logs DoseLogRepository, schedules ScheduleRepository, recorder audit.Recorder, logger *zap.Logger) *DoseLogService {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &DoseLogService{
		logs:      logs,
		schedules: schedules,
		audit:     recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// LogDose records a dose action. Logging the same status for the same dose
// on the same day again returns the existing log and false.
func (s *DoseLogService) LogDose(ctx context.Context, userID string, in LogDoseInput) (*model.DoseLog, bool, error) {
	if userID == "" {
		return nil, false, validationErrorf("user ID is required")
	}
	if !in.Status.Settles() {
		return nil, false, validationErrorf("invalid status %q", in.Status)
	}
	tod, err := timeutil.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, false, validationErrorf("invalid dose time %q", in.Time)
	}

	schedule, err := s.schedules.FindByID(ctx, in.ScheduleID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, err
		}
		return nil, false, fmt.Errorf("failed to get schedule: %w", err)
	}
	if schedule.UserID != userID {
		return nil, false, fmt.Errorf("schedule %s: %w", in.ScheduleID, ErrNotFound)
	}
	if !hasTime(*schedule, tod) {
		return nil, false, validationErrorf("time %s is not part of the schedule", tod)
	}

	actionTime := in.ActionTime
	if actionTime.IsZero() {
		actionTime = s.now()
	}
	dayStart := timeutil.StartOfDay(actionTime)

	existing, err := s.logs.FindForDose(ctx, schedule.ID, tod.String(), dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, false, fmt.Errorf("failed to check existing dose logs: %w", err)
	}
	for i := range existing {
		if existing[i].Status == in.Status {
			s.logger.Debug("dose already logged",
				zap.String("dose_log_id", existing[i].ID),
				zap.String("schedule_id", schedule.ID),
				zap.String("time", tod.String()),
			)
			return &existing[i], false, nil
		}
	}

	log := &model.DoseLog{
		ID:             uuid.New().String(),
		UserID:         userID,
		ScheduleID:     schedule.ID,
		MedicationName: schedule.DisplayName(),
		Time:           tod.String(),
		ScheduledTime:  timeutil.On(actionTime, tod),
		ActionTime:     actionTime,
		Status:         in.Status,
		CreatedAt:      s.now(),
	}
	if err := s.logs.Create(ctx, log); err != nil {
		s.logger.Error("failed to log dose",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("schedule_id", schedule.ID),
		)
		return nil, false, fmt.Errorf("failed to log dose: %w", err)
	}

	if err := s.audit.Record(ctx, audit.Entry{
		UserID:         userID,
		OperationType:  audit.OperationCreate,
		ResourceType:   audit.ResourceDoseLog,
		ResourceID:     log.ID,
		AdditionalData: map[string]any{"status": string(log.Status)},
	}); err != nil {
		s.logger.Warn("failed to record dose log audit entry", zap.Error(err))
	}

	s.logger.Info("dose logged",
		zap.String("dose_log_id", log.ID),
		zap.String("schedule_id", schedule.ID),
		zap.String("status", string(log.Status)),
	)
	return log, true, nil
}

// ListLogs returns every log of the user, newest action first
func (s *DoseLogService) ListLogs(ctx context.Context, userID string) ([]model.DoseLog, error) {
	if userID == "" {
		return nil, validationErrorf("user ID is required")
	}
	logs, err := s.logs.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dose logs: %w", err)
	}
	return logs, nil
}

// RecentLogs returns the n most recently created logs of the user
func (s *DoseLogService) RecentLogs(ctx context.Context, userID string, n int) ([]model.DoseLog, error) {
	if userID == "" {
		return nil, validationErrorf("user ID is required")
	}
	if n <= 0 {
		return nil, validationErrorf("limit must be positive")
	}
	logs, err := s.logs.FindRecent(ctx, userID, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent dose logs: %w", err)
	}
	return logs, nil
}

// SweepMissed records a Missed log for every dose due today more than grace
// ago that has no settling log yet. It returns the number of logs written.
func (s *DoseLogService) SweepMissed(ctx context.Context, now time.Time, grace time.Duration) (int, error) {
	schedules, err := s.schedules.FindAllActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load active schedules: %w", err)
	}

	dayStart := timeutil.StartOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	swept := 0

	for _, schedule := range schedules {
		if !dueToday(schedule, now) {
			continue
		}
		for _, raw := range schedule.Times {
			tod, err := timeutil.ParseTimeOfDay(raw)
			if err != nil {
				s.logger.Warn("skipping malformed dose time", zap.String("schedule_id", schedule.ID), zap.String("time", raw))
				continue
			}
			due := timeutil.On(now, tod)
			if now.Sub(due) < grace {
				continue
			}

			existing, err := s.logs.FindForDose(ctx, schedule.ID, tod.String(), dayStart, dayEnd)
			if err != nil {
				return swept, fmt.Errorf("failed to check dose logs: %w", err)
			}
			if settled(existing) {
				continue
			}

			missed := &model.DoseLog{
				ID:             uuid.New().String(),
				UserID:         schedule.UserID,
				ScheduleID:     schedule.ID,
				MedicationName: schedule.DisplayName(),
				Time:           tod.String(),
				ScheduledTime:  due,
				ActionTime:     now,
				Status:         model.DoseStatusMissed,
				CreatedAt:      now,
			}
			if err := s.logs.Create(ctx, missed); err != nil {
				return swept, fmt.Errorf("failed to record missed dose: %w", err)
			}
			swept++
		}
	}

	if swept > 0 {
		s.logger.Info("missed doses swept", zap.Int("count", swept), zap.Time("at", now))
	}
	return swept, nil
}

func hasTime(s model.Schedule, tod timeutil.TimeOfDay) bool {
	for _, raw := range s.Times {
		t, err := timeutil.ParseTimeOfDay(raw)
		if err == nil && t == tod {
			return true
		}
	}
	return false
}

func settled(logs []model.DoseLog) bool {
	for _, l := range logs {
		if l.Status.Settles() {
			return true
		}
	}
	return false
}
