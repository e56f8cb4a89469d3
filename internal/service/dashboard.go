package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vcscsvcscs/dosewise/internal/adherence"
	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// DashboardService builds the adherence dashboard of a user
type DashboardService struct {
	schedules  ScheduleRepository
	logs       DoseLogRepository
	users      UserRepository
	aggregator *adherence.Aggregator
	notifier   reminder.Notifier
	logger     *zap.Logger
	now        func() time.Time
}

// NewDashboardService creates a new DashboardService. notifier may be nil.
func NewDashboardService(
	schedules ScheduleRepository,
	logs DoseLogRepository,
	users UserRepository,
	aggregator *adherence.Aggregator,
	notifier reminder.Notifier,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		schedules:  schedules,
		logs:       logs,
		users:      users,
		aggregator: aggregator,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// DashboardSummary is the dashboard payload with achievements reached since the last view
type DashboardSummary struct {
	adherence.Summary
	NewAchievements []model.Achievement `json:"new_achievements"`
}

// Snapshot aggregates the user's active schedules and dose logs relative to
// the server clock without touching the seen achievement set
func (s *DashboardService) Snapshot(ctx context.Context, userID string) (adherence.Summary, error) {
	if userID == "" {
		return adherence.Summary{}, validationErrorf("user ID is required")
	}

	schedules, err := s.schedules.FindByUserID(ctx, userID, true)
	if err != nil {
		s.logger.Error("failed to load schedules for dashboard", zap.Error(err), zap.String("user_id", userID))
		return adherence.Summary{}, fmt.Errorf("failed to load schedules: %w", err)
	}

	logs, err := s.logs.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load dose logs for dashboard", zap.Error(err), zap.String("user_id", userID))
		return adherence.Summary{}, fmt.Errorf("failed to load dose logs: %w", err)
	}

	return s.aggregator.Summarize(s.now(), schedules, logs), nil
}

// GetSummary returns the dashboard and marks newly reached achievements as seen
func (s *DashboardService) GetSummary(ctx context.Context, userID string) (*DashboardSummary, error) {
	summary, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	var seen []string
	user, err := s.users.FindByID(ctx, userID)
	switch {
	case err == nil:
		seen = user.AchievementsSeen
	case errors.Is(err, ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	fresh := adherence.Unseen(summary.Achievements, seen)
	if len(fresh) > 0 && user != nil {
		keys := make([]string, 0, len(fresh))
		for _, a := range fresh {
			keys = append(keys, a.Key)
		}
		if err := s.users.MarkAchievementsSeen(ctx, userID, keys); err != nil {
			s.logger.Warn("failed to persist seen achievements", zap.Error(err), zap.String("user_id", userID))
		}
		s.celebrate(ctx, userID, fresh, s.now())
	}

	return &DashboardSummary{Summary: summary, NewAchievements: fresh}, nil
}

// celebrate pushes one milestone notification per newly reached achievement
func (s *DashboardService) celebrate(ctx context.Context, userID string, achievements []model.Achievement, now time.Time) {
	if s.notifier == nil {
		return
	}
	for _, a := range achievements {
		err := s.notifier.Notify(ctx, reminder.Notification{
			Kind:   reminder.KindMilestone,
			UserID: userID,
			Key:    a.Key,
			Title:  a.Emoji + " " + a.Title,
			Body:   a.Description,
			SentAt: now,
		})
		if err != nil {
			s.logger.Warn("failed to deliver milestone notification",
				zap.Error(err),
				zap.String("user_id", userID),
				zap.String("achievement", a.Key),
			)
		}
	}
}
