package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vcscsvcscs/dosewise/internal/risk"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// TodaysMedication is a schedule expected to be taken today
type TodaysMedication struct {
	ScheduleID string          `json:"schedule_id"`
	Name       string          `json:"name"`
	Dosage     string          `json:"dosage"`
	Times      []string        `json:"times"`
	Frequency  model.Frequency `json:"frequency"`
}

// PredictionService serves the adherence risk endpoints
type PredictionService struct {
	schedules ScheduleRepository
	logs      DoseLogRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewPredictionService creates a new PredictionService
func NewPredictionService(schedules ScheduleRepository, logs DoseLogRepository, logger *zap.Logger) *PredictionService {
	return &PredictionService{
		schedules: schedules,
		logs:      logs,
		logger:    logger,
		now:       time.Now,
	}
}

// Predict classifies the risk of missed night doses from the most recent logs
func (s *PredictionService) Predict(ctx context.Context, userID string) (risk.Prediction, error) {
	if userID == "" {
		return risk.Prediction{}, validationErrorf("user ID is required")
	}

	logs, err := s.logs.FindRecent(ctx, userID, risk.HistorySize)
	if err != nil {
		s.logger.Error("failed to load dose logs for prediction", zap.Error(err), zap.String("user_id", userID))
		return risk.Prediction{}, fmt.Errorf("failed to load dose logs: %w", err)
	}

	prediction := risk.PredictMissedDoses(logs)
	s.logger.Info("missed dose risk predicted",
		zap.String("user_id", userID),
		zap.String("risk", string(prediction.Risk)),
		zap.Int("missed_night_count", prediction.MissedNightCount),
	)
	return prediction, nil
}

// TodaysSchedule lists the active schedules due on the current day
func (s *PredictionService) TodaysSchedule(ctx context.Context, userID string) ([]TodaysMedication, error) {
	if userID == "" {
		return nil, validationErrorf("user ID is required")
	}

	schedules, err := s.schedules.FindByUserID(ctx, userID, true)
	if err != nil {
		s.logger.Error("failed to load schedules", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}

	now := s.now()
	out := make([]TodaysMedication, 0, len(schedules))
	for _, sc := range schedules {
		if !dueToday(sc, now) {
			continue
		}
		out = append(out, TodaysMedication{
			ScheduleID: sc.ID,
			Name:       sc.Name,
			Dosage:     sc.Dosage,
			Times:      sc.Times,
			Frequency:  sc.Frequency,
		})
	}
	return out, nil
}
