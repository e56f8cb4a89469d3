package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vcscsvcscs/dosewise/internal/risk"
	"github.com/vcscsvcscs/dosewise/internal/service"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"go.uber.org/zap"
)

// Predictor serves the risk prediction endpoints
type Predictor interface {
	Predict(ctx context.Context, userID string) (risk.Prediction, error)
	TodaysSchedule(ctx context.Context, userID string) ([]service.TodaysMedication, error)
}

// AIHandler implements the /ai endpoints
type AIHandler struct {
	service Predictor
	logger  *zap.Logger
}

// NewAIHandler creates a new AIHandler
func NewAIHandler(service Predictor, logger *zap.Logger) *AIHandler {
	return &AIHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1AiPredict returns the missed night dose risk
func (h *AIHandler) GetApiV1AiPredict(c *gin.Context, params api.GetApiV1AiPredictParams) {
	userID := uuidToString(params.UserId)

	prediction, err := h.service.Predict(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to predict missed doses", zap.String("user_id", userID))
		return
	}

	level := api.PredictionResponseRisk(prediction.Risk)
	c.JSON(http.StatusOK, api.PredictionResponse{
		Risk:             &level,
		MissedNightCount: intPtr(prediction.MissedNightCount),
	})
}

// GetApiV1AiTodaysSchedule returns the schedules due today
func (h *AIHandler) GetApiV1AiTodaysSchedule(c *gin.Context, params api.GetApiV1AiTodaysScheduleParams) {
	userID := uuidToString(params.UserId)

	meds, err := h.service.TodaysSchedule(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to get today's schedule", zap.String("user_id", userID))
		return
	}

	response := make([]api.TodaysMedication, 0, len(meds))
	for _, m := range meds {
		times := m.Times
		response = append(response, api.TodaysMedication{
			ScheduleId: stringPtr(m.ScheduleID),
			Name:       stringPtr(m.Name),
			Dosage:     stringPtr(m.Dosage),
			Times:      &times,
			Frequency:  stringPtr(string(m.Frequency)),
		})
	}

	c.JSON(http.StatusOK, response)
}
