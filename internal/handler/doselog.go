package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vcscsvcscs/dosewise/internal/service"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// DoseLogger records and lists dose actions
type DoseLogger interface {
	LogDose(ctx context.Context, userID string, in service.LogDoseInput) (*model.DoseLog, bool, error)
	ListLogs(ctx context.Context, userID string) ([]model.DoseLog, error)
	RecentLogs(ctx context.Context, userID string, n int) ([]model.DoseLog, error)
}

// DoseLogHandler implements dose log API endpoints
type DoseLogHandler struct {
	service DoseLogger
	logger  *zap.Logger
}

// NewDoseLogHandler creates a new DoseLogHandler
func NewDoseLogHandler(service DoseLogger, logger *zap.Logger) *DoseLogHandler {
	return &DoseLogHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1Doselogs lists dose logs, optionally only the most recent ones
func (h *DoseLogHandler) GetApiV1Doselogs(c *gin.Context, params api.GetApiV1DoselogsParams) {
	userID := uuidToString(params.UserId)

	var (
		logs []model.DoseLog
		err  error
	)
	if params.Limit != nil {
		logs, err = h.service.RecentLogs(c.Request.Context(), userID, *params.Limit)
	} else {
		logs, err = h.service.ListLogs(c.Request.Context(), userID)
	}
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to list dose logs", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, toAPIDoseLogs(logs))
}

// PostApiV1Doselogs records a dose action. Repeating an identical action returns the existing log.
func (h *DoseLogHandler) PostApiV1Doselogs(c *gin.Context, params api.PostApiV1DoselogsParams) {
	var req api.PostApiV1DoselogsJSONRequestBody
	if !bindJSON(c, h.logger, &req) {
		return
	}
	userID := uuidToString(params.UserId)

	in := service.LogDoseInput{
		ScheduleID: uuidToString(req.ScheduleId),
		Time:       req.Time,
		Status:     model.DoseStatus(req.Status),
	}
	if req.ActionTime != nil {
		in.ActionTime = *req.ActionTime
	}

	log, created, err := h.service.LogDose(c.Request.Context(), userID, in)
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to log dose",
			zap.String("user_id", userID),
			zap.String("schedule_id", in.ScheduleID),
		)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, toAPIDoseLog(*log))
}
