package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime/types"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// ScheduleManager manages medication schedules
type ScheduleManager interface {
	CreateSchedule(ctx context.Context, userID string, schedule *model.Schedule) error
	ListSchedules(ctx context.Context, userID string, activeOnly bool) ([]model.Schedule, error)
	GetSchedule(ctx context.Context, userID, scheduleID string) (*model.Schedule, error)
	UpdateSchedule(ctx context.Context, userID, scheduleID string, updates *model.Schedule) (*model.Schedule, error)
	DeactivateSchedule(ctx context.Context, userID, scheduleID string) error
	DeleteSchedule(ctx context.Context, userID, scheduleID string) error
}

// ScheduleHandler implements schedule API endpoints
type ScheduleHandler struct {
	service ScheduleManager
	logger  *zap.Logger
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(service ScheduleManager, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1Schedules lists the user's schedules
func (h *ScheduleHandler) GetApiV1Schedules(c *gin.Context, params api.GetApiV1SchedulesParams) {
	userID := uuidToString(params.UserId)
	activeOnly := params.Active != nil && *params.Active

	schedules, err := h.service.ListSchedules(c.Request.Context(), userID, activeOnly)
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to list schedules", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, toAPISchedules(schedules))
}

// PostApiV1Schedules creates a schedule
func (h *ScheduleHandler) PostApiV1Schedules(c *gin.Context, params api.PostApiV1SchedulesParams) {
	var req api.PostApiV1SchedulesJSONRequestBody
	if !bindJSON(c, h.logger, &req) {
		return
	}
	userID := uuidToString(params.UserId)

	schedule := fromScheduleRequest(req)
	if err := h.service.CreateSchedule(c.Request.Context(), userID, schedule); err != nil {
		writeServiceError(c, h.logger, err, "Failed to create schedule", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusCreated, toAPISchedule(*schedule))
}

// GetApiV1SchedulesId returns one schedule
func (h *ScheduleHandler) GetApiV1SchedulesId(c *gin.Context, id types.UUID, params api.GetApiV1SchedulesIdParams) {
	userID := uuidToString(params.UserId)
	scheduleID := uuidToString(id)

	schedule, err := h.service.GetSchedule(c.Request.Context(), userID, scheduleID)
	if err != nil {
		writeServiceError(c, h.logger, err, "Schedule not available", zap.String("schedule_id", scheduleID))
		return
	}

	c.JSON(http.StatusOK, toAPISchedule(*schedule))
}

// PutApiV1SchedulesId replaces a schedule's definition
func (h *ScheduleHandler) PutApiV1SchedulesId(c *gin.Context, id types.UUID, params api.PutApiV1SchedulesIdParams) {
	var req api.PutApiV1SchedulesIdJSONRequestBody
	if !bindJSON(c, h.logger, &req) {
		return
	}
	userID := uuidToString(params.UserId)
	scheduleID := uuidToString(id)

	updated, err := h.service.UpdateSchedule(c.Request.Context(), userID, scheduleID, fromScheduleRequest(req))
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to update schedule", zap.String("schedule_id", scheduleID))
		return
	}

	c.JSON(http.StatusOK, toAPISchedule(*updated))
}

// PostApiV1SchedulesIdDeactivate stops a schedule without deleting its history
func (h *ScheduleHandler) PostApiV1SchedulesIdDeactivate(c *gin.Context, id types.UUID, params api.PostApiV1SchedulesIdDeactivateParams) {
	scheduleID := uuidToString(id)

	if err := h.service.DeactivateSchedule(c.Request.Context(), uuidToString(params.UserId), scheduleID); err != nil {
		writeServiceError(c, h.logger, err, "Failed to deactivate schedule", zap.String("schedule_id", scheduleID))
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteApiV1SchedulesId deletes a schedule
func (h *ScheduleHandler) DeleteApiV1SchedulesId(c *gin.Context, id types.UUID, params api.DeleteApiV1SchedulesIdParams) {
	scheduleID := uuidToString(id)

	if err := h.service.DeleteSchedule(c.Request.Context(), uuidToString(params.UserId), scheduleID); err != nil {
		writeServiceError(c, h.logger, err, "Failed to delete schedule", zap.String("schedule_id", scheduleID))
		return
	}

	c.Status(http.StatusNoContent)
}
