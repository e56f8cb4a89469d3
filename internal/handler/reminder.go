package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"go.uber.org/zap"
)

// ReminderManager arms and cancels dose reminders
type ReminderManager interface {
	Arm(ctx context.Context, userID string) ([]string, error)
	Pending(userID string) []reminder.Pending
	Cancel(userID, key string) error
}

// Subscriber streams reminders to a connected client
type Subscriber interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID string) error
}

// ReminderHandler implements the reminder endpoints and the websocket stream
type ReminderHandler struct {
	service ReminderManager
	hub     Subscriber
	logger  *zap.Logger
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(service ReminderManager, hub Subscriber, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{
		service: service,
		hub:     hub,
		logger:  logger,
	}
}

// GetApiV1Reminders lists the reminders waiting to fire
func (h *ReminderHandler) GetApiV1Reminders(c *gin.Context, params api.GetApiV1RemindersParams) {
	c.JSON(http.StatusOK, toAPIPending(h.service.Pending(uuidToString(params.UserId))))
}

// PostApiV1RemindersArm schedules today's reminders for the user
func (h *ReminderHandler) PostApiV1RemindersArm(c *gin.Context, params api.PostApiV1RemindersArmParams) {
	userID := uuidToString(params.UserId)

	keys, err := h.service.Arm(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to arm reminders", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, api.ArmResponse{Armed: &keys})
}

// DeleteApiV1RemindersKey cancels one pending reminder
func (h *ReminderHandler) DeleteApiV1RemindersKey(c *gin.Context, key string, params api.DeleteApiV1RemindersKeyParams) {
	userID := uuidToString(params.UserId)

	if err := h.service.Cancel(userID, key); err != nil {
		writeServiceError(c, h.logger, err, "Failed to cancel reminder",
			zap.String("user_id", userID),
			zap.String("key", key),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetApiV1Ws upgrades the connection to a reminder stream
func (h *ReminderHandler) GetApiV1Ws(c *gin.Context, params api.GetApiV1WsParams) {
	userID := uuidToString(params.UserId)

	if err := h.hub.ServeWS(c.Writer, c.Request, userID); err != nil {
		// The upgrader has already answered the client
		h.logger.Warn("websocket upgrade failed", zap.Error(err), zap.String("user_id", userID))
		return
	}
}
