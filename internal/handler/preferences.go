package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// PreferenceManager stores notification settings and device state
type PreferenceManager interface {
	GetPreferences(ctx context.Context, userID string) (model.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, userID string, prefs model.NotificationPreferences) error
	UpdateDeviceToken(ctx context.Context, userID, token string) error
	ReportLocation(userID string, loc model.Location) error
}

// PreferenceHandler implements the preference and device endpoints
type PreferenceHandler struct {
	service PreferenceManager
	logger  *zap.Logger
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(service PreferenceManager, logger *zap.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1Preferences returns the user's notification preferences
func (h *PreferenceHandler) GetApiV1Preferences(c *gin.Context, params api.GetApiV1PreferencesParams) {
	userID := uuidToString(params.UserId)

	prefs, err := h.service.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to get preferences", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, toAPIPreferences(prefs))
}

// PutApiV1Preferences updates the fields present in the body
func (h *PreferenceHandler) PutApiV1Preferences(c *gin.Context, params api.PutApiV1PreferencesParams) {
	var req api.PutApiV1PreferencesJSONRequestBody
	if !bindJSON(c, h.logger, &req) {
		return
	}
	userID := uuidToString(params.UserId)
	ctx := c.Request.Context()

	current, err := h.service.GetPreferences(ctx, userID)
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to get preferences", zap.String("user_id", userID))
		return
	}

	prefs := mergePreferences(current, req)
	if err := h.service.UpdatePreferences(ctx, userID, prefs); err != nil {
		writeServiceError(c, h.logger, err, "Failed to update preferences", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, toAPIPreferences(prefs))
}

// PutApiV1DevicesToken registers the push token of the user's device
func (h *PreferenceHandler) PutApiV1DevicesToken(c *gin.Context, params api.PutApiV1DevicesTokenParams) {
	var req api.PutApiV1DevicesTokenJSONRequestBody
	if !bindJSON(c, h.logger, &req) {
		return
	}
	userID := uuidToString(params.UserId)

	if err := h.service.UpdateDeviceToken(c.Request.Context(), userID, req.Token); err != nil {
		writeServiceError(c, h.logger, err, "Failed to register device token", zap.String("user_id", userID))
		return
	}

	c.Status(http.StatusNoContent)
}

// PostApiV1DevicesLocation records the device's current position for geofenced reminders
func (h *PreferenceHandler) PostApiV1DevicesLocation(c *gin.Context, params api.PostApiV1DevicesLocationParams) {
	var req api.PostApiV1DevicesLocationJSONRequestBody
	if !bindJSON(c, h.logger, &req) {
		return
	}
	userID := uuidToString(params.UserId)

	if err := h.service.ReportLocation(userID, *fromAPILocation(req)); err != nil {
		writeServiceError(c, h.logger, err, "Failed to record location", zap.String("user_id", userID))
		return
	}

	c.Status(http.StatusNoContent)
}
