package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/dosewise/internal/service"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

func TestPreferenceHandler_PutMergesPartialBody(t *testing.T) {
	// Arrange
	svc := new(MockPreferenceManager)
	h := NewPreferenceHandler(svc, zap.NewNop())
	current := model.DefaultNotificationPreferences()
	want := current
	want.SnoozeMinutes = 15
	want.Location = &model.Location{Lat: 47.5, Lng: 19.0}
	want.LocationRadiusMeters = 200

	svc.On("GetPreferences", mock.Anything, testUser.String()).Return(current, nil)
	svc.On("UpdatePreferences", mock.Anything, testUser.String(), want).Return(nil)

	body := `{"snooze_minutes":15,"location":{"lat":47.5,"lng":19.0},"location_radius_meters":200}`

	// Act
	w := performRequest(http.MethodPut, "/preferences", body, func(r *gin.Engine) {
		r.PUT("/preferences", func(c *gin.Context) {
			h.PutApiV1Preferences(c, api.PutApiV1PreferencesParams{UserId: testUserID})
		})
	})

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	var resp api.NotificationPreferences
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, *resp.RemindersEnabled)
	assert.Equal(t, 15, *resp.SnoozeMinutes)
	assert.Equal(t, float32(200), *resp.LocationRadiusMeters)
	svc.AssertExpectations(t)
}

func TestPreferenceHandler_PutRejected(t *testing.T) {
	// Arrange
	svc := new(MockPreferenceManager)
	h := NewPreferenceHandler(svc, zap.NewNop())
	svc.On("GetPreferences", mock.Anything, testUser.String()).Return(model.DefaultNotificationPreferences(), nil)
	svc.On("UpdatePreferences", mock.Anything, testUser.String(), mock.Anything).
		Return(fmt.Errorf("%w: snooze minutes must not be negative", service.ErrValidation))

	// Act
	w := performRequest(http.MethodPut, "/preferences", `{"snooze_minutes":-1}`, func(r *gin.Engine) {
		r.PUT("/preferences", func(c *gin.Context) {
			h.PutApiV1Preferences(c, api.PutApiV1PreferencesParams{UserId: testUserID})
		})
	})

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreferenceHandler_Devices(t *testing.T) {
	// Arrange
	svc := new(MockPreferenceManager)
	h := NewPreferenceHandler(svc, zap.NewNop())
	svc.On("UpdateDeviceToken", mock.Anything, testUser.String(), "fcm-token").Return(nil)
	svc.On("ReportLocation", testUser.String(), model.Location{Lat: 47.5, Lng: 19}).Return(nil)

	register := func(r *gin.Engine) {
		r.PUT("/token", func(c *gin.Context) {
			h.PutApiV1DevicesToken(c, api.PutApiV1DevicesTokenParams{UserId: testUserID})
		})
		r.POST("/location", func(c *gin.Context) {
			h.PostApiV1DevicesLocation(c, api.PostApiV1DevicesLocationParams{UserId: testUserID})
		})
	}

	// Act
	token := performRequest(http.MethodPut, "/token", `{"token":"fcm-token"}`, register)
	location := performRequest(http.MethodPost, "/location", `{"lat":47.5,"lng":19}`, register)

	// Assert
	assert.Equal(t, http.StatusNoContent, token.Code)
	assert.Equal(t, http.StatusNoContent, location.Code)
	svc.AssertExpectations(t)
}
