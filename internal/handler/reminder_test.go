package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"github.com/vcscsvcscs/dosewise/internal/service"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"go.uber.org/zap"
)

type stubSubscriber struct {
	userID string
	err    error
}

func (s *stubSubscriber) ServeWS(w http.ResponseWriter, _ *http.Request, userID string) error {
	s.userID = userID
	if s.err != nil {
		http.Error(w, s.err.Error(), http.StatusBadRequest)
	}
	return s.err
}

func TestReminderHandler_ArmAndList(t *testing.T) {
	// Arrange
	svc := new(MockReminderManager)
	h := NewReminderHandler(svc, &stubSubscriber{}, zap.NewNop())
	due := time.Date(2024, 5, 2, 20, 0, 0, 0, time.UTC)
	svc.On("Arm", mock.Anything, testUser.String()).Return([]string{"s1-20:00"}, nil)
	svc.On("Pending", testUser.String()).Return([]reminder.Pending{
		{Key: "s1-20:00", UserID: testUser.String(), ScheduleID: "s1", MedicationName: "Aspirin", Time: "20:00", Due: due},
	})

	register := func(r *gin.Engine) {
		r.POST("/arm", func(c *gin.Context) {
			h.PostApiV1RemindersArm(c, api.PostApiV1RemindersArmParams{UserId: testUserID})
		})
		r.GET("/reminders", func(c *gin.Context) {
			h.GetApiV1Reminders(c, api.GetApiV1RemindersParams{UserId: testUserID})
		})
	}

	// Act
	armed := performRequest(http.MethodPost, "/arm", "", register)
	listed := performRequest(http.MethodGet, "/reminders", "", register)

	// Assert
	require.Equal(t, http.StatusOK, armed.Code)
	var armResp api.ArmResponse
	require.NoError(t, json.Unmarshal(armed.Body.Bytes(), &armResp))
	assert.Equal(t, []string{"s1-20:00"}, *armResp.Armed)

	require.Equal(t, http.StatusOK, listed.Code)
	var pending []api.PendingReminder
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "s1-20:00", *pending[0].Key)
	assert.True(t, pending[0].Due.Equal(due))
}

func TestReminderHandler_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "pending reminder", err: nil, wantStatus: http.StatusNoContent},
		{name: "unknown key", err: fmt.Errorf("reminder x: %w", service.ErrNotFound), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc := new(MockReminderManager)
			h := NewReminderHandler(svc, &stubSubscriber{}, zap.NewNop())
			svc.On("Cancel", testUser.String(), "s1-08:00").Return(tt.err)

			// Act
			w := performRequest(http.MethodDelete, "/reminders/s1-08:00", "", func(r *gin.Engine) {
				r.DELETE("/reminders/:key", func(c *gin.Context) {
					h.DeleteApiV1RemindersKey(c, c.Param("key"), api.DeleteApiV1RemindersKeyParams{UserId: testUserID})
				})
			})

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestReminderHandler_WebSocketUpgradeFailure(t *testing.T) {
	// Arrange
	hub := &stubSubscriber{err: errors.New("websocket: not a websocket handshake")}
	h := NewReminderHandler(new(MockReminderManager), hub, zap.NewNop())

	// Act
	w := performRequest(http.MethodGet, "/ws", "", func(r *gin.Engine) {
		r.GET("/ws", func(c *gin.Context) {
			h.GetApiV1Ws(c, api.GetApiV1WsParams{UserId: testUserID})
		})
	})

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, testUser.String(), hub.userID)
}
