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
	"github.com/vcscsvcscs/dosewise/internal/azure"
	"github.com/vcscsvcscs/dosewise/internal/service"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"go.uber.org/zap"
)

func postChat(h *ChatHandler, body string) (int, []byte) {
	w := performRequest(http.MethodPost, "/message", body, func(r *gin.Engine) {
		r.POST("/message", func(c *gin.Context) {
			h.PostApiV1ChatbotMessage(c, api.PostApiV1ChatbotMessageParams{UserId: testUserID})
		})
	})
	return w.Code, w.Body.Bytes()
}

func TestChatHandler_Message(t *testing.T) {
	// Arrange
	svc := new(MockAssistant)
	h := NewChatHandler(svc, zap.NewNop())
	wantHistory := []azure.ChatMessage{
		{Role: azure.RoleUser, Content: "hi"},
		{Role: azure.RoleAssistant, Content: "hello"},
		{Role: azure.RoleAssistant, Content: "anything else?"},
	}
	svc.On("Reply", mock.Anything, testUser.String(), wantHistory, "When is my next dose?", "You are helpful").
		Return("At 20:00.", nil)

	body := `{"history":[{"role":"user","text":"hi"},{"role":"model","text":"hello"},{"role":"assistant","text":"anything else?"}],
		"input":"When is my next dose?","system_prompt":"You are helpful"}`

	// Act
	code, raw := postChat(h, body)

	// Assert
	require.Equal(t, http.StatusOK, code)
	var resp api.ChatMessageResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "At 20:00.", resp.Reply)
	svc.AssertExpectations(t)
}

func TestChatHandler_AIUnavailable(t *testing.T) {
	// Arrange
	svc := new(MockAssistant)
	h := NewChatHandler(svc, zap.NewNop())
	svc.On("Reply", mock.Anything, testUser.String(), mock.Anything, "hello", "").
		Return("", fmt.Errorf("%w: timeout", service.ErrAIUnavailable))

	// Act
	code, raw := postChat(h, `{"input":"hello"}`)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, code)
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, service.AIErrorReply, resp.Message)
}

func TestChatHandler_Context(t *testing.T) {
	// Arrange
	svc := new(MockAssistant)
	h := NewChatHandler(svc, zap.NewNop())
	svc.On("Context", mock.Anything, testUser.String()).Return(&service.ChatContext{
		Schedules:     []service.ChatSchedule{{Name: "Aspirin", Dosage: "100mg", Times: []string{"08:00"}}},
		RecentHistory: []service.ChatHistoryEntry{},
	}, nil)

	// Act
	w := performRequest(http.MethodGet, "/context", "", func(r *gin.Engine) {
		r.GET("/context", func(c *gin.Context) {
			h.GetApiV1ChatbotContext(c, api.GetApiV1ChatbotContextParams{UserId: testUserID})
		})
	})

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	var resp api.ChatContextResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, *resp.Schedules, 1)
	assert.Equal(t, "Aspirin", *(*resp.Schedules)[0].Name)
	assert.Empty(t, *resp.RecentHistory)
}
