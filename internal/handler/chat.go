package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vcscsvcscs/dosewise/internal/azure"
	"github.com/vcscsvcscs/dosewise/internal/service"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"go.uber.org/zap"
)

// Assistant answers medication questions
type Assistant interface {
	Context(ctx context.Context, userID string) (*service.ChatContext, error)
	Reply(ctx context.Context, userID string, history []azure.ChatMessage, input, systemPrompt string) (string, error)
}

// ChatHandler implements the chatbot endpoints
type ChatHandler struct {
	service Assistant
	logger  *zap.Logger
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service Assistant, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1ChatbotContext returns the schedules and history the client embeds in its prompt
func (h *ChatHandler) GetApiV1ChatbotContext(c *gin.Context, params api.GetApiV1ChatbotContextParams) {
	userID := uuidToString(params.UserId)

	chatCtx, err := h.service.Context(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to build chat context", zap.String("user_id", userID))
		return
	}

	// service.ChatContext serializes to the ChatContextResponse schema
	c.JSON(http.StatusOK, chatCtx)
}

// PostApiV1ChatbotMessage forwards a conversation turn to the assistant
func (h *ChatHandler) PostApiV1ChatbotMessage(c *gin.Context, params api.PostApiV1ChatbotMessageParams) {
	var req api.PostApiV1ChatbotMessageJSONRequestBody
	if !bindJSON(c, h.logger, &req) {
		return
	}
	userID := uuidToString(params.UserId)

	var history []azure.ChatMessage
	if req.History != nil {
		history = toChatMessages(*req.History)
	}
	systemPrompt := ""
	if req.SystemPrompt != nil {
		systemPrompt = *req.SystemPrompt
	}

	reply, err := h.service.Reply(c.Request.Context(), userID, history, req.Input, systemPrompt)
	if err != nil {
		if errors.Is(err, service.ErrAIUnavailable) {
			h.logger.Error("assistant unavailable", zap.Error(err), zap.String("user_id", userID))
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{
				Code:    api.INTERNALERROR,
				Message: service.AIErrorReply,
			})
			return
		}
		writeServiceError(c, h.logger, err, "Failed to process chat message", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, api.ChatMessageResponse{Reply: reply})
}

// toChatMessages maps client turns onto model roles. Both "model" and
// "assistant" denote prior assistant output.
func toChatMessages(turns []api.ChatTurn) []azure.ChatMessage {
	out := make([]azure.ChatMessage, 0, len(turns))
	for _, t := range turns {
		role := azure.RoleUser
		if t.Role == api.Model || t.Role == api.Assistant {
			role = azure.RoleAssistant
		}
		out = append(out, azure.ChatMessage{Role: role, Content: t.Text})
	}
	return out
}
