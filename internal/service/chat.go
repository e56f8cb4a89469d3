package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vcscsvcscs/dosewise/internal/azure"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

const (
	// ChatHistoryLimit is the number of prior messages forwarded to the model
	ChatHistoryLimit = 20
	// ChatContextLogLimit is the number of dose logs included in the chat context
	ChatContextLogLimit = 20

	// EmptyReply is returned when the model produced no text
	EmptyReply = "Sorry, I couldn't generate a response."
	// AIErrorReply is shown to the user when the model could not be reached
	AIErrorReply = "An error occurred while contacting the AI service."
)

// ErrAIUnavailable is returned when the language model call fails
var ErrAIUnavailable = errors.New("AI service unavailable")

// ChatCompleter sends a conversation to a language model
type ChatCompleter interface {
	Chat(ctx context.Context, systemPrompt string, history []azure.ChatMessage) (string, error)
}

// ChatSchedule is the schedule view given to the assistant
type ChatSchedule struct {
	Name      string          `json:"name"`
	Dosage    string          `json:"dosage"`
	Times     []string        `json:"times"`
	Frequency model.Frequency `json:"frequency"`
	StartDate time.Time       `json:"start_date"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
}

// ChatHistoryEntry is a dose log as seen by the assistant
type ChatHistoryEntry struct {
	Name     string           `json:"name"`
	Status   model.DoseStatus `json:"status"`
	LoggedAt time.Time        `json:"logged_at"`
}

// ChatContext is the data the client embeds in its system prompt
type ChatContext struct {
	Schedules     []ChatSchedule     `json:"schedules"`
	RecentHistory []ChatHistoryEntry `json:"recent_history"`
}

// ChatService backs the medication assistant
type ChatService struct {
	schedules ScheduleRepository
	logs      DoseLogRepository
	llm       ChatCompleter
	logger    *zap.Logger
}

// NewChatService creates a new ChatService. llm may be nil when no model is configured.
func NewChatService(schedules ScheduleRepository, logs DoseLogRepository, llm ChatCompleter, logger *zap.Logger) *ChatService {
	return &ChatService{
		schedules: schedules,
		logs:      logs,
		llm:       llm,
		logger:    logger,
	}
}

// Context returns the active schedules and most recent dose logs of the user
func (s *ChatService) Context(ctx context.Context, userID string) (*ChatContext, error) {
	if userID == "" {
		return nil, validationErrorf("user ID is required")
	}

	schedules, err := s.schedules.FindByUserID(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}
	logs, err := s.logs.FindRecent(ctx, userID, ChatContextLogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load dose logs: %w", err)
	}

	out := &ChatContext{
		Schedules:     make([]ChatSchedule, 0, len(schedules)),
		RecentHistory: make([]ChatHistoryEntry, 0, len(logs)),
	}
	for _, sc := range schedules {
		out.Schedules = append(out.Schedules, ChatSchedule{
			Name:      sc.Name,
			Dosage:    sc.Dosage,
			Times:     sc.Times,
			Frequency: sc.Frequency,
			StartDate: sc.StartDate,
			EndDate:   sc.EndDate,
		})
	}
	for _, l := range logs {
		out.RecentHistory = append(out.RecentHistory, ChatHistoryEntry{
			Name:     l.MedicationName,
			Status:   l.Status,
			LoggedAt: l.ActionTime,
		})
	}
	return out, nil
}

// Reply forwards the last messages of history plus input to the model
func (s *ChatService) Reply(ctx context.Context, userID string, history []azure.ChatMessage, input, systemPrompt string) (string, error) {
	if userID == "" {
		return "", validationErrorf("user ID is required")
	}
	if strings.TrimSpace(input) == "" {
		return "", validationErrorf("input is required")
	}
	if s.llm == nil {
		return "", fmt.Errorf("%w: no language model configured", ErrAIUnavailable)
	}

	if len(history) > ChatHistoryLimit {
		history = history[len(history)-ChatHistoryLimit:]
	}
	conversation := make([]azure.ChatMessage, 0, len(history)+1)
	conversation = append(conversation, history...)
	conversation = append(conversation, azure.ChatMessage{Role: azure.RoleUser, Content: input})

	reply, err := s.llm.Chat(ctx, systemPrompt, conversation)
	if err != nil {
		s.logger.Error("chat completion failed", zap.Error(err), zap.String("user_id", userID))
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	if strings.TrimSpace(reply) == "" {
		return EmptyReply, nil
	}
	return reply, nil
}
