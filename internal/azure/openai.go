package azure

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"go.uber.org/zap"
)

const apiVersion = "2024-08-01-preview"

// Chat roles accepted in a conversation history
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIClient wraps Azure OpenAI SDK with retry logic and logging
type OpenAIClient struct {
	client     *openai.Client
	deployment string
	logger     *zap.Logger
	maxRetries int
	baseDelay  time.Duration
}

// NewOpenAIClient creates a new Azure OpenAI client using the openai-go SDK with Azure extensions
func NewOpenAIClient(endpoint, apiKey, deployment string, logger *zap.Logger) (*OpenAIClient, error) {
	if endpoint == "" || apiKey == "" || deployment == "" {
		return nil, fmt.Errorf("endpoint, apiKey, and deployment are required")
	}

	client := openai.NewClient(
		azure.WithEndpoint(endpoint, apiVersion),
		azure.WithAPIKey(apiKey),
	)

	return &OpenAIClient{
		client:     &client,
		deployment: deployment,
		logger:     logger,
		maxRetries: 3,
		baseDelay:  time.Second,
	}, nil
}

// Chat sends a system prompt followed by the conversation history and
// returns the assistant reply
func (c *OpenAIClient) Chat(ctx context.Context, systemPrompt string, history []ChatMessage) (string, error) {
	return c.Complete(ctx, BuildMessages(systemPrompt, history))
}

// BuildMessages converts a conversation into SDK message params. Turns with an
// unknown role are sent as user turns.
func BuildMessages(systemPrompt string, history []ChatMessage) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	for _, m := range history {
		if m.Role == RoleAssistant {
			messages = append(messages, openai.AssistantMessage(m.Content))
			continue
		}
		messages = append(messages, openai.UserMessage(m.Content))
	}
	return messages
}

// Complete sends a chat completion request to Azure OpenAI with retry logic
func (c *OpenAIClient) Complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	startTime := time.Now()
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.baseDelay * time.Duration(1<<uint(attempt-1))
			c.logger.Info("retrying Azure OpenAI request",
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay),
			)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("Azure OpenAI request cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
		}

		result, err := c.complete(ctx, messages)
		if err == nil {
			c.logger.Info("Azure OpenAI request completed",
				zap.Duration("processing_time", time.Since(startTime)),
				zap.Int("attempts", attempt+1),
			)
			return result, nil
		}

		lastErr = err
		if !c.isRetryable(err) {
			c.logger.Error("non-retryable Azure OpenAI error",
				zap.Error(err),
				zap.Int("attempt", attempt+1),
			)
			break
		}

		c.logger.Warn("Azure OpenAI request failed, will retry",
			zap.Error(err),
			zap.Int("attempt", attempt+1),
		)
	}

	c.logger.Error("Azure OpenAI request failed after retries",
		zap.Error(lastErr),
		zap.Duration("total_time", time.Since(startTime)),
		zap.Int("max_retries", c.maxRetries),
	)

	return "", fmt.Errorf("Azure OpenAI request failed after %d attempts: %w", c.maxRetries, lastErr)
}

// complete performs a single chat completion request
func (c *OpenAIClient) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	requestStart := time.Now()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.deployment),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from Azure OpenAI")
	}

	c.logger.Info("Azure OpenAI token usage",
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int64("total_tokens", resp.Usage.TotalTokens),
		zap.Duration("request_time", time.Since(requestStart)),
	)

	return resp.Choices[0].Message.Content, nil
}

// isRetryable determines if an error should trigger a retry
func (c *OpenAIClient) isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "authentication") || strings.Contains(errStr, "unauthorized") || strings.Contains(errStr, "401") {
		return false
	}
	if strings.Contains(errStr, "invalid") || strings.Contains(errStr, "bad request") || strings.Contains(errStr, "400") {
		return false
	}

	// rate limits, timeouts and network errors
	return true
}
