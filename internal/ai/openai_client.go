package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// systemPrompt pins the assistant persona for every upstream call.
const systemPrompt = "You are a helpful assistant for PizzaChain restaurant. " +
	"Help customers with menu questions, orders, and general inquiries. " +
	"Be friendly and concise. Keep responses under 100 words."

const (
	maxReplyTokens   = 100
	replyTemperature = 0.7
	requestTimeout   = 15 * time.Second
)

type OpenAIClient struct {
	client *openai.Client
	model  string
	apiKey string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: requestTimeout}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		apiKey: apiKey,
	}
}

// Send issues a single completion request and classifies whatever comes
// back. A missing credential short-circuits before any network I/O.
func (c *OpenAIClient) Send(ctx context.Context, message string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("panic in openai client")
			out = Outcome{Kind: OutcomeUnexpected}
		}
	}()

	if strings.TrimSpace(c.apiKey) == "" {
		log.Error().Msg("OpenAI API key is not configured")
		return Outcome{Kind: OutcomeConfigError}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: strings.TrimSpace(message)},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		kind := classify(err)
		log.Warn().Err(err).Str("outcome", kind.String()).Msg("openai call failed")
		return Outcome{Kind: kind}
	}

	if len(resp.Choices) == 0 {
		log.Error().Msg("no choices in openai response")
		return Outcome{Kind: OutcomeMalformedResponse}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		log.Error().Msg("empty content in openai message")
		return Outcome{Kind: OutcomeMalformedResponse}
	}

	return Success(content)
}

// classify maps a transport or API error to an OutcomeKind. Typed go-openai
// errors carry the HTTP status; the message substrings cover errors that
// surface through wrapping layers without a status code.
func classify(err error) OutcomeKind {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, apiErr.Type, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, "", err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return OutcomeTimeout
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "insufficient_quota"):
		return OutcomeQuotaExceeded
	case strings.Contains(msg, "401"):
		return OutcomeAuthError
	case strings.Contains(msg, "429"):
		return OutcomeRateLimited
	case strings.Contains(msg, "timeout"):
		return OutcomeTimeout
	default:
		return OutcomeNetworkError
	}
}

func classifyStatus(status int, errType string, err error) OutcomeKind {
	// Quota errors arrive as 429s, so they have to be checked first.
	if errType == "insufficient_quota" || strings.Contains(err.Error(), "insufficient_quota") {
		return OutcomeQuotaExceeded
	}

	switch status {
	case http.StatusUnauthorized:
		return OutcomeAuthError
	case http.StatusTooManyRequests:
		return OutcomeRateLimited
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return OutcomeTimeout
	default:
		return OutcomeNetworkError
	}
}
