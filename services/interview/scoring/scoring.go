// Package scoring turns an interview transcript into an Analysis via one
// chat-completion call. At most one corrective retry; on the second failure
// the caller marks the submission scoring_failed.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/apriori/backend/pkg/logger"
	"github.com/apriori/backend/services/interview/entity"
)

const systemPrompt = "You are an expert HR analyst specialized in employee exit interviews. Respond ONLY with valid JSON."

const correctivePrompt = "Your previous reply could not be parsed. Respond with valid JSON only: a single object with the keys satisfaction_score (number between 1.0 and 5.0), sentiment (Positive, Neutral or Negative), retention_risk (Low, Medium or High) and summary (string). No markdown, no extra text."

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type Scorer struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

func New(cfg Config) *Scorer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Scorer{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
}

// Score issues the completion call and parses the strict four-field response.
// The transcript is expected to be truncated already; see usecase ingest.
func (s *Scorer) Score(ctx context.Context, transcript string) (*entity.Analysis, error) {
	log := logger.FromContext(ctx)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: buildPrompt(transcript)},
	}

	analysis, err := s.attempt(ctx, messages)
	if err == nil {
		return analysis, nil
	}

	log.Warn("scoring attempt failed, retrying once", "error", err)

	// One corrective retry regardless of the failure class; parse failures
	// get the explicit JSON-only instruction appended.
	if errors.Is(err, entity.ErrModelResponseUnparseable) || errors.Is(err, entity.ErrScoreOutOfRange) {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: correctivePrompt,
		})
	}

	analysis, err = s.attempt(ctx, messages)
	if err != nil {
		log.Error("scoring failed after retry", "error", err)
		return nil, err
	}

	return analysis, nil
}

func (s *Scorer) attempt(ctx context.Context, messages []openai.ChatCompletionMessage) (*entity.Analysis, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.1,
		MaxTokens:   s.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrModelCall, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", entity.ErrModelResponseUnparseable)
	}

	return parseResponse(resp.Choices[0].Message.Content, s.model)
}

type modelResponse struct {
	SatisfactionScore *float64 `json:"satisfaction_score"`
	Sentiment         string   `json:"sentiment"`
	RetentionRisk     string   `json:"retention_risk"`
	Summary           string   `json:"summary"`
}

func parseResponse(content, model string) (*entity.Analysis, error) {
	var parsed modelResponse
	if err := json.Unmarshal([]byte(stripFences(content)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrModelResponseUnparseable, err)
	}

	if parsed.SatisfactionScore == nil {
		return nil, fmt.Errorf("%w: satisfaction_score missing", entity.ErrModelResponseUnparseable)
	}
	if parsed.Summary == "" {
		return nil, fmt.Errorf("%w: summary missing", entity.ErrModelResponseUnparseable)
	}

	score := *parsed.SatisfactionScore
	if score < entity.MinSatisfactionScore || score > entity.MaxSatisfactionScore {
		return nil, fmt.Errorf("%w: %.2f", entity.ErrScoreOutOfRange, score)
	}

	sentiment := entity.Sentiment(parsed.Sentiment)
	if !sentiment.Valid() {
		return nil, fmt.Errorf("%w: unknown sentiment %q", entity.ErrModelResponseUnparseable, parsed.Sentiment)
	}

	risk := entity.RetentionRisk(parsed.RetentionRisk)
	if !risk.Valid() {
		return nil, fmt.Errorf("%w: unknown retention risk %q", entity.ErrModelResponseUnparseable, parsed.RetentionRisk)
	}

	return &entity.Analysis{
		SatisfactionScore: score,
		Sentiment:         sentiment,
		RetentionRisk:     risk,
		Summary:           parsed.Summary,
		ModelUsed:         model,
	}, nil
}

// stripFences drops markdown code fences some models wrap around JSON.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

func buildPrompt(transcript string) string {
	return fmt.Sprintf(`Analyze the following exit-interview transcript.

TRANSCRIPT:
%s

Provide your analysis as a single JSON object with exactly these keys:

{
    "satisfaction_score": number between 1.0 and 5.0 (overall employee satisfaction),
    "sentiment": "Positive" | "Neutral" | "Negative",
    "retention_risk": "Low" | "Medium" | "High" (risk that similar employees leave),
    "summary": "2-3 sentence summary for management"
}

IMPORTANT:
- Respond ONLY with the JSON object, no additional text
- Keep all values inside the specified ranges`, transcript)
}
