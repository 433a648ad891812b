package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apriori/backend/services/interview/entity"
)

// fakeModel replays canned completion contents, one per request, and records
// the message lists it was called with.
type fakeModel struct {
	t        *testing.T
	contents []string
	status   int
	requests [][]map[string]any
}

func (f *fakeModel) handler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []map[string]any `json:"messages"`
	}
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
	f.requests = append(f.requests, req.Messages)

	if f.status != 0 {
		w.WriteHeader(f.status)
		return
	}

	idx := len(f.requests) - 1
	if idx >= len(f.contents) {
		idx = len(f.contents) - 1
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": f.contents[idx]}},
		},
	})
}

func newScorer(t *testing.T, fake *fakeModel) *Scorer {
	srv := httptest.NewServer(http.HandlerFunc(fake.handler))
	t.Cleanup(srv.Close)

	return New(Config{
		APIKey:    "test-key",
		BaseURL:   srv.URL + "/v1",
		Model:     "gpt-4o-mini",
		MaxTokens: 2000,
		Timeout:   5 * time.Second,
	})
}

func TestScoreWellFormedResponse(t *testing.T) {
	fake := &fakeModel{t: t, contents: []string{
		`{"satisfaction_score":4.2,"sentiment":"Positive","retention_risk":"Low","summary":"Left for a better offer, no systemic issues."}`,
	}}
	s := newScorer(t, fake)

	analysis, err := s.Score(context.Background(), "I enjoyed my time here.")
	require.NoError(t, err)

	assert.Equal(t, 4.2, analysis.SatisfactionScore)
	assert.Equal(t, entity.SentimentPositive, analysis.Sentiment)
	assert.Equal(t, entity.RiskLow, analysis.RetentionRisk)
	assert.Equal(t, "Left for a better offer, no systemic issues.", analysis.Summary)
	assert.Equal(t, "gpt-4o-mini", analysis.ModelUsed)
	assert.Len(t, fake.requests, 1)
}

func TestScoreMarkdownFencedResponse(t *testing.T) {
	fake := &fakeModel{t: t, contents: []string{
		"```json\n{\"satisfaction_score\":2.5,\"sentiment\":\"Negative\",\"retention_risk\":\"High\",\"summary\":\"Serious management complaints.\"}\n```",
	}}
	s := newScorer(t, fake)

	analysis, err := s.Score(context.Background(), "transcript")
	require.NoError(t, err)
	assert.Equal(t, entity.RiskHigh, analysis.RetentionRisk)
	assert.Len(t, fake.requests, 1)
}

func TestScoreMissingScoreTriggersOneCorrectiveRetry(t *testing.T) {
	fake := &fakeModel{t: t, contents: []string{
		`{"sentiment":"Neutral","retention_risk":"Medium","summary":"No score."}`,
		`{"satisfaction_score":3.0,"sentiment":"Neutral","retention_risk":"Medium","summary":"Retry worked."}`,
	}}
	s := newScorer(t, fake)

	analysis, err := s.Score(context.Background(), "transcript")
	require.NoError(t, err)
	assert.Equal(t, 3.0, analysis.SatisfactionScore)

	require.Len(t, fake.requests, 2)
	retryMessages := fake.requests[1]
	last := retryMessages[len(retryMessages)-1]
	assert.Contains(t, last["content"], "valid JSON only")
}

func TestScoreMissingScoreTwiceFails(t *testing.T) {
	fake := &fakeModel{t: t, contents: []string{
		`{"sentiment":"Neutral","retention_risk":"Medium","summary":"Still no score."}`,
	}}
	s := newScorer(t, fake)

	_, err := s.Score(context.Background(), "transcript")
	require.ErrorIs(t, err, entity.ErrModelResponseUnparseable)
	assert.Len(t, fake.requests, 2)
}

func TestScoreOutOfRangeNeverClamped(t *testing.T) {
	fake := &fakeModel{t: t, contents: []string{
		`{"satisfaction_score":7.0,"sentiment":"Positive","retention_risk":"Low","summary":"Too enthusiastic."}`,
	}}
	s := newScorer(t, fake)

	_, err := s.Score(context.Background(), "transcript")
	require.ErrorIs(t, err, entity.ErrScoreOutOfRange)
	assert.Len(t, fake.requests, 2)
}

func TestScoreInvalidEnumRejected(t *testing.T) {
	fake := &fakeModel{t: t, contents: []string{
		`{"satisfaction_score":3.5,"sentiment":"Ecstatic","retention_risk":"Low","summary":"Bad enum."}`,
	}}
	s := newScorer(t, fake)

	_, err := s.Score(context.Background(), "transcript")
	require.ErrorIs(t, err, entity.ErrModelResponseUnparseable)
}

func TestScoreModelCallFailure(t *testing.T) {
	fake := &fakeModel{t: t, status: http.StatusInternalServerError}
	s := newScorer(t, fake)

	_, err := s.Score(context.Background(), "transcript")
	require.ErrorIs(t, err, entity.ErrModelCall)
	assert.Len(t, fake.requests, 2)
}

func TestScoreTranscriptEmbeddedInPrompt(t *testing.T) {
	fake := &fakeModel{t: t, contents: []string{
		`{"satisfaction_score":4.0,"sentiment":"Positive","retention_risk":"Low","summary":"ok"}`,
	}}
	s := newScorer(t, fake)

	_, err := s.Score(context.Background(), "a very specific transcript marker")
	require.NoError(t, err)

	require.Len(t, fake.requests, 1)
	user := fake.requests[0][1]
	assert.Contains(t, user["content"], "a very specific transcript marker")
}
