package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/apriori/backend/config/interview"
	"github.com/apriori/backend/services/interview/entity"
)

type fakeStorage struct {
	submissions map[string]*entity.Submission
	byConv      map[string]string
	analyses    map[string]*entity.Analysis
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		submissions: make(map[string]*entity.Submission),
		byConv:      make(map[string]string),
		analyses:    make(map[string]*entity.Analysis),
	}
}

func (f *fakeStorage) CreateSubmission(ctx context.Context, sub *entity.Submission) (*entity.Submission, error) {
	if _, exists := f.byConv[sub.ConversationID]; exists {
		return nil, entity.ErrDuplicateConversation
	}

	stored := *sub
	stored.ID = uuid.New().String()
	stored.Status = entity.StatusReceived
	stored.ReceivedAt = time.Now()

	f.submissions[stored.ID] = &stored
	f.byConv[stored.ConversationID] = stored.ID
	return &stored, nil
}

func (f *fakeStorage) GetSubmission(ctx context.Context, id string) (*entity.Submission, error) {
	sub, ok := f.submissions[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return sub, nil
}

func (f *fakeStorage) GetByConversationID(ctx context.Context, conversationID string) (*entity.Submission, error) {
	id, ok := f.byConv[conversationID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return f.submissions[id], nil
}

func (f *fakeStorage) GetInterview(ctx context.Context, id string) (*entity.Submission, *entity.Analysis, error) {
	sub, ok := f.submissions[id]
	if !ok {
		return nil, nil, entity.ErrNotFound
	}
	return sub, f.analyses[id], nil
}

func (f *fakeStorage) SaveAnalysis(ctx context.Context, submissionID string, analysis *entity.Analysis) (*entity.Analysis, error) {
	sub, ok := f.submissions[submissionID]
	if !ok {
		return nil, entity.ErrNotFound
	}

	stored := *analysis
	stored.ID = uuid.New().String()
	stored.SubmissionID = submissionID
	stored.CreatedAt = time.Now()

	f.analyses[submissionID] = &stored
	sub.Status = entity.StatusScored
	return &stored, nil
}

func (f *fakeStorage) MarkScoringFailed(ctx context.Context, submissionID string) error {
	sub, ok := f.submissions[submissionID]
	if !ok {
		return entity.ErrNotFound
	}
	sub.Status = entity.StatusScoringFailed
	return nil
}

func (f *fakeStorage) ListInterviews(ctx context.Context, req *entity.ListRequest) (*entity.ListResponse, error) {
	resp := &entity.ListResponse{}
	for _, sub := range f.submissions {
		resp.Interviews = append(resp.Interviews, &entity.Preview{ID: sub.ID, Status: sub.Status})
	}
	resp.Total = len(resp.Interviews)
	return resp, nil
}

func (f *fakeStorage) DashboardStats(ctx context.Context, organizationID string) (*entity.DashboardStats, error) {
	return &entity.DashboardStats{TotalInterviews: len(f.submissions)}, nil
}

type fakeScorer struct {
	calls   int
	results []*entity.Analysis
	errs    []error
}

func (f *fakeScorer) Score(ctx context.Context, transcript string) (*entity.Analysis, error) {
	idx := f.calls
	f.calls++
	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	if idx < len(f.results) {
		return f.results[idx], nil
	}
	return nil, entity.ErrModelCall
}

func newUsecase(stg *fakeStorage, scorer *fakeScorer, transcriptLimit int) Usecase {
	cfg := &config.Config{}
	cfg.OpenAI.TranscriptLimit = transcriptLimit
	return New(cfg, stg, scorer)
}

func TestIngestSubmission(t *testing.T) {
	stg := newFakeStorage()
	u := newUsecase(stg, &fakeScorer{}, 1000)

	resp, err := u.IngestSubmission(context.Background(), &entity.IngestRequest{
		ConversationID: "conv-1",
		Transcript:     "I am leaving because of the commute.",
		EmployeeID:     "emp-7",
		OrganizationID: "org-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AckID)
	assert.Equal(t, entity.StatusReceived, resp.Status)

	sub := stg.submissions[resp.AckID]
	require.NotNil(t, sub)
	assert.Equal(t, "conv-1", sub.ConversationID)
	assert.Equal(t, len([]rune(sub.Transcript)), sub.TranscriptLength)
}

func TestIngestMissingFields(t *testing.T) {
	u := newUsecase(newFakeStorage(), &fakeScorer{}, 1000)

	_, err := u.IngestSubmission(context.Background(), &entity.IngestRequest{Transcript: "no id"})
	require.ErrorIs(t, err, entity.ErrMissingField)

	_, err = u.IngestSubmission(context.Background(), &entity.IngestRequest{ConversationID: "conv-1"})
	require.ErrorIs(t, err, entity.ErrMissingField)
}

func TestIngestTruncatesLongTranscript(t *testing.T) {
	stg := newFakeStorage()
	u := newUsecase(stg, &fakeScorer{}, 10)

	long := strings.Repeat("x", 50)
	resp, err := u.IngestSubmission(context.Background(), &entity.IngestRequest{
		ConversationID: "conv-long",
		Transcript:     long,
	})
	require.NoError(t, err)

	sub := stg.submissions[resp.AckID]
	assert.Equal(t, 10, sub.TranscriptLength)
	assert.Equal(t, strings.Repeat("x", 10), sub.Transcript)
}

func TestIngestRedeliveryReturnsExistingAck(t *testing.T) {
	stg := newFakeStorage()
	u := newUsecase(stg, &fakeScorer{}, 1000)

	first, err := u.IngestSubmission(context.Background(), &entity.IngestRequest{
		ConversationID: "conv-1",
		Transcript:     "transcript",
	})
	require.NoError(t, err)

	second, err := u.IngestSubmission(context.Background(), &entity.IngestRequest{
		ConversationID: "conv-1",
		Transcript:     "transcript",
	})
	require.NoError(t, err)
	assert.Equal(t, first.AckID, second.AckID)
	assert.Len(t, stg.submissions, 1)
}

func TestScoreSubmissionSuccess(t *testing.T) {
	stg := newFakeStorage()
	scorer := &fakeScorer{results: []*entity.Analysis{{
		SatisfactionScore: 4.2,
		Sentiment:         entity.SentimentPositive,
		RetentionRisk:     entity.RiskLow,
		Summary:           "All good.",
	}}}
	u := newUsecase(stg, scorer, 1000)

	resp, err := u.IngestSubmission(context.Background(), &entity.IngestRequest{
		ConversationID: "conv-1",
		Transcript:     "transcript",
	})
	require.NoError(t, err)

	analysis, err := u.ScoreSubmission(context.Background(), resp.AckID)
	require.NoError(t, err)
	assert.Equal(t, 4.2, analysis.SatisfactionScore)
	assert.Equal(t, resp.AckID, analysis.SubmissionID)

	assert.Equal(t, entity.StatusScored, stg.submissions[resp.AckID].Status)
	require.NotNil(t, stg.analyses[resp.AckID])
}

func TestScoreSubmissionFailureMarksFailed(t *testing.T) {
	stg := newFakeStorage()
	scorer := &fakeScorer{errs: []error{entity.ErrModelResponseUnparseable}}
	u := newUsecase(stg, scorer, 1000)

	resp, err := u.IngestSubmission(context.Background(), &entity.IngestRequest{
		ConversationID: "conv-1",
		Transcript:     "transcript",
	})
	require.NoError(t, err)

	_, err = u.ScoreSubmission(context.Background(), resp.AckID)
	require.ErrorIs(t, err, entity.ErrModelResponseUnparseable)

	assert.Equal(t, entity.StatusScoringFailed, stg.submissions[resp.AckID].Status)
	assert.Nil(t, stg.analyses[resp.AckID])
}

func TestScoreSubmissionIdempotentWhenScored(t *testing.T) {
	stg := newFakeStorage()
	scorer := &fakeScorer{results: []*entity.Analysis{{
		SatisfactionScore: 3.0,
		Sentiment:         entity.SentimentNeutral,
		RetentionRisk:     entity.RiskMedium,
		Summary:           "ok",
	}}}
	u := newUsecase(stg, scorer, 1000)

	resp, err := u.IngestSubmission(context.Background(), &entity.IngestRequest{
		ConversationID: "conv-1",
		Transcript:     "transcript",
	})
	require.NoError(t, err)

	first, err := u.ScoreSubmission(context.Background(), resp.AckID)
	require.NoError(t, err)

	second, err := u.ScoreSubmission(context.Background(), resp.AckID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, scorer.calls)
}

func TestScoreSubmissionRetryAfterFailure(t *testing.T) {
	stg := newFakeStorage()
	scorer := &fakeScorer{
		errs: []error{entity.ErrModelCall, nil},
		results: []*entity.Analysis{nil, {
			SatisfactionScore: 2.0,
			Sentiment:         entity.SentimentNegative,
			RetentionRisk:     entity.RiskHigh,
			Summary:           "recovered",
		}},
	}
	u := newUsecase(stg, scorer, 1000)

	resp, err := u.IngestSubmission(context.Background(), &entity.IngestRequest{
		ConversationID: "conv-1",
		Transcript:     "transcript",
	})
	require.NoError(t, err)

	_, err = u.ScoreSubmission(context.Background(), resp.AckID)
	require.Error(t, err)
	assert.Equal(t, entity.StatusScoringFailed, stg.submissions[resp.AckID].Status)

	analysis, err := u.ScoreSubmission(context.Background(), resp.AckID)
	require.NoError(t, err)
	assert.Equal(t, entity.SentimentNegative, analysis.Sentiment)
	assert.Equal(t, entity.StatusScored, stg.submissions[resp.AckID].Status)
}

func TestScoreUnknownSubmission(t *testing.T) {
	u := newUsecase(newFakeStorage(), &fakeScorer{}, 1000)

	_, err := u.ScoreSubmission(context.Background(), "missing")
	require.ErrorIs(t, err, entity.ErrNotFound)
}
