package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	config "github.com/apriori/backend/config/interview"
	"github.com/apriori/backend/pkg/logger"
	"github.com/apriori/backend/services/interview/entity"
	"github.com/apriori/backend/services/interview/storage"
)

// Scorer is the AI adapter boundary. The production implementation lives in
// the scoring package.
type Scorer interface {
	Score(ctx context.Context, transcript string) (*entity.Analysis, error)
}

type Usecase interface {
	IngestSubmission(ctx context.Context, req *entity.IngestRequest) (*entity.IngestResponse, error)
	ScoreSubmission(ctx context.Context, submissionID string) (*entity.Analysis, error)
	GetInterview(ctx context.Context, id string) (*entity.Submission, *entity.Analysis, error)
	ListInterviews(ctx context.Context, req *entity.ListRequest) (*entity.ListResponse, error)
	DashboardStats(ctx context.Context, organizationID string) (*entity.DashboardStats, error)
}

type usecase struct {
	cfg     *config.Config
	storage storage.Storage
	scorer  Scorer
}

func New(cfg *config.Config, storage storage.Storage, scorer Scorer) Usecase {
	return &usecase{
		cfg:     cfg,
		storage: storage,
		scorer:  scorer,
	}
}

// IngestSubmission validates, truncates and persists one webhook delivery.
// Redelivered conversation ids return the ack of the existing submission.
func (u *usecase) IngestSubmission(ctx context.Context, req *entity.IngestRequest) (*entity.IngestResponse, error) {
	log := logger.FromContext(ctx)

	if req.ConversationID == "" || req.Transcript == "" {
		return nil, fmt.Errorf("%w: conversation_id and transcript are required", entity.ErrMissingField)
	}

	transcript := truncateTranscript(req.Transcript, u.cfg.OpenAI.TranscriptLimit)

	sub, err := u.storage.CreateSubmission(ctx, &entity.Submission{
		ConversationID:   req.ConversationID,
		AgentID:          req.AgentID,
		EmployeeID:       req.EmployeeID,
		Transcript:       transcript,
		TranscriptLength: utf8.RuneCountInString(transcript),
		DurationSeconds:  req.DurationSeconds,
		AudioURL:         req.AudioURL,
		OrganizationID:   req.OrganizationID,
	})
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateConversation) {
			existing, lookupErr := u.storage.GetByConversationID(ctx, req.ConversationID)
			if lookupErr != nil {
				return nil, fmt.Errorf("failed to resolve redelivered conversation: %w", lookupErr)
			}
			log.Info("redelivered conversation, returning existing ack",
				"conversation_id", req.ConversationID,
				"ack_id", existing.ID)
			return &entity.IngestResponse{AckID: existing.ID, Status: existing.Status}, nil
		}
		return nil, err
	}

	log.Info("submission ingested",
		"ack_id", sub.ID,
		"conversation_id", sub.ConversationID,
		"transcript_length", sub.TranscriptLength)

	return &entity.IngestResponse{AckID: sub.ID, Status: sub.Status}, nil
}

// ScoreSubmission runs the AI adapter for one submission. On success the
// analysis and the scored status are written together; on failure the
// submission is marked scoring_failed and nothing else is persisted.
func (u *usecase) ScoreSubmission(ctx context.Context, submissionID string) (*entity.Analysis, error) {
	log := logger.FromContext(ctx)

	sub, err := u.storage.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	if sub.Status == entity.StatusScored {
		_, analysis, err := u.storage.GetInterview(ctx, submissionID)
		if err != nil {
			return nil, err
		}
		return analysis, nil
	}

	analysis, err := u.scorer.Score(ctx, sub.Transcript)
	if err != nil {
		log.Error("scoring failed", "submission_id", submissionID, "error", err)
		if markErr := u.storage.MarkScoringFailed(ctx, submissionID); markErr != nil {
			log.Error("failed to mark submission scoring_failed", "submission_id", submissionID, "error", markErr)
		}
		return nil, err
	}

	saved, err := u.storage.SaveAnalysis(ctx, submissionID, analysis)
	if err != nil {
		return nil, err
	}

	log.Info("submission scored",
		"submission_id", submissionID,
		"satisfaction_score", saved.SatisfactionScore,
		"sentiment", saved.Sentiment,
		"retention_risk", saved.RetentionRisk)

	return saved, nil
}

func (u *usecase) GetInterview(ctx context.Context, id string) (*entity.Submission, *entity.Analysis, error) {
	return u.storage.GetInterview(ctx, id)
}

func (u *usecase) ListInterviews(ctx context.Context, req *entity.ListRequest) (*entity.ListResponse, error) {
	return u.storage.ListInterviews(ctx, req)
}

func (u *usecase) DashboardStats(ctx context.Context, organizationID string) (*entity.DashboardStats, error) {
	return u.storage.DashboardStats(ctx, organizationID)
}

// truncateTranscript caps the transcript at limit runes. Oversized
// transcripts are truncated, never rejected.
func truncateTranscript(transcript string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(transcript) <= limit {
		return transcript
	}

	return string([]rune(transcript)[:limit])
}
