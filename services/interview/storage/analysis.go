package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/apriori/backend/pkg/logger"
	"github.com/apriori/backend/services/interview/entity"
	"github.com/apriori/backend/services/interview/storage/postgres/ent/analysis"
	"github.com/apriori/backend/services/interview/storage/postgres/ent/interview"
)

// SaveAnalysis writes the analysis and flips the submission to scored in one
// transaction, so a submission can never be scored without its result.
func (s *storage) SaveAnalysis(ctx context.Context, submissionID string, result *entity.Analysis) (*entity.Analysis, error) {
	log := logger.FromContext(ctx)

	uid, err := uuid.Parse(submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse submission id: %w", err)
	}

	tx, err := s.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}

	entAnalysis, err := tx.Analysis.Create().
		SetSatisfactionScore(result.SatisfactionScore).
		SetSentiment(analysis.Sentiment(result.Sentiment)).
		SetRetentionRisk(analysis.RetentionRisk(result.RetentionRisk)).
		SetSummary(result.Summary).
		SetModelUsed(result.ModelUsed).
		SetInterviewID(uid).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}

	_, err = tx.Interview.UpdateOneID(uid).
		SetStatus(interview.StatusScored).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit analysis: %w", err)
	}
	log.Debug("saved analysis", "submission_id", submissionID, "analysis_id", entAnalysis.ID)

	return makeAnalysis(entAnalysis, submissionID), nil
}

func (s *storage) MarkScoringFailed(ctx context.Context, submissionID string) error {
	uid, err := uuid.Parse(submissionID)
	if err != nil {
		return fmt.Errorf("failed to parse submission id: %w", err)
	}

	_, err = s.Interview.UpdateOneID(uid).
		SetStatus(interview.StatusScoringFailed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark submission scoring_failed: %w", err)
	}

	return nil
}
