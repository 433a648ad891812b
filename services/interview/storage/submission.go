package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/apriori/backend/pkg/logger"
	"github.com/apriori/backend/services/interview/entity"
	"github.com/apriori/backend/services/interview/storage/postgres/ent"
	"github.com/apriori/backend/services/interview/storage/postgres/ent/interview"
)

func (s *storage) CreateSubmission(ctx context.Context, sub *entity.Submission) (*entity.Submission, error) {
	log := logger.FromContext(ctx)

	entInterview, err := s.Interview.Create().
		SetConversationID(sub.ConversationID).
		SetAgentID(sub.AgentID).
		SetEmployeeID(sub.EmployeeID).
		SetTranscript(sub.Transcript).
		SetTranscriptLength(sub.TranscriptLength).
		SetDurationSeconds(sub.DurationSeconds).
		SetAudioURL(sub.AudioURL).
		SetOrganizationID(sub.OrganizationID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, entity.ErrDuplicateConversation
		}
		log.Error("failed to create submission", "error", err)
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	log.Debug("created submission", "id", entInterview.ID, "conversation_id", sub.ConversationID)

	return makeSubmission(entInterview), nil
}

func (s *storage) GetSubmission(ctx context.Context, id string) (*entity.Submission, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse submission id: %w", err)
	}

	entInterview, err := s.Interview.Get(ctx, uid)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return makeSubmission(entInterview), nil
}

func (s *storage) GetByConversationID(ctx context.Context, conversationID string) (*entity.Submission, error) {
	entInterview, err := s.Interview.Query().
		Where(interview.ConversationID(conversationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission by conversation id: %w", err)
	}

	return makeSubmission(entInterview), nil
}

func (s *storage) GetInterview(ctx context.Context, id string) (*entity.Submission, *entity.Analysis, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse interview id: %w", err)
	}

	entInterview, err := s.Interview.Query().
		Where(interview.ID(uid)).
		WithAnalysis().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, entity.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get interview: %w", err)
	}

	sub := makeSubmission(entInterview)

	var analysis *entity.Analysis
	if entInterview.Edges.Analysis != nil {
		analysis = makeAnalysis(entInterview.Edges.Analysis, sub.ID)
	}

	return sub, analysis, nil
}

func makeSubmission(e *ent.Interview) *entity.Submission {
	return &entity.Submission{
		ID:               e.ID.String(),
		ConversationID:   e.ConversationID,
		AgentID:          e.AgentID,
		EmployeeID:       e.EmployeeID,
		Transcript:       e.Transcript,
		TranscriptLength: e.TranscriptLength,
		DurationSeconds:  e.DurationSeconds,
		AudioURL:         e.AudioURL,
		OrganizationID:   e.OrganizationID,
		Status:           entity.Status(e.Status),
		ReceivedAt:       e.ReceivedAt,
	}
}

func makeAnalysis(a *ent.Analysis, submissionID string) *entity.Analysis {
	return &entity.Analysis{
		ID:                a.ID.String(),
		SubmissionID:      submissionID,
		SatisfactionScore: a.SatisfactionScore,
		Sentiment:         entity.Sentiment(a.Sentiment),
		RetentionRisk:     entity.RetentionRisk(a.RetentionRisk),
		Summary:           a.Summary,
		ModelUsed:         a.ModelUsed,
		CreatedAt:         a.CreatedAt,
	}
}
