package storage

import (
	"context"

	"github.com/apriori/backend/services/interview/entity"
	"github.com/apriori/backend/services/interview/storage/postgres/ent"
)

type storage struct {
	*ent.Client
}

type Storage interface {
	CreateSubmission(ctx context.Context, sub *entity.Submission) (*entity.Submission, error)
	GetSubmission(ctx context.Context, id string) (*entity.Submission, error)
	GetByConversationID(ctx context.Context, conversationID string) (*entity.Submission, error)
	GetInterview(ctx context.Context, id string) (*entity.Submission, *entity.Analysis, error)

	SaveAnalysis(ctx context.Context, submissionID string, analysis *entity.Analysis) (*entity.Analysis, error)
	MarkScoringFailed(ctx context.Context, submissionID string) error

	ListInterviews(ctx context.Context, req *entity.ListRequest) (*entity.ListResponse, error)
	DashboardStats(ctx context.Context, organizationID string) (*entity.DashboardStats, error)
}

func New(client *ent.Client) Storage {
	return &storage{
		Client: client,
	}
}
