package storage

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/apriori/backend/services/interview/entity"
	"github.com/apriori/backend/services/interview/storage/postgres/ent"
	"github.com/apriori/backend/services/interview/storage/postgres/ent/analysis"
	"github.com/apriori/backend/services/interview/storage/postgres/ent/interview"
)

const previewRunes = 500

func (s *storage) ListInterviews(ctx context.Context, req *entity.ListRequest) (*entity.ListResponse, error) {
	query := s.Interview.Query()
	if req.OrganizationID != "" {
		query = query.Where(interview.OrganizationID(req.OrganizationID))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count interviews: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := query.
		WithAnalysis().
		Order(ent.Desc(interview.FieldReceivedAt)).
		Offset(req.Offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}

	previews := make([]*entity.Preview, len(rows))
	for i, row := range rows {
		preview := &entity.Preview{
			ID:                row.ID.String(),
			ConversationID:    row.ConversationID,
			EmployeeID:        row.EmployeeID,
			TranscriptPreview: truncateRunes(row.Transcript, previewRunes),
			Status:            entity.Status(row.Status),
			ReceivedAt:        row.ReceivedAt,
		}
		if row.Edges.Analysis != nil {
			preview.Analysis = makeAnalysis(row.Edges.Analysis, preview.ID)
		}
		previews[i] = preview
	}

	return &entity.ListResponse{
		Interviews: previews,
		Total:      total,
	}, nil
}

func (s *storage) DashboardStats(ctx context.Context, organizationID string) (*entity.DashboardStats, error) {
	interviews := s.Interview.Query()
	analyses := s.Analysis.Query()
	if organizationID != "" {
		interviews = interviews.Where(interview.OrganizationID(organizationID))
		analyses = analyses.Where(analysis.HasInterviewWith(interview.OrganizationID(organizationID)))
	}

	total, err := interviews.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count interviews: %w", err)
	}

	scored, err := interviews.Clone().
		Where(interview.StatusEQ(interview.StatusScored)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count scored interviews: %w", err)
	}

	failed, err := interviews.Clone().
		Where(interview.StatusEQ(interview.StatusScoringFailed)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count failed interviews: %w", err)
	}

	stats := &entity.DashboardStats{
		TotalInterviews: total,
		Scored:          scored,
		ScoringFailed:   failed,
		SentimentCounts: make(map[entity.Sentiment]int),
		RiskCounts:      make(map[entity.RetentionRisk]int),
	}

	if scored > 0 {
		var means []struct {
			Mean float64 `json:"mean"`
		}
		err = analyses.Clone().
			Aggregate(ent.As(ent.Mean(analysis.FieldSatisfactionScore), "mean")).
			Scan(ctx, &means)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate satisfaction: %w", err)
		}
		if len(means) > 0 {
			stats.AvgSatisfaction = means[0].Mean
		}
	}

	var sentiments []struct {
		Sentiment string `json:"sentiment"`
		Count     int    `json:"count"`
	}
	err = analyses.Clone().
		GroupBy(analysis.FieldSentiment).
		Aggregate(ent.Count()).
		Scan(ctx, &sentiments)
	if err != nil {
		return nil, fmt.Errorf("failed to group sentiments: %w", err)
	}
	for _, row := range sentiments {
		stats.SentimentCounts[entity.Sentiment(row.Sentiment)] = row.Count
	}

	var risks []struct {
		RetentionRisk string `json:"retention_risk"`
		Count         int    `json:"count"`
	}
	err = analyses.Clone().
		GroupBy(analysis.FieldRetentionRisk).
		Aggregate(ent.Count()).
		Scan(ctx, &risks)
	if err != nil {
		return nil, fmt.Errorf("failed to group retention risks: %w", err)
	}
	for _, row := range risks {
		stats.RiskCounts[entity.RetentionRisk(row.RetentionRisk)] = row.Count
	}

	return stats, nil
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
