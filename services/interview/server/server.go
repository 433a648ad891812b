package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"

	config "github.com/apriori/backend/config/interview"
	"github.com/apriori/backend/pkg/logger"
	"github.com/apriori/backend/services/interview/entity"
	"github.com/apriori/backend/services/interview/usecase"
	pb "github.com/apriori/backend/specs/proto/interview"
)

type Server struct {
	pb.UnimplementedInterviewServiceServer

	cfg     *config.Config
	usecase usecase.Usecase
	log     *slog.Logger
}

func NewServerOptions(cfg *config.Config, usecase usecase.Usecase, log *slog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		usecase: usecase,
		log:     log,
	}
}

func (s *Server) NewServer() (*grpc.Server, error) {
	srv := grpc.NewServer()
	pb.RegisterInterviewServiceServer(srv, s)

	return srv, nil
}

// IngestSubmission persists the submission and returns the ack. Scoring runs
// detached so the webhook caller is acked before the outcome is known.
func (s *Server) IngestSubmission(ctx context.Context, req *pb.IngestSubmissionReq) (*pb.IngestSubmissionResp, error) {
	result, err := s.usecase.IngestSubmission(ctx, &entity.IngestRequest{
		ConversationID:  req.ConversationId,
		AgentID:         req.AgentId,
		Transcript:      req.Transcript,
		EmployeeID:      req.EmployeeId,
		DurationSeconds: int(req.DurationSeconds),
		AudioURL:        req.AudioUrl,
		OrganizationID:  req.OrganizationId,
	})
	if err != nil {
		return nil, err
	}

	if result.Status == entity.StatusReceived {
		go s.scoreDetached(result.AckID)
	}

	return &pb.IngestSubmissionResp{
		AckId:  result.AckID,
		Status: string(result.Status),
	}, nil
}

func (s *Server) scoreDetached(submissionID string) {
	ctx := logger.WithContext(context.Background(), s.log)
	if _, err := s.usecase.ScoreSubmission(ctx, submissionID); err != nil {
		s.log.Error("detached scoring failed",
			slog.String("submission_id", submissionID),
			slog.String("error", err.Error()))
	}
}

// ScoreSubmission re-runs scoring synchronously, used to reprocess
// scoring_failed submissions.
func (s *Server) ScoreSubmission(ctx context.Context, req *pb.ScoreSubmissionReq) (*pb.ScoreSubmissionResp, error) {
	analysis, err := s.usecase.ScoreSubmission(ctx, req.SubmissionId)
	if err != nil {
		return nil, err
	}

	return &pb.ScoreSubmissionResp{
		SubmissionId: req.SubmissionId,
		Status:       string(entity.StatusScored),
		Analysis:     makeAnalysisPb(analysis),
	}, nil
}

func (s *Server) GetInterview(ctx context.Context, req *pb.GetInterviewReq) (*pb.GetInterviewResp, error) {
	sub, analysis, err := s.usecase.GetInterview(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	resp := &pb.GetInterviewResp{
		Submission: &pb.Submission{
			Id:               sub.ID,
			ConversationId:   sub.ConversationID,
			AgentId:          sub.AgentID,
			EmployeeId:       sub.EmployeeID,
			Transcript:       sub.Transcript,
			TranscriptLength: int32(sub.TranscriptLength),
			DurationSeconds:  int32(sub.DurationSeconds),
			AudioUrl:         sub.AudioURL,
			OrganizationId:   sub.OrganizationID,
			Status:           string(sub.Status),
			ReceivedAt:       sub.ReceivedAt.Unix(),
		},
	}
	if analysis != nil {
		resp.Analysis = makeAnalysisPb(analysis)
	}

	return resp, nil
}

func (s *Server) ListInterviews(ctx context.Context, req *pb.ListInterviewsReq) (*pb.ListInterviewsResp, error) {
	result, err := s.usecase.ListInterviews(ctx, &entity.ListRequest{
		OrganizationID: req.OrganizationId,
		Offset:         int(req.Offset),
		Limit:          int(req.Limit),
	})
	if err != nil {
		return nil, err
	}

	previews := make([]*pb.InterviewPreview, len(result.Interviews))
	for i, preview := range result.Interviews {
		previews[i] = &pb.InterviewPreview{
			Id:                preview.ID,
			ConversationId:    preview.ConversationID,
			EmployeeId:        preview.EmployeeID,
			TranscriptPreview: preview.TranscriptPreview,
			Status:            string(preview.Status),
			ReceivedAt:        preview.ReceivedAt.Unix(),
		}
		if preview.Analysis != nil {
			previews[i].Analysis = makeAnalysisPb(preview.Analysis)
		}
	}

	return &pb.ListInterviewsResp{
		Interviews: previews,
		Total:      int32(result.Total),
	}, nil
}

func (s *Server) GetDashboardStats(ctx context.Context, req *pb.GetDashboardStatsReq) (*pb.GetDashboardStatsResp, error) {
	stats, err := s.usecase.DashboardStats(ctx, req.OrganizationId)
	if err != nil {
		return nil, err
	}

	sentiments := make(map[string]int64, len(stats.SentimentCounts))
	for sentiment, count := range stats.SentimentCounts {
		sentiments[string(sentiment)] = int64(count)
	}

	risks := make(map[string]int64, len(stats.RiskCounts))
	for risk, count := range stats.RiskCounts {
		risks[string(risk)] = int64(count)
	}

	return &pb.GetDashboardStatsResp{
		TotalInterviews:           int64(stats.TotalInterviews),
		Scored:                    int64(stats.Scored),
		ScoringFailed:             int64(stats.ScoringFailed),
		AvgSatisfaction:           stats.AvgSatisfaction,
		SentimentDistribution:     sentiments,
		RetentionRiskDistribution: risks,
	}, nil
}

func (s *Server) HealthCheck(ctx context.Context, req *pb.HealthCheckReq) (*pb.HealthCheckResp, error) {
	return &pb.HealthCheckResp{Status: true}, nil
}

func makeAnalysisPb(analysis *entity.Analysis) *pb.Analysis {
	return &pb.Analysis{
		Id:                analysis.ID,
		SubmissionId:      analysis.SubmissionID,
		SatisfactionScore: analysis.SatisfactionScore,
		Sentiment:         string(analysis.Sentiment),
		RetentionRisk:     string(analysis.RetentionRisk),
		Summary:           analysis.Summary,
		ModelUsed:         analysis.ModelUsed,
		CreatedAt:         analysis.CreatedAt.Unix(),
	}
}
