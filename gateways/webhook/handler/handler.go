package handler

import (
	"context"
	"log/slog"
	"net/http"

	config "github.com/apriori/backend/config/webhook"
	"github.com/apriori/backend/pkg/json"
	"github.com/apriori/backend/pkg/signature"
	pb "github.com/apriori/backend/specs/proto/interview"
)

// Ingestor is the interview-service boundary. The production implementation
// is the gRPC client in clients/interview.
type Ingestor interface {
	IngestSubmission(ctx context.Context, req *pb.IngestSubmissionReq) (*pb.IngestSubmissionResp, error)
}

type Handler struct {
	cfg        *config.Config
	verifier   *signature.Verifier
	interviews Ingestor
	log        *slog.Logger
}

func New(cfg *config.Config, verifier *signature.Verifier, interviews Ingestor, log *slog.Logger) *Handler {
	return &Handler{
		cfg:        cfg,
		verifier:   verifier,
		interviews: interviews,
		log:        log,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /webhook/elevenlabs", h.Webhook)
	mux.HandleFunc("GET /api/v1/health", h.HealthCheck)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, map[string]bool{"status": true})
}
