package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	config "github.com/apriori/backend/config/web"
	"github.com/apriori/backend/gateways/web/clients/elevenlabs"
	"github.com/apriori/backend/pkg/json"
	"github.com/apriori/backend/pkg/jwt"
	interviewpb "github.com/apriori/backend/specs/proto/interview"
	ssopb "github.com/apriori/backend/specs/proto/sso"
)

type handler struct {
	cfg        *config.Config
	sso        ssopb.SsoServiceClient
	interviews interviewpb.InterviewServiceClient
	eleven     *elevenlabs.Client
	log        *slog.Logger
}

type Handler interface {
	LoginHandler(w http.ResponseWriter, r *http.Request)
	RegisterHandler(w http.ResponseWriter, r *http.Request)
	MeHandler(w http.ResponseWriter, r *http.Request)
	GetOrganizationHandler(w http.ResponseWriter, r *http.Request)

	ListInterviewsHandler(w http.ResponseWriter, r *http.Request)
	GetInterviewHandler(w http.ResponseWriter, r *http.Request)
	RescoreHandler(w http.ResponseWriter, r *http.Request)
	DashboardStatsHandler(w http.ResponseWriter, r *http.Request)
	OutboundCallHandler(w http.ResponseWriter, r *http.Request)

	HealthHandler(w http.ResponseWriter, r *http.Request)
}

func NewHandler(
	cfg *config.Config,
	sso ssopb.SsoServiceClient,
	interviews interviewpb.InterviewServiceClient,
	eleven *elevenlabs.Client,
	log *slog.Logger,
) Handler {
	return &handler{
		cfg:        cfg,
		sso:        sso,
		interviews: interviews,
		eleven:     eleven,
		log:        log,
	}
}

func (h *handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, map[string]bool{"status": true})
}

var errAccessDenied = fmt.Errorf("access denied")

// authorize resolves the caller from the bearer token and loads their user
// record. Every authenticated route goes through here, so organization
// scoping always comes from the token, never from request parameters.
func (h *handler) authorize(r *http.Request) (*ssopb.User, error) {
	token, err := jwt.ParseTokenFromHeader(r)
	if err != nil {
		return nil, errAccessDenied
	}

	userID, err := jwt.ParseUserID(r.Context(), token, h.cfg.JWTSecret)
	if err != nil {
		return nil, errAccessDenied
	}

	res, err := h.sso.GetUser(r.Context(), &ssopb.GetUserReq{UserId: userID})
	if err != nil {
		return nil, errAccessDenied
	}

	return res.User, nil
}

func writeAccessDenied(w http.ResponseWriter) {
	json.WriteError(w, http.StatusForbidden, errAccessDenied)
}
