package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apriori/backend/pkg/json"
	pb "github.com/apriori/backend/specs/proto/interview"
)

func (h *handler) ListInterviewsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.authorize(r)
	if err != nil {
		writeAccessDenied(w)
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	res, err := h.interviews.ListInterviews(r.Context(), &pb.ListInterviewsReq{
		OrganizationId: user.OrganizationId,
		Offset:         int32(offset),
		Limit:          int32(limit),
	})
	if err != nil {
		h.log.Error("failed to list interviews", "error", err)
		json.WriteError(w, http.StatusInternalServerError, fmt.Errorf("failed to list interviews"))
		return
	}

	json.WriteProtoJSON(w, http.StatusOK, res)
}

func (h *handler) GetInterviewHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.authorize(r)
	if err != nil {
		writeAccessDenied(w)
		return
	}

	res, err := h.interviews.GetInterview(r.Context(), &pb.GetInterviewReq{
		Id: chi.URLParam(r, "id"),
	})
	if err != nil || res.Submission.OrganizationId != user.OrganizationId {
		json.WriteError(w, http.StatusNotFound, fmt.Errorf("interview not found"))
		return
	}

	json.WriteProtoJSON(w, http.StatusOK, res)
}

// RescoreHandler re-runs scoring for a submission that ended up
// scoring_failed.
func (h *handler) RescoreHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.authorize(r)
	if err != nil {
		writeAccessDenied(w)
		return
	}

	id := chi.URLParam(r, "id")

	existing, err := h.interviews.GetInterview(r.Context(), &pb.GetInterviewReq{Id: id})
	if err != nil || existing.Submission.OrganizationId != user.OrganizationId {
		json.WriteError(w, http.StatusNotFound, fmt.Errorf("interview not found"))
		return
	}

	res, err := h.interviews.ScoreSubmission(r.Context(), &pb.ScoreSubmissionReq{SubmissionId: id})
	if err != nil {
		h.log.Error("rescore failed", "submission_id", id, "error", err)
		json.WriteError(w, http.StatusBadGateway, fmt.Errorf("scoring failed"))
		return
	}

	json.WriteProtoJSON(w, http.StatusOK, res)
}
