package handler

import (
	"fmt"
	"net/http"

	"github.com/apriori/backend/pkg/json"
	pb "github.com/apriori/backend/specs/proto/interview"
)

func (h *handler) DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.authorize(r)
	if err != nil {
		writeAccessDenied(w)
		return
	}

	res, err := h.interviews.GetDashboardStats(r.Context(), &pb.GetDashboardStatsReq{
		OrganizationId: user.OrganizationId,
	})
	if err != nil {
		h.log.Error("failed to load dashboard stats", "error", err)
		json.WriteError(w, http.StatusInternalServerError, fmt.Errorf("failed to load dashboard"))
		return
	}

	json.WriteProtoJSON(w, http.StatusOK, res)
}
