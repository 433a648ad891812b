package handler

import (
	"fmt"
	"net/http"

	"github.com/apriori/backend/pkg/json"
)

type OutboundCallRequest struct {
	PhoneNumber  string `json:"phone_number"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
}

type OutboundCallResponse struct {
	ConversationID string `json:"conversation_id"`
	Status         string `json:"status"`
}

// OutboundCallHandler triggers an exit-interview call to an employee.
// Admin only.
func (h *handler) OutboundCallHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.authorize(r)
	if err != nil || user.Role != "admin" {
		writeAccessDenied(w)
		return
	}

	req := &OutboundCallRequest{}
	if err := json.ParseJSON(r, req); err != nil {
		json.WriteError(w, http.StatusBadRequest, err)
		return
	}
	if req.PhoneNumber == "" {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("phone_number is required"))
		return
	}

	result, err := h.eleven.OutboundCall(r.Context(), req.PhoneNumber, map[string]string{
		"employee_name":       req.EmployeeName,
		"employee_department": req.Department,
		"employee_position":   req.Position,
		"organization_id":     user.OrganizationId,
	})
	if err != nil {
		h.log.Error("failed to place outbound call", "error", err)
		json.WriteError(w, http.StatusBadGateway, fmt.Errorf("failed to place call"))
		return
	}

	json.WriteJSON(w, http.StatusOK, OutboundCallResponse{
		ConversationID: result.ConversationID,
		Status:         "scheduled",
	})
}
