package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	jsonutil "github.com/apriori/backend/pkg/json"
	"github.com/apriori/backend/pkg/signature"
	pb "github.com/apriori/backend/specs/proto/interview"
)

// SignatureHeader carries the HMAC signature of the raw body.
const SignatureHeader = "ElevenLabs-Signature"

const maxBodyBytes = 10 << 20

type (
	WebhookRequest struct {
		ConversationID  string `json:"conversation_id"`
		AgentID         string `json:"agent_id"`
		Transcript      string `json:"transcript"`
		EmployeeID      string `json:"employee_id"`
		PhoneNumber     string `json:"phone_number"`
		DurationSeconds int    `json:"duration_seconds"`
		AudioURL        string `json:"audio_url"`
		OrganizationID  string `json:"organization_id"`
	}

	WebhookResponse struct {
		AckID  string `json:"ack_id"`
		Status string `json:"status"`
	}
)

var (
	errMalformedBody   = errors.New("malformed request body")
	errMissingFields   = errors.New("conversation_id and transcript are required")
	errIngestionFailed = errors.New("failed to process webhook")
)

// Webhook handles one post-call transcription delivery. The signature covers
// the raw body, so it is read and verified before any JSON decoding.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.log.Warn("failed to read webhook body", "error", err)
		jsonutil.WriteError(w, http.StatusBadRequest, errMalformedBody)
		return
	}

	if err := h.checkSignature(r.Header.Get(SignatureHeader), body); err != nil {
		h.log.Warn("webhook signature rejected", "error", err, "remote_addr", r.RemoteAddr)
		jsonutil.WriteError(w, http.StatusUnauthorized, err)
		return
	}

	var req WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.Warn("malformed webhook payload", "error", err)
		jsonutil.WriteError(w, http.StatusBadRequest, errMalformedBody)
		return
	}

	if req.ConversationID == "" || req.Transcript == "" {
		h.log.Warn("webhook payload missing required fields",
			"conversation_id", req.ConversationID,
			"transcript_present", req.Transcript != "")
		jsonutil.WriteError(w, http.StatusUnprocessableEntity, errMissingFields)
		return
	}

	employeeID := req.EmployeeID
	if employeeID == "" {
		employeeID = req.PhoneNumber
	}

	organizationID := req.OrganizationID
	if organizationID == "" {
		organizationID = h.cfg.DefaultOrganization
	}

	resp, err := h.interviews.IngestSubmission(r.Context(), &pb.IngestSubmissionReq{
		ConversationId:  req.ConversationID,
		AgentId:         req.AgentID,
		Transcript:      req.Transcript,
		EmployeeId:      employeeID,
		DurationSeconds: int32(req.DurationSeconds),
		AudioUrl:        req.AudioURL,
		OrganizationId:  organizationID,
	})
	if err != nil {
		h.log.Error("failed to ingest webhook submission",
			"conversation_id", req.ConversationID,
			"error", err)
		jsonutil.WriteError(w, http.StatusInternalServerError, errIngestionFailed)
		return
	}

	h.log.Info("webhook acked",
		"ack_id", resp.AckId,
		"conversation_id", req.ConversationID)

	jsonutil.WriteJSON(w, http.StatusOK, WebhookResponse{
		AckID:  resp.AckId,
		Status: resp.Status,
	})
}

// checkSignature enforces the signature policy. With verification optional an
// unsigned delivery is accepted, but a signature that is present and wrong is
// still rejected.
func (h *Handler) checkSignature(header string, body []byte) error {
	if h.verifier == nil {
		if h.cfg.RequireSignature {
			return signature.ErrMissingSignature
		}
		return nil
	}

	if header == "" && !h.cfg.RequireSignature {
		return nil
	}

	return h.verifier.Verify(header, body)
}
