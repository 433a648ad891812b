package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/apriori/backend/config/webhook"
	"github.com/apriori/backend/pkg/signature"
	pb "github.com/apriori/backend/specs/proto/interview"
)

type fakeIngestor struct {
	calls []*pb.IngestSubmissionReq
	resp  *pb.IngestSubmissionResp
	err   error
}

func (f *fakeIngestor) IngestSubmission(ctx context.Context, req *pb.IngestSubmissionReq) (*pb.IngestSubmissionResp, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

const testSecret = "wsec_test"

func newHandler(ingestor *fakeIngestor, requireSignature bool) *Handler {
	cfg := &config.Config{
		RequireSignature:    requireSignature,
		DefaultOrganization: "default",
	}
	return New(cfg, signature.NewVerifier(testSecret), ingestor, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func signedRequest(t *testing.T, body []byte) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/webhook/elevenlabs", bytes.NewReader(body))
	r.Header.Set(SignatureHeader, signature.NewVerifier(testSecret).Sign(time.Now(), body))
	return r
}

func TestWebhookAcksValidDelivery(t *testing.T) {
	ingestor := &fakeIngestor{resp: &pb.IngestSubmissionResp{AckId: "ack-1", Status: "received"}}
	h := newHandler(ingestor, true)

	body, err := json.Marshal(WebhookRequest{
		ConversationID:  "conv-1",
		AgentID:         "agent-1",
		Transcript:      "Agent: Why are you leaving?\nEmployee: Better pay elsewhere.",
		PhoneNumber:     "+15550100",
		DurationSeconds: 312,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.Webhook(w, signedRequest(t, body))

	require.Equal(t, http.StatusOK, w.Code)

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ack-1", resp.AckID)

	require.Len(t, ingestor.calls, 1)
	call := ingestor.calls[0]
	assert.Equal(t, "conv-1", call.ConversationId)
	assert.Equal(t, "+15550100", call.EmployeeId)
	assert.Equal(t, "default", call.OrganizationId)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	ingestor := &fakeIngestor{resp: &pb.IngestSubmissionResp{AckId: "ack-1"}}
	h := newHandler(ingestor, true)

	body := []byte(`{"conversation_id":"conv-1","transcript":"hi"}`)

	for name, apply := range map[string]func(r *http.Request){
		"missing header": func(r *http.Request) {},
		"wrong secret": func(r *http.Request) {
			r.Header.Set(SignatureHeader, signature.NewVerifier("other").Sign(time.Now(), body))
		},
		"tampered body": func(r *http.Request) {
			r.Header.Set(SignatureHeader, signature.NewVerifier(testSecret).Sign(time.Now(), []byte("other body")))
		},
		"stale timestamp": func(r *http.Request) {
			r.Header.Set(SignatureHeader, signature.NewVerifier(testSecret).Sign(time.Now().Add(-time.Hour), body))
		},
	} {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/webhook/elevenlabs", bytes.NewReader(body))
			apply(r)

			w := httptest.NewRecorder()
			h.Webhook(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	assert.Empty(t, ingestor.calls, "rejected deliveries must not reach the interview service")
}

func TestWebhookOptionalSignature(t *testing.T) {
	ingestor := &fakeIngestor{resp: &pb.IngestSubmissionResp{AckId: "ack-1"}}
	h := newHandler(ingestor, false)

	body := []byte(`{"conversation_id":"conv-1","transcript":"hi"}`)

	r := httptest.NewRequest(http.MethodPost, "/webhook/elevenlabs", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.Webhook(w, r)
	assert.Equal(t, http.StatusOK, w.Code, "unsigned delivery accepted when optional")

	r = httptest.NewRequest(http.MethodPost, "/webhook/elevenlabs", bytes.NewReader(body))
	r.Header.Set(SignatureHeader, signature.NewVerifier("other").Sign(time.Now(), body))
	w = httptest.NewRecorder()
	h.Webhook(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong signature rejected even when optional")
}

func TestWebhookRejectsMalformedBody(t *testing.T) {
	ingestor := &fakeIngestor{}
	h := newHandler(ingestor, true)

	body := []byte(`{"conversation_id": "conv-1",`)

	w := httptest.NewRecorder()
	h.Webhook(w, signedRequest(t, body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, ingestor.calls)
}

func TestWebhookRejectsMissingFields(t *testing.T) {
	ingestor := &fakeIngestor{}
	h := newHandler(ingestor, true)

	for name, body := range map[string]string{
		"no conversation_id": `{"transcript":"hi"}`,
		"no transcript":      `{"conversation_id":"conv-1"}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Webhook(w, signedRequest(t, []byte(body)))

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}

	assert.Empty(t, ingestor.calls)
}

func TestWebhookIngestFailure(t *testing.T) {
	ingestor := &fakeIngestor{err: context.DeadlineExceeded}
	h := newHandler(ingestor, true)

	body := []byte(`{"conversation_id":"conv-1","transcript":"hi"}`)

	w := httptest.NewRecorder()
	h.Webhook(w, signedRequest(t, body))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
