package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	config "github.com/apriori/backend/config/web"
)

const defaultBaseURL = "https://api.elevenlabs.io/v1"

// Client talks to the ElevenLabs Conversational AI API. It is used to place
// outbound exit-interview calls; the transcript later arrives on the webhook
// gateway.
type Client struct {
	apiKey     string
	agentID    string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

type OutboundCallRequest struct {
	AgentID             string            `json:"agent_id"`
	CustomerPhoneNumber string            `json:"customer_phone_number"`
	DynamicVariables    map[string]string `json:"dynamic_variables,omitempty"`
}

type OutboundCallResponse struct {
	ConversationID string `json:"conversation_id"`
	CallSid        string `json:"callSid"`
	Success        bool   `json:"success"`
	Message        string `json:"message"`
}

func New(cfg *config.ElevenLabsConfig, log *slog.Logger) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		agentID:    cfg.AgentID,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// OutboundCall places a call to the given phone number using the configured
// agent. Employee details are passed through as dynamic variables so the
// agent can personalize the conversation.
func (c *Client) OutboundCall(ctx context.Context, phoneNumber string, variables map[string]string) (*OutboundCallResponse, error) {
	payload, err := json.Marshal(OutboundCallRequest{
		AgentID:             c.agentID,
		CustomerPhoneNumber: phoneNumber,
		DynamicVariables:    variables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal call request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/convai/phone/outbound-calls", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build call request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to place outbound call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("outbound call rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return nil, fmt.Errorf("outbound call failed with status %d", resp.StatusCode)
	}

	var result OutboundCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode call response: %w", err)
	}

	c.log.Info("outbound call placed", slog.String("conversation_id", result.ConversationID))

	return &result, nil
}
