// Package narrative calls the optional external report-enhancement service.
// Callers must treat it as unreliable and keep a deterministic fallback.
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mindtest-app/mindtest/internal/services"
)

const defaultHTTPTimeout = 10 * time.Second

// maxResponseBytes caps how much of the service response is read.
const maxResponseBytes = 1 << 20

// Client posts the scored session to the narrative endpoint and expects
// {"success": true, "report": "..."} back.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: defaultHTTPTimeout},
	}
}

type generateResponse struct {
	Success bool   `json:"success"`
	Report  string `json:"report"`
	Error   string `json:"error,omitempty"`
}

// GenerateReport implements services.NarrativeClient.
func (c *Client) GenerateReport(ctx context.Context, req services.NarrativeRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode narrative request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build narrative request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call narrative service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read narrative response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("narrative service status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode narrative response: %w", err)
	}
	if !out.Success || strings.TrimSpace(out.Report) == "" {
		if out.Error != "" {
			return "", fmt.Errorf("narrative service error: %s", out.Error)
		}
		return "", fmt.Errorf("narrative service returned empty report")
	}
	return out.Report, nil
}
