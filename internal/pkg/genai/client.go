package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
)

// Client generates text from a prompt using an external generative model.
// It is injected into the report service so report composition can be tested
// without a live network dependency.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// defaultBaseURL is the Google Generative Language API endpoint.
const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent REST API.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// GeminiConfig holds the settings for the Gemini client.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string
}

// NewGeminiClient creates a Gemini-backed Client.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// generateRequest is the generateContent request payload.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the subset of the generateContent response we consume.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends the prompt to the model and returns the generated text
// verbatim. Non-2xx responses and responses missing the expected text field
// surface as upstream failures; no retries are attempted.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrUpstreamFailure, "generation service unreachable: "+err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrUpstreamFailure, "failed to read generation response: "+err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperrors.NewCustomError(apperrors.ErrUpstreamFailure,
			fmt.Sprintf("generation service returned status %d", resp.StatusCode))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrUpstreamFailure, "malformed generation response: "+err.Error())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewCustomError(apperrors.ErrUpstreamFailure, "generation response missing text")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
