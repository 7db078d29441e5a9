// Package gemini implements a minimal client for the Google Gemini
// generateContent REST endpoint. One synchronous attempt per call, no
// retries, no backoff; failures surface immediately to the caller.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrEmptyResponse indicates a successful upstream response that contained
// no extractable candidate text.
var ErrEmptyResponse = errors.New("gemini returned no usable text")

// UpstreamError indicates a non-success status from the generation endpoint.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

// NewClient creates a new Client for the given endpoint URL and API key.
func NewClient(url, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{},
		url:        url,
		apiKey:     apiKey,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// Generate builds a prompt-engineering instruction around the idea and
// category, submits it, and returns the first candidate's text trimmed of
// surrounding whitespace.
func (c *Client) Generate(ctx context.Context, idea, category string) (string, error) {
	instruction := fmt.Sprintf(
		"You are an expert prompt engineer. Create a detailed, well-structured AI prompt "+
			"for the category %q based on this idea: %s\n\n"+
			"Return only the prompt text, with no preamble or explanation.",
		category, idea,
	)

	return c.generate(ctx, instruction)
}

// Ping sends a fixed probe request to verify upstream connectivity.
func (c *Client) Ping(ctx context.Context) (string, error) {
	return c.generate(ctx, "Reply with a single short sentence confirming you are reachable.")
}

func (c *Client) generate(ctx context.Context, instruction string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: instruction}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 1024,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", err
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(genResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
