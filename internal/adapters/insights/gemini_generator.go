// Package insights implements the AI text-generation capability using the
// Gemini REST API.
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	portsinsights "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/insights"
)

const (
	defaultModel    = "gemini-2.5-flash"
	generateURLTmpl = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
)

// GeminiGenerator calls the Gemini generateContent endpoint.
type GeminiGenerator struct {
	apiKey string
	model  string
	client *http.Client
}

// NewGeminiGenerator creates a generator using the given API key.
func NewGeminiGenerator(apiKey string) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey: apiKey,
		model:  defaultModel,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

var _ portsinsights.TextGenerator = (*GeminiGenerator)(nil)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends the prompt and returns the first candidate's text.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode generate request: %w", err)
	}

	url := fmt.Sprintf(generateURLTmpl, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generate response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate request failed: status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse generate response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generate response contained no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
