package market

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"valuation_backend/platform/config"
	"valuation_backend/platform/logger"
)

const extractPrompt = `Extract the county and state from this address: %s
Return only county and state in JSON format like:
{"county": "Fulton", "state": "GA"}
Respond ONLY with JSON.`

// Extractor resolves the county/state of a free-text address with Gemini.
// Addresses rarely name their county, so a model lookup beats maintaining a
// zip-to-county table.
type Extractor struct {
	client *genai.Client
	model  string
	log    *logger.Logger
}

func NewExtractor(ctx context.Context, cfg config.AIConfig, log *logger.Logger) (*Extractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GetGeminiAPIKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Extractor{client: client, model: cfg.GetGeminiModel(), log: log}, nil
}

// CountyState asks the model for the county and state of an address.
func (e *Extractor) CountyState(ctx context.Context, address string) (string, string, error) {
	prompt := fmt.Sprintf(extractPrompt, address)

	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{Temperature: genai.Ptr(float32(0))},
	)
	if err != nil {
		return "", "", fmt.Errorf("gemini generate: %w", err)
	}

	var parsed struct {
		County string `json:"county"`
		State  string `json:"state"`
	}
	text := stripFences(resp.Text())
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return "", "", fmt.Errorf("parse county extraction %q: %w", text, err)
	}
	return parsed.County, parsed.State, nil
}

// stripFences removes a markdown code fence the model sometimes wraps
// around its JSON despite the prompt.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
