// Package enrich provides the optional AI-backed transaction classifier.
// It is a best-effort collaborator: every error path here results in the
// deterministic fallback being used upstream, never a failed upload.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/axento/books/internal/ingest"
)

// DefaultModel is the Gemini model used for classification.
const DefaultModel = "gemini-2.0-flash"

const prompt = `You are a bookkeeping assistant. Classify this bank transaction.

Date: %s
Description: %s
Amount: %.2f (positive is money in, negative is money out)

Return STRICT JSON only, no markdown, no code fences, exactly this shape:
{"type": "income" | "expense", "category": "short category name", "confidence": number between 0 and 1}`

// Client classifies rows via the Gemini API.
type Client struct {
	genai *genai.Client
	model string
}

// New creates a Gemini-backed enricher. The API key comes from the
// environment (GEMINI_API_KEY / GOOGLE_API_KEY), per the SDK defaults.
func New(ctx context.Context, model string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("enrich: create genai client: %w", err)
	}
	return &Client{genai: c, model: model}, nil
}

// Classify implements ingest.Enricher.
func (c *Client) Classify(ctx context.Context, row ingest.Row) (ingest.Classification, error) {
	text := fmt.Sprintf(prompt,
		row.Date.Format("2006-01-02"),
		row.Description,
		float64(row.AmountCents)/100,
	)
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: text}}},
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return ingest.Classification{}, fmt.Errorf("enrich: generate content: %w", err)
	}
	raw := resp.Text()
	if raw == "" {
		return ingest.Classification{}, fmt.Errorf("enrich: empty response from model")
	}
	return decodeClassification(raw)
}

// decodeClassification validates the model output strictly. Anything that
// is not the documented JSON shape is an error; loosely-typed model
// output never reaches the transaction model.
func decodeClassification(raw string) (ingest.Classification, error) {
	clean := cleanModelJSON(raw)

	var out struct {
		Type       string  `json:"type"`
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return ingest.Classification{}, fmt.Errorf("enrich: unmarshal response: %w", err)
	}
	if out.Type != ingest.TypeIncome && out.Type != ingest.TypeExpense {
		return ingest.Classification{}, fmt.Errorf("enrich: unknown type %q in response", out.Type)
	}
	return ingest.Classification{
		Type:       out.Type,
		Category:   strings.TrimSpace(out.Category),
		Confidence: out.Confidence,
	}, nil
}

// cleanModelJSON strips markdown fences and surrounding junk when the
// model ignores the formatting instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	// Keep only the outermost JSON object if junk remains around it.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
