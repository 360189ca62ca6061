package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiProvider calls the Gemini API with a JSON response schema.
type geminiProvider struct {
	models *genai.Models
	model  string
}

func newGeminiProvider(ctx context.Context, apiKey, model string) (*geminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &geminiProvider{
		models: client.Models,
		model:  model,
	}, nil
}

func (p *geminiProvider) Model() string {
	return p.model
}

func (p *geminiProvider) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
