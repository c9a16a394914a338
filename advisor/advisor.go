package advisor

import (
	"context"
	"fmt"
	"log"

	"finsight"

	"google.golang.org/genai"
)

// maxAttempts bounds the number of model calls made for a single
// analysis before settling for an empty result.
const maxAttempts = 3

// Advisor holds a Gemini client and the model it asks.
type Advisor struct {
	model  string
	client *genai.Client

	// generate performs one model call, swappable in tests.
	generate func(ctx context.Context, config *genai.GenerateContentConfig, prompt string) (string, error)
}

// New creates an Advisor asking the given model. With an empty apiKey
// the client resolves the key from the GEMINI_API_KEY environment
// variable on its own.
func New(ctx context.Context, model, apiKey string) (*Advisor, error) {
	var cc *genai.ClientConfig
	if apiKey != "" {
		cc = &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini's client: %w", err)
	}
	a := &Advisor{model: model, client: client}
	a.generate = a.generateContent
	return a, nil
}

// generateContent performs one model call and returns the reply text.
func (a *Advisor) generateContent(ctx context.Context, config *genai.GenerateContentConfig, prompt string) (string, error) {
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", a.model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// recordsConfig grounds analysis requests with search results.
func recordsConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: analysisInstruction}}},
	}
}

// Analyze asks the model to analyze every given symbol.
//
// Transport and service failures are returned. A reachable model that
// keeps answering off-format is not an error: after a few attempts
// Analyze settles for an empty list and the caller renders nothing.
func (a *Advisor) Analyze(ctx context.Context, symbols []string) ([]StockAnalysis, error) {
	if len(symbols) == 0 {
		return nil, nil
	}
	return a.records(ctx, analyzePrompt(symbols))
}

// Discover asks the model for n promising symbols beyond the watched ones.
func (a *Advisor) Discover(ctx context.Context, n int, watched []string) ([]StockAnalysis, error) {
	if n <= 0 {
		return nil, nil
	}
	return a.records(ctx, discoverPrompt(n, watched))
}

// records sends the prompt and decodes the reply, asking again a few
// times when the reply decodes to nothing.
func (a *Advisor) records(ctx context.Context, prompt string) ([]StockAnalysis, error) {
	config := recordsConfig()
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		reply, err := a.generate(ctx, config, prompt)
		if err != nil {
			return nil, err
		}
		if records := Decode(reply); len(records) > 0 {
			return records, nil
		}
		log.Printf("no analysis records in the reply (attempt %d/%d)", attempt, maxAttempts)
	}
	return nil, nil
}

// RetirementAdvice asks the model to comment on a retirement
// projection. The reply is plain markdown, returned as-is.
func (a *Advisor) RetirementAdvice(ctx context.Context, plan finsight.RetirementPlan, result *finsight.RetirementResult) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: adviceInstruction}}},
	}
	return a.generate(ctx, config, retirementPrompt(plan, result))
}
