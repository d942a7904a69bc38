package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ParseTravelIntent analyzes user input to extract a train-search intent.
func (p *GeminiProvider) ParseTravelIntent(ctx context.Context, userMessage string, currentContext map[string]string) (*IntentResult, error) {
	systemPrompt := buildSystemPrompt(currentContext)

	fullPrompt := fmt.Sprintf("%s\n\nUser Message: %s", systemPrompt, userMessage)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Strip potential markdown fencing even though JSON mode is requested.
	cleanJSON := cleanJSONString(responseText.String())

	var result IntentResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &result, nil
}

// buildSystemPrompt constructs the instructions for the AI.
func buildSystemPrompt(ctxMap map[string]string) string {
	currentTime := ctxMap["current_time"]
	knownStations := ctxMap["known_stations"]

	if currentTime == "" {
		currentTime = "UNKNOWN_TIME"
	}
	if knownStations == "" {
		knownStations = "NONE"
	}

	return fmt.Sprintf(`Role: You are the booking desk assistant for a national rail ticket portal.
Context:
- Current System Time: %s
- Known Stations: %s

Respond ONLY with a JSON object matching this schema:
{"intent": "search"|"chat", "origin": string|null, "destination": string|null,
 "earliest_departure": RFC3339 string|null, "railcard": "none"|"over60s"|"family",
 "ticket_type": "one_way"|"return", "reply": string}

RULES:
1. Set "intent": "search" only when a destination is clear and it matches one of
   the Known Stations. Otherwise set "intent": "chat" and ask for what is missing.
2. "From X" phrases fill "origin"; "to X" phrases fill "destination". Never
   overwrite a previously stated destination with an origin.
3. Resolve relative times ("tomorrow morning", "after six") against the Current
   System Time and emit RFC3339 in "earliest_departure". Morning means 06:00,
   afternoon 12:00, evening 18:00.
4. Mentions of a senior or 60+ railcard set "railcard": "over60s"; a family
   card sets "family"; otherwise "none".
5. "Round trip" or "return" sets "ticket_type": "return"; default "one_way".
6. "reply" is one or two short sentences, polite, no markdown.`,
		currentTime, knownStations)
}

// cleanJSONString removes markdown code fences around a JSON payload.
func cleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
