package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// ParseTravelIntent analyzes the user's natural language request and
	// extracts a structured train-search intent. contextMap carries dynamic
	// information like "current_time" and "known_stations".
	ParseTravelIntent(ctx context.Context, userMessage string, currentContext map[string]string) (*IntentResult, error)
}
