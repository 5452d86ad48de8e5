package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"nearme/internal/model"
	"nearme/internal/utils"
)

// IntentExtractor turns free-text queries into structured search intent
// using a language-model provider.
type IntentExtractor struct {
	aiClient *OpenAIClient
}

// NewIntentExtractor creates a new intent extractor.
func NewIntentExtractor(aiClient *OpenAIClient) *IntentExtractor {
	return &IntentExtractor{
		aiClient: aiClient,
	}
}

// Extract derives a SearchIntent from the query and optional vibe.
//
// Quota exhaustion on the provider is returned as an error wrapping
// ErrQuotaExhausted and must be surfaced to the user. Any other provider
// failure degrades to a keyword fallback built from the raw query, and
// unparseable model output yields an empty intent.
func (e *IntentExtractor) Extract(ctx context.Context, query, vibe string) (model.SearchIntent, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.SearchIntent{}, nil
	}

	if e.aiClient == nil || !e.aiClient.IsEnabled() {
		log.Warn().Msg("OpenAI is not enabled, using keyword fallback. Set OPENAI_API_KEY to enable AI search.")
		return fallbackIntent(query), nil
	}

	resp, err := e.aiClient.ChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: "You are a search intent analyzer. Return only valid JSON matching the requested format."},
			{Role: "user", Content: buildIntentPrompt(query, vibe)},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		if errors.Is(err, ErrQuotaExhausted) {
			return model.SearchIntent{}, err
		}
		log.Warn().Err(err).Str("query", query).Msg("AI intent extraction failed, using keyword fallback")
		return fallbackIntent(query), nil
	}

	if len(resp.Choices) == 0 {
		log.Warn().Str("query", query).Msg("Empty AI response, using keyword fallback")
		return fallbackIntent(query), nil
	}

	// Unparseable output is treated as an empty object, not a failure.
	var intent model.SearchIntent
	content := resp.Choices[0].Message.Content
	if err := utils.ParseModelJSON(content, &intent); err != nil {
		log.Warn().Str("content", content).Msg("Failed to parse AI intent response")
		return model.SearchIntent{}, nil
	}

	return intent, nil
}

// buildIntentPrompt embeds the query and the desired vibe into the
// instruction sent to the language model.
func buildIntentPrompt(query, vibe string) string {
	var sb strings.Builder
	sb.WriteString(`You are a local search assistant for India. Analyze this search query and return a JSON object with:
- "placeType": the type of place they're looking for (restaurant, cafe, gym, spa, etc.)
- "keywords": relevant search keywords
- "category": category name
`)
	if vibe != "" {
		fmt.Fprintf(&sb, "- The user wants a %q vibe/atmosphere\n", vibe)
	}
	fmt.Fprintf(&sb, "\nQuery: %q\n\nReturn ONLY valid JSON, no other text.", query)
	return sb.String()
}

// fallbackIntent builds the degraded-mode intent from the raw query.
func fallbackIntent(query string) model.SearchIntent {
	placeType := ""
	if fields := strings.Fields(query); len(fields) > 0 {
		placeType = fields[0]
	}
	return model.SearchIntent{
		PlaceType: placeType,
		Keywords:  query,
		Category:  "Place",
	}
}
