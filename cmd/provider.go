/*
Copyright © 2025 changheonshin
*/
package cmd

import (
	"fmt"

	"github.com/devlikebear/picsort/internal/ai"
	"github.com/devlikebear/picsort/internal/category"
	"github.com/spf13/viper"
)

// Provider constructors as package vars so tests can substitute mocks.
var (
	NewGeminiProvider = ai.NewGeminiProvider
	NewOllamaProvider = ai.NewOllamaProvider
	NewOpenAIProvider = ai.NewOpenAIProvider
)

// buildProvider creates the AI provider selected in the configuration.
func buildProvider() (ai.Provider, error) {
	providerName := viper.GetString("ai_provider")
	switch providerName {
	case "gemini":
		return NewGeminiProvider(), nil
	case "ollama":
		return NewOllamaProvider(), nil
	case "openai":
		return NewOpenAIProvider(), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %s. Please check your config file", providerName)
	}
}

// buildMatcher creates the category matcher, honoring a `categories`
// override from the configuration when present. The config keeps the
// categories as an ordered list, so matching stays deterministic.
func buildMatcher() (*category.Matcher, error) {
	var categories []category.Category
	if viper.IsSet("categories") {
		if err := viper.UnmarshalKey("categories", &categories); err != nil {
			return nil, fmt.Errorf("failed to parse categories from config: %w", err)
		}
	}
	return category.NewMatcher(categories), nil
}
