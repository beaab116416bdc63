/*
Copyright © 2025 changheonshin
*/
package cmd

import (
	"testing"

	"github.com/devlikebear/picsort/internal/ai"
	"github.com/devlikebear/picsort/internal/category"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestBuildProvider(t *testing.T) {
	tests := []struct {
		name         string
		providerName string
		expectedType interface{}
	}{
		{name: "gemini", providerName: "gemini", expectedType: &ai.GeminiProvider{}},
		{name: "ollama", providerName: "ollama", expectedType: &ai.OllamaProvider{}},
		{name: "openai", providerName: "openai", expectedType: &ai.OpenAIProvider{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			viper.Set("ai_provider", tt.providerName)

			provider, err := buildProvider()
			assert.NoError(t, err)
			assert.IsType(t, tt.expectedType, provider)
		})
	}
}

func TestBuildProvider_Unknown(t *testing.T) {
	viper.Reset()
	viper.Set("ai_provider", "skynet")

	provider, err := buildProvider()
	assert.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "unknown AI provider: skynet")
}

func TestBuildMatcher_Default(t *testing.T) {
	viper.Reset()

	matcher, err := buildMatcher()
	assert.NoError(t, err)
	assert.Equal(t, "animals", matcher.Match("a cute dog"))
}

func TestBuildMatcher_FromConfig(t *testing.T) {
	viper.Reset()
	viper.Set("categories", []map[string]interface{}{
		{"name": "screenshots", "keywords": []string{"screenshot", "screen"}},
		{"name": "memes", "keywords": []string{"meme", "funny"}},
	})
	defer viper.Reset()

	matcher, err := buildMatcher()
	assert.NoError(t, err)
	assert.Equal(t, []string{"screenshots", "memes"}, matcher.Names())
	assert.Equal(t, "memes", matcher.Match("a funny cat picture"))
	assert.Equal(t, category.DefaultBucket, matcher.Match("a cute dog"))
}
