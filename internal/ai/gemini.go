/*
Copyright © 2025 changheonshin
*/
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/devlikebear/picsort/internal/imaging"
	"github.com/google/generative-ai-go/genai"
	"github.com/spf13/viper"
	"google.golang.org/api/option"
)

// GeminiProvider implements the Provider interface for Gemini.
type GeminiProvider struct {
	generativeModel GenerativeModelInterface
}

// NewGeminiProvider creates a new GeminiProvider.
func NewGeminiProvider() Provider {
	return &GeminiProvider{}
}

// SetGenerativeModel injects a model implementation, used by tests to
// avoid creating a real client.
func (p *GeminiProvider) SetGenerativeModel(model GenerativeModelInterface) {
	p.generativeModel = model
}

func (p *GeminiProvider) String() string {
	return "gemini"
}

// DescribeImage asks Gemini for a short descriptive name for the image.
func (p *GeminiProvider) DescribeImage(ctx context.Context, img imaging.Image) (string, error) {
	return p.generate(ctx, describePrompt, img)
}

// ClassifyImage asks Gemini to pick one of the given categories.
func (p *GeminiProvider) ClassifyImage(ctx context.Context, img imaging.Image, categories []string) (string, error) {
	return p.generate(ctx, buildClassifyPrompt(categories), img)
}

// SuggestCategory asks Gemini for a free-form category folder name.
func (p *GeminiProvider) SuggestCategory(ctx context.Context, img imaging.Image) (string, error) {
	return p.generate(ctx, suggestCategoryPrompt, img)
}

func (p *GeminiProvider) generate(ctx context.Context, prompt string, img imaging.Image) (string, error) {
	apiKey := viper.GetString("gemini.api_key")
	if apiKey == "" {
		return "", fmt.Errorf("gemini api_key is not set in the configuration")
	}
	modelName := viper.GetString("gemini.model")
	if modelName == "" {
		return "", fmt.Errorf("gemini model is not set in the configuration")
	}

	model := p.generativeModel
	if model == nil {
		client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			return "", fmt.Errorf("failed to create gemini client: %w", err)
		}
		defer client.Close()
		model = client.GenerativeModel(modelName)
	}

	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData(img.MIMEType, img.Data),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("received an empty response from Gemini")
	}

	// Assuming the first part of the first candidate is the text we want.
	part := resp.Candidates[0].Content.Parts[0]
	if txt, ok := part.(genai.Text); ok {
		return strings.TrimSpace(string(txt)), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}
