/*
Copyright © 2025 changheonshin
*/
package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/devlikebear/picsort/internal/imaging"
	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/viper"
)

// OpenAIProvider implements the Provider interface for OpenAI-compatible
// endpoints (OpenAI itself, or any server speaking its chat API).
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAIProvider.
func NewOpenAIProvider() Provider {
	return &OpenAIProvider{}
}

// SetClient injects a preconfigured client, used by tests.
func (p *OpenAIProvider) SetClient(client *openai.Client) {
	p.client = client
}

func (p *OpenAIProvider) String() string {
	return "openai"
}

// DescribeImage asks the model for a short descriptive name for the image.
func (p *OpenAIProvider) DescribeImage(ctx context.Context, img imaging.Image) (string, error) {
	return p.generate(ctx, describePrompt, img)
}

// ClassifyImage asks the model to pick one of the given categories.
func (p *OpenAIProvider) ClassifyImage(ctx context.Context, img imaging.Image, categories []string) (string, error) {
	return p.generate(ctx, buildClassifyPrompt(categories), img)
}

// SuggestCategory asks the model for a free-form category folder name.
func (p *OpenAIProvider) SuggestCategory(ctx context.Context, img imaging.Image) (string, error) {
	return p.generate(ctx, suggestCategoryPrompt, img)
}

func (p *OpenAIProvider) generate(ctx context.Context, prompt string, img imaging.Image) (string, error) {
	model := viper.GetString("openai.model")
	if model == "" {
		return "", fmt.Errorf("openai model is not set in the configuration")
	}

	client := p.client
	if client == nil {
		apiKey := viper.GetString("openai.api_key")
		if apiKey == "" {
			return "", fmt.Errorf("openai api_key is not set in the configuration")
		}
		config := openai.DefaultConfig(apiKey)
		if baseURL := viper.GetString("openai.base_url"); baseURL != "" {
			config.BaseURL = baseURL
		}
		client = openai.NewClientWithConfig(config)
	}

	base64Image := base64.StdEncoding.EncodeToString(img.Data)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: fmt.Sprintf("data:image/%s;base64,%s", img.MIMEType, base64Image),
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("received an empty response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
