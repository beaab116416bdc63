/*
Copyright © 2025 changheonshin
*/
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/devlikebear/picsort/internal/imaging"
	"github.com/spf13/viper"
)

// OllamaProvider implements the Provider interface for Ollama.
// The configured model has to be a multimodal one (llava, llama3.2-vision, ...).
type OllamaProvider struct{}

// NewOllamaProvider creates a new OllamaProvider.
func NewOllamaProvider() Provider {
	return &OllamaProvider{}
}

type ollamaRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Stream bool     `json:"stream"`
	Images []string `json:"images,omitempty"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (p *OllamaProvider) String() string {
	return "ollama"
}

// DescribeImage asks Ollama for a short descriptive name for the image.
func (p *OllamaProvider) DescribeImage(ctx context.Context, img imaging.Image) (string, error) {
	return p.generate(ctx, describePrompt, img)
}

// ClassifyImage asks Ollama to pick one of the given categories.
func (p *OllamaProvider) ClassifyImage(ctx context.Context, img imaging.Image, categories []string) (string, error) {
	return p.generate(ctx, buildClassifyPrompt(categories), img)
}

// SuggestCategory asks Ollama for a free-form category folder name.
func (p *OllamaProvider) SuggestCategory(ctx context.Context, img imaging.Image) (string, error) {
	return p.generate(ctx, suggestCategoryPrompt, img)
}

func (p *OllamaProvider) generate(ctx context.Context, prompt string, img imaging.Image) (string, error) {
	baseURL := viper.GetString("ollama.base_url")
	if baseURL == "" {
		return "", fmt.Errorf("ollama base_url is not set in the configuration")
	}
	model := viper.GetString("ollama.model")
	if model == "" {
		return "", fmt.Errorf("ollama model is not set in the configuration")
	}

	apiURL := fmt.Sprintf("%s/api/generate", baseURL)

	reqBody := ollamaRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		Images: []string{base64.StdEncoding.EncodeToString(img.Data)},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-OK response from ollama: %s", resp.Status)
	}

	var ollamaResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return "", fmt.Errorf("failed to decode ollama response: %w", err)
	}

	return strings.TrimSpace(ollamaResp.Response), nil
}
