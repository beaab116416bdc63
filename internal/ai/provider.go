/*
Copyright © 2025 changheonshin
*/
package ai

import (
	"context"

	"github.com/devlikebear/picsort/internal/imaging"
	"github.com/google/generative-ai-go/genai"
)

// Provider defines the interface for AI-powered image understanding.
// Implementations send the image to an external model and return its
// free-text answer; callers sanitize and match the text themselves.
type Provider interface {
	// DescribeImage returns a short descriptive name (2-4 words) for
	// the image, suitable as a filename after sanitization.
	DescribeImage(ctx context.Context, img imaging.Image) (string, error)

	// ClassifyImage asks the model to pick one of the given category
	// names for the image. The response is free text; callers run it
	// through the keyword matcher.
	ClassifyImage(ctx context.Context, img imaging.Image, categories []string) (string, error)

	// SuggestCategory asks the model for a free-form folder name
	// (1-2 words) for the image, without a fixed category table.
	SuggestCategory(ctx context.Context, img imaging.Image) (string, error)

	// String returns the provider name for display.
	String() string
}

// GenerativeModelInterface defines the interface for genai.GenerativeModel's
// methods used by GeminiProvider.
type GenerativeModelInterface interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}
