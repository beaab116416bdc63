/*
Copyright © 2025 changheonshin
*/
package ai

import (
	"fmt"
	"strings"
)

const describePrompt = `Analyze this image and provide a short, descriptive filename (2-4 words) that captures the main subject or content.
Focus on the most prominent elements like objects, people, animals, scenes, or activities.
Respond with only the descriptive name, no additional text or explanation.
Examples: "red_sports_car", "golden_retriever_dog", "sunset_beach_scene", "birthday_cake_candles"`

const suggestCategoryPrompt = `Analyze this image and determine the most appropriate category folder name for organizing it.
Look at the main subject/content and suggest a simple, descriptive category name (1-2 words, lowercase, use underscore for spaces).
Examples of good category names: cats, dogs, people, food, nature, cars, buildings, art, technology, sports.
Respond with only the category name, no additional text or explanation.`

// buildClassifyPrompt creates a prompt asking the model to pick one of
// the given category names for the attached image.
func buildClassifyPrompt(categories []string) string {
	var b strings.Builder
	b.WriteString("Analyze this image and classify it into one of these categories based on the main subject:\n\n")
	b.WriteString("Categories:\n")
	for _, name := range categories {
		b.WriteString(fmt.Sprintf("- %s\n", name))
	}
	b.WriteString("\nRespond with only the category name (e.g., \"food\", \"people\", \"nature\"), no additional text.")
	return b.String()
}
