// Package gemini provides Gemini-backed implementations of
// windfind.Classifier and windfind.Extractor.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sailhq/windfind"
	"google.golang.org/genai"
)

// DefaultModel is the model used for classification and extraction.
const DefaultModel = "gemini-2.5-flash"

// Ensure Classifier implements windfind.Classifier at compile time.
var _ windfind.Classifier = (*Classifier)(nil)

// Classifier implements windfind.Classifier using Google Gemini.
type Classifier struct {
	client *genai.Client
	model  string
}

// NewClassifier creates a new Classifier.
func NewClassifier(client *genai.Client, model string) *Classifier {
	if model == "" {
		model = DefaultModel
	}
	return &Classifier{client: client, model: model}
}

// Classify returns a probability for each label.
func (c *Classifier) Classify(ctx context.Context, text string, labels []string) (map[string]float64, error) {
	if text == "" {
		return nil, windfind.Errorf(windfind.EINVALID, "classification text required")
	}
	if len(labels) == 0 {
		return nil, windfind.Errorf(windfind.EINVALID, "labels required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildClassifyPrompt(text, labels)}},
		}},
		buildConfig(),
	)
	if err != nil {
		return nil, windfind.Errorf(windfind.EUNAVAILABLE, "gemini classify: %s", err)
	}
	if result == nil {
		return nil, windfind.Errorf(windfind.EINTERNAL, "gemini returned nil result")
	}

	return ParseScores(result.Text(), labels)
}

// buildConfig returns the GenerateContentConfig shared by classification
// and extraction calls. JSON output is requested so responses parse
// without fence stripping.
func buildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      &temp,
	}
}

// BuildClassifyPrompt builds the categorization prompt.
func BuildClassifyPrompt(text string, labels []string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert in categorizing text.\n")
	fmt.Fprintf(&sb, "Given the input text, determine the probability of it belonging to each of the following categories: %s.\n", strings.Join(labels, ", "))
	sb.WriteString("Return a JSON object with the category names as keys and the probabilities as values.\n\n")
	fmt.Fprintf(&sb, "Input text: %s", text)
	return sb.String()
}

// ParseScores parses a provider response into a score map. Labels
// missing from the response default to probability 0; labels outside the
// requested set are dropped.
func ParseScores(raw string, labels []string) (map[string]float64, error) {
	var parsed map[string]float64
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, windfind.Errorf(windfind.EINVALID, "malformed score response: %s", err)
	}

	scores := make(map[string]float64, len(labels))
	for _, label := range labels {
		scores[label] = parsed[label]
	}
	return scores, nil
}
