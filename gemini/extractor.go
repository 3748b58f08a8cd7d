package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sailhq/windfind"
	"google.golang.org/genai"
)

// maxExtractionInput caps the page text sent with one extraction call.
const maxExtractionInput = 24000

// Ensure Extractor implements windfind.Extractor at compile time.
var _ windfind.Extractor = (*Extractor)(nil)

// Extractor implements windfind.Extractor using Google Gemini.
type Extractor struct {
	client *genai.Client
	model  string
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *genai.Client, model string) *Extractor {
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{client: client, model: model}
}

// Extract fills a copy of the template with facts found in text.
func (e *Extractor) Extract(ctx context.Context, text string, template *windfind.Node) (*windfind.Node, error) {
	if text == "" {
		return nil, windfind.Errorf(windfind.EINVALID, "extraction text required")
	}
	if template == nil {
		return nil, windfind.Errorf(windfind.EINVALID, "extraction template required")
	}

	prompt, err := BuildExtractPrompt(text, template)
	if err != nil {
		return nil, err
	}

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		buildConfig(),
	)
	if err != nil {
		return nil, windfind.Errorf(windfind.EUNAVAILABLE, "gemini extract: %s", err)
	}
	if result == nil {
		return nil, windfind.Errorf(windfind.EINTERNAL, "gemini returned nil result")
	}

	return ParseRecord(result.Text())
}

// BuildExtractPrompt builds the extraction prompt with the template's
// JSON rendering as the formatting guide.
func BuildExtractPrompt(text string, template *windfind.Node) (string, error) {
	shape, err := json.Marshal(template)
	if err != nil {
		return "", err
	}
	if len(text) > maxExtractionInput {
		text = text[:maxExtractionInput]
	}

	var sb strings.Builder
	sb.WriteString("You are an expert in extracting information from text.\n")
	sb.WriteString("Given the input text, extract the information and return a JSON object using the following format. Leave fields the text does not resolve as null.\n")
	fmt.Fprintf(&sb, "Format: %s\n\n", shape)
	fmt.Fprintf(&sb, "Text: %s", text)
	return sb.String(), nil
}

// ParseRecord parses a provider response into a record tree.
func ParseRecord(raw string) (*windfind.Node, error) {
	var node windfind.Node
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		return nil, windfind.Errorf(windfind.EINVALID, "malformed extraction response: %s", err)
	}
	if node.Kind != windfind.KindObject {
		return nil, windfind.Errorf(windfind.EINVALID, "extraction response is not a JSON object")
	}
	return &node, nil
}
