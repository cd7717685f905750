package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// minGeminiSummary is the shortest LLM response accepted as a summary.
const minGeminiSummary = 50

var (
	ErrNotConfigured       = errors.New("gemini API not configured")
	ErrInsufficientContent = errors.New("gemini API returned insufficient content")
)

const geminiPrompt = `Please provide a comprehensive summary of the following blog post titled "%s":

%s

Requirements:
- Create a summary between 200-400 words
- Focus on the main points, key insights, and important takeaways
- Maintain the original tone and style where appropriate
- Structure the summary with clear, coherent paragraphs
- Include specific details and examples when relevant
- Make it engaging and informative for readers

Summary:`

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini summarizes text with a Gemini model.
type Gemini struct {
	models contentGenerator
	model  string
}

// NewGemini creates a Gemini generator for the given API key. An empty
// model uses DefaultGeminiModel.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return newGemini(client.Models, model), nil
}

func newGemini(models contentGenerator, model string) *Gemini {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{models: models, model: model}
}

// Generate asks the model for a summary of content.
func (g *Gemini) Generate(ctx context.Context, content, title string) (string, error) {
	prompt := fmt.Sprintf(geminiPrompt, title, content)

	result, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				b.WriteString(part.Text)
			}
		}
	}

	text := strings.TrimSpace(b.String())
	if len(text) < minGeminiSummary {
		return "", ErrInsufficientContent
	}

	return text, nil
}
