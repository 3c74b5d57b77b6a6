// Package gemini provides a menumap.Generator backed by Google Gemini.
package gemini

import (
	"context"

	"github.com/pagecap/menumap"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature keeps menu extraction output stable across calls.
const DefaultTemperature = float32(0.2)

// Ensure Generator implements menumap.Generator at compile time.
var _ menumap.Generator = (*Generator)(nil)

// Generator implements menumap.Generator using Google Gemini.
type Generator struct {
	client      *genai.Client
	model       string
	temperature float32
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel overrides the model name. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float32) Option {
	return func(g *Generator) {
		g.temperature = t
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
	g := &Generator{
		client:      client,
		model:       DefaultModel,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the model's text response for a single-turn prompt.
func (g *Generator) Generate(ctx context.Context, prompt, system string) (string, error) {
	if prompt == "" {
		return "", menumap.Errorf(menumap.EINVALID, "prompt required")
	}

	config := BuildConfig(g.temperature, system)

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", menumap.Errorf(menumap.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// An empty system message leaves the system instruction unset.
func BuildConfig(temperature float32, system string) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}
