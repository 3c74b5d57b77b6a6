package menumap

import "context"

// Generator provides single-turn text generation. There is no implicit
// memory across calls; callers supply all context in the prompt.
type Generator interface {
	// Generate returns the model's free-form text response for the
	// prompt. The system message may be empty.
	Generate(ctx context.Context, prompt, system string) (string, error)
}
