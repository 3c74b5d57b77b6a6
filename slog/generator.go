package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagecap/menumap"
)

// Ensure LoggingGenerator implements menumap.Generator.
var _ menumap.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with operation logging. Prompt
// and response bodies are logged as sizes only.
type LoggingGenerator struct {
	next   menumap.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next menumap.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt, system string) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"prompt_bytes", len(prompt),
			"response_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt, system)
}
