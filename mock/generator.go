package mock

import (
	"context"

	"github.com/pagecap/menumap"
)

var _ menumap.Generator = (*Generator)(nil)

// Generator is a mock implementation of menumap.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt, system string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt, system string) (string, error) {
	return g.GenerateFn(ctx, prompt, system)
}
