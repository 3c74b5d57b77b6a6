package mock

import (
	"context"

	"github.com/pagecap/menumap"
)

var _ menumap.Checker = (*Checker)(nil)

// Checker is a mock implementation of menumap.Checker.
type Checker struct {
	CheckFn func(ctx context.Context, url string) (bool, error)
}

func (c *Checker) Check(ctx context.Context, url string) (bool, error) {
	return c.CheckFn(ctx, url)
}
