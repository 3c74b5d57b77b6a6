package mock

import (
	"context"

	"github.com/pagecap/menumap"
)

var _ menumap.SitemapResolver = (*SitemapResolver)(nil)

// SitemapResolver is a mock implementation of menumap.SitemapResolver.
type SitemapResolver struct {
	ResolveFn func(ctx context.Context, baseURL string, limit int) (*menumap.PageCollection, error)
}

func (s *SitemapResolver) Resolve(ctx context.Context, baseURL string, limit int) (*menumap.PageCollection, error) {
	return s.ResolveFn(ctx, baseURL, limit)
}
