package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagecap/menumap"
)

// Ensure LoggingSitemapResolver implements menumap.SitemapResolver.
var _ menumap.SitemapResolver = (*LoggingSitemapResolver)(nil)

// LoggingSitemapResolver wraps a SitemapResolver with operation logging.
type LoggingSitemapResolver struct {
	next   menumap.SitemapResolver
	logger *slog.Logger
}

// NewLoggingSitemapResolver creates a new LoggingSitemapResolver.
func NewLoggingSitemapResolver(next menumap.SitemapResolver, logger *slog.Logger) *LoggingSitemapResolver {
	return &LoggingSitemapResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (s *LoggingSitemapResolver) Resolve(ctx context.Context, baseURL string, limit int) (col *menumap.PageCollection, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap resolve",
			"url", baseURL,
			"limit", limit,
			"count", col.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Resolve(ctx, baseURL, limit)
}
