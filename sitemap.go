package menumap

import "context"

// SitemapResolver discovers page candidates from a site's sitemaps.
type SitemapResolver interface {
	// Resolve finds candidate pages from the site's sitemap. It checks
	// robots.txt for Sitemap directives, then conventional sitemap
	// locations, and parses the first location that yields a valid
	// document (sitemap indexes are resolved one level deep). The
	// returned collection is sorted by descending priority and capped
	// at limit (0 means no cap).
	//
	// Returns ENOTFOUND if no sitemap could be located.
	Resolve(ctx context.Context, baseURL string, limit int) (*PageCollection, error)
}
