// Package http provides HTTP-based implementations of the menumap
// collaborator interfaces: sitemap resolution and reachability probing.
package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/pagecap/menumap"
	"github.com/pagecap/menumap/bloom"
)

// DefaultFetchTimeout is the default timeout for robots and sitemap fetches.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies menumap requests to target sites.
const userAgent = "menumap/1.0 (+https://github.com/pagecap/menumap)"

// DefaultSitemapPriority is assigned when a <url> entry carries no
// <priority> element or the value does not parse.
const DefaultSitemapPriority = 0.5

// sitemapURLLimit sizes the dedup filter. The sitemap protocol caps a
// single file at 50k URLs.
const sitemapURLLimit = 50000

// conventionalSitemapPaths are tried after robots.txt directives.
var conventionalSitemapPaths = []string{
	"/sitemap.xml",
	"/sitemap_index.xml",
	"/sitemap/sitemap.xml",
	"/sitemaps/sitemap.xml",
}

// Ensure SitemapResolver implements menumap.SitemapResolver.
var _ menumap.SitemapResolver = (*SitemapResolver)(nil)

// SitemapResolver discovers page candidates from website sitemaps via HTTP.
type SitemapResolver struct {
	client      *http.Client
	limiter     *DomainLimiter
	retryDelays []time.Duration
}

// ResolverOption configures a SitemapResolver.
type ResolverOption func(*SitemapResolver)

// WithResolverLimiter rate-limits robots and sitemap fetches per domain.
func WithResolverLimiter(l *DomainLimiter) ResolverOption {
	return func(r *SitemapResolver) {
		r.limiter = l
	}
}

// WithRetryDelays sets the backoff delays for failed fetches.
// Defaults to DefaultRetryDelays(); pass an empty slice to disable retry.
func WithRetryDelays(delays []time.Duration) ResolverOption {
	return func(r *SitemapResolver) {
		r.retryDelays = delays
	}
}

// NewSitemapResolver creates a new SitemapResolver with the given HTTP
// client. If client is nil, a default client with DefaultFetchTimeout
// is used.
func NewSitemapResolver(client *http.Client, opts ...ResolverOption) *SitemapResolver {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	r := &SitemapResolver{
		client:      client,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// sitemapEntry is one <url> record from a urlset.
type sitemapEntry struct {
	loc      string
	priority float64
}

// Resolve finds candidate pages from the site's sitemap.
//
// Locations from robots.txt Sitemap directives are tried first, then the
// conventional paths. The first location that parses as XML wins; later
// locations are not merged in. A sitemap index is resolved one level
// deep, and <url> entries present directly in the index document are
// collected as well. Per-location fetch and parse errors move on to the
// next location.
//
// Returns ENOTFOUND if no location yields a valid sitemap document.
func (r *SitemapResolver) Resolve(ctx context.Context, baseURL string, limit int) (*menumap.PageCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil, menumap.Errorf(menumap.EINVALID, "invalid base URL: %q", baseURL)
	}

	// Sitemaps live at the domain root regardless of the base path.
	root := *base
	root.Path = ""
	root.RawQuery = ""
	root.Fragment = ""

	locations := r.robotsSitemaps(ctx, &root)
	for _, p := range conventionalSitemapPaths {
		locations = append(locations, root.ResolveReference(&url.URL{Path: p}).String())
	}

	var entries []sitemapEntry
	parsed := false
	tried := make(map[string]bool)
	for _, loc := range locations {
		if tried[loc] {
			continue
		}
		tried[loc] = true

		es, err := r.parseLocation(ctx, loc)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		entries = es
		parsed = true
		break
	}
	if !parsed {
		return nil, menumap.Errorf(menumap.ENOTFOUND, "no sitemap found for %s", baseURL)
	}

	col := menumap.NewPageCollection(baseURL)
	seen := bloom.NewURLSet(sitemapURLLimit)
	for _, e := range entries {
		if seen.Seen(e.loc) {
			continue
		}
		seen.Add(e.loc)
		col.Pages = append(col.Pages, &menumap.PageCandidate{
			URL:      e.loc,
			Priority: e.priority,
			Sources:  []menumap.Source{menumap.SourceSitemap},
		})
	}

	col.SortByPriority()
	if limit > 0 {
		col.Truncate(limit)
	}
	return col, nil
}

// robotsSitemaps extracts Sitemap: directive values from robots.txt.
// All errors degrade to an empty list.
func (r *SitemapResolver) robotsSitemaps(ctx context.Context, root *url.URL) []string {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	body, err := r.fetch(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			value := strings.TrimSpace(line[len("sitemap:"):])
			if value != "" {
				sitemaps = append(sitemaps, value)
			}
		}
	}
	return sitemaps
}

// parseLocation fetches one sitemap location and returns its entries,
// resolving a sitemap index one level deep.
func (r *SitemapResolver) parseLocation(ctx context.Context, location string) ([]sitemapEntry, error) {
	body, err := r.fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML at %s", location)
	}
	if root.Tag != "urlset" && root.Tag != "sitemapindex" {
		return nil, fmt.Errorf("unexpected sitemap root element <%s> at %s", root.Tag, location)
	}

	// Entries present directly in the top document.
	entries := parseURLSet(root)

	// Child sitemaps from an index. A child that fails to fetch or
	// parse is skipped; its siblings still contribute.
	for _, sm := range root.SelectElements("sitemap") {
		loc := sm.SelectElement("loc")
		if loc == nil {
			continue
		}
		childURL := strings.TrimSpace(loc.Text())
		if childURL == "" {
			continue
		}
		child, err := r.parseChild(ctx, childURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		entries = append(entries, child...)
	}

	return entries, nil
}

// parseChild fetches and parses one child sitemap from an index.
func (r *SitemapResolver) parseChild(ctx context.Context, location string) ([]sitemapEntry, error) {
	body, err := r.fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing child sitemap XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty child sitemap XML at %s", location)
	}
	return parseURLSet(root), nil
}

// parseURLSet extracts loc/priority pairs from <url> elements.
func parseURLSet(root *etree.Element) []sitemapEntry {
	var entries []sitemapEntry
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u == "" {
			continue
		}
		entry := sitemapEntry{loc: u, priority: DefaultSitemapPriority}
		if p := urlEl.SelectElement("priority"); p != nil {
			if v, err := strconv.ParseFloat(strings.TrimSpace(p.Text()), 64); err == nil {
				entry.priority = v
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// fetch GETs a URL through the rate limiter and retry policy, returning
// the response body on HTTP 200.
func (r *SitemapResolver) fetch(ctx context.Context, target string) (io.ReadCloser, error) {
	if r.limiter != nil {
		u, err := url.Parse(target)
		if err != nil {
			return nil, fmt.Errorf("invalid fetch URL: %w", err)
		}
		if err := r.limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}
	return GetWithRetryDelays(ctx, target, r.get, r.retryDelays)
}

func (r *SitemapResolver) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}
