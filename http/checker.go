package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pagecap/menumap"
)

// DefaultCheckTimeout is the default timeout for reachability probes.
// Probes stay shorter than content fetches.
const DefaultCheckTimeout = 5 * time.Second

// Ensure Checker implements menumap.Checker at compile time.
var _ menumap.Checker = (*Checker)(nil)

// Checker probes URLs for reachability using HEAD requests.
type Checker struct {
	client  *http.Client
	limiter *DomainLimiter
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithCheckerLimiter rate-limits probes per domain.
func WithCheckerLimiter(l *DomainLimiter) CheckerOption {
	return func(c *Checker) {
		c.limiter = l
	}
}

// NewChecker creates a new Checker with the given HTTP client.
// If client is nil, a default client with DefaultCheckTimeout is used.
func NewChecker(client *http.Client, opts ...CheckerOption) *Checker {
	if client == nil {
		client = &http.Client{Timeout: DefaultCheckTimeout}
	}
	c := &Checker{client: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check reports whether the URL currently resolves to a page. A HEAD
// response below 400 after redirects counts as reachable.
func (c *Checker) Check(ctx context.Context, target string) (bool, error) {
	if c.limiter != nil {
		u, err := url.Parse(target)
		if err != nil {
			return false, menumap.Errorf(menumap.EINVALID, "invalid probe URL: %q", target)
		}
		if err := c.limiter.Wait(ctx, u.Host); err != nil {
			return false, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode < http.StatusBadRequest, nil
}
