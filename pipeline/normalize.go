// Package pipeline orchestrates menu extraction: URL normalization,
// sitemap resolution, rendered-DOM menu analysis, verification with
// merge and scoring, and finalization with a bounded retry loop.
package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pagecap/menumap"
	"golang.org/x/net/publicsuffix"
)

// DefaultNormalizedURLPattern matches the fixed reply line the locale
// check asks the model for. The stage accepts the captured value only
// when it contains a scheme separator.
var DefaultNormalizedURLPattern = regexp.MustCompile(`(?mi)^\s*normalized url:\s*(\S+)`)

const normalizeSystem = "You identify canonical website domains. " +
	"Localized mirrors (like kr.example.com or de.example.com) share design and menu structure with their canonical site, " +
	"so extraction should target the canonical domain. Reply with exactly one line in the requested format."

// Normalizer canonicalizes the extraction root URL. The deterministic
// part strips to scheme+host with a trailing slash; the generator is
// consulted only to collapse localized subdomains onto the canonical
// parent domain. Normalization never fails the pipeline.
type Normalizer struct {
	Generator menumap.Generator

	// Pattern overrides DefaultNormalizedURLPattern.
	Pattern *regexp.Regexp
}

// Normalize sets State.NormalizedURL and advances the status.
// With NormalizeURLs disabled the base URL is passed through verbatim
// and the generator is never called.
func (n *Normalizer) Normalize(ctx context.Context, st *menumap.State) {
	st.Status = menumap.StatusURLNormalized

	if !st.Config.NormalizeURLs {
		st.NormalizedURL = st.BaseURL
		return
	}

	root, err := deterministicRoot(st.BaseURL)
	if err != nil {
		st.RecordError(menumap.StageNormalize, fmt.Sprintf("deterministic normalization: %v", err))
		st.NormalizedURL = st.BaseURL
		return
	}
	st.NormalizedURL = root

	if n.Generator == nil {
		return
	}

	host := hostOf(root)
	apex, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil || strings.EqualFold(apex, host) || strings.EqualFold("www."+apex, host) {
		return
	}

	resp, err := n.Generator.Generate(ctx, localePrompt(host, apex), normalizeSystem)
	if err != nil {
		st.RecordError(menumap.StageNormalize, fmt.Sprintf("locale check: %v", err))
		return
	}

	pattern := n.Pattern
	if pattern == nil {
		pattern = DefaultNormalizedURLPattern
	}
	m := pattern.FindStringSubmatch(resp)
	if m == nil {
		return
	}
	value := strings.TrimSpace(m[1])
	if !strings.Contains(value, "://") {
		return
	}
	st.NormalizedURL = ensureTrailingSlash(value)
}

// deterministicRoot reduces a URL to scheme+host with a trailing slash.
func deterministicRoot(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if !u.IsAbs() || u.Host == "" {
		return "", menumap.Errorf(menumap.EINVALID, "URL must be absolute: %q", raw)
	}
	return u.Scheme + "://" + u.Host + "/", nil
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Hostname()
}

func ensureTrailingSlash(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}
