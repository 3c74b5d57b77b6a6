package menumap

import (
	"net/url"
	"sort"
	"strings"
)

// Source identifies the extraction stage that produced a candidate.
type Source string

// Candidate provenance tags.
const (
	SourceSitemap    Source = "sitemap"
	SourceHTMLParser Source = "html_parser"
)

// PageCandidate is a URL plus metadata considered for inclusion in the
// final menu/page list.
type PageCandidate struct {
	URL       string            `json:"url"`
	Title     string            `json:"title,omitempty"`
	Priority  float64           `json:"priority"`
	Depth     int               `json:"depth"`
	ParentURL string            `json:"parentUrl,omitempty"`
	Valid     *bool             `json:"isValid,omitempty"`
	Sources   []Source          `json:"sources"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Validate returns an error if the candidate contains invalid fields.
func (c *PageCandidate) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Errorf(EINVALID, "candidate URL must be absolute: %q", c.URL)
	}
	if c.Depth < 0 {
		return Errorf(EINVALID, "candidate depth must be non-negative: %d", c.Depth)
	}
	if len(c.Sources) == 0 {
		return Errorf(EINVALID, "candidate requires at least one source")
	}
	return nil
}

// HasSource returns true if the candidate carries the given provenance tag.
func (c *PageCandidate) HasSource(s Source) bool {
	for _, have := range c.Sources {
		if have == s {
			return true
		}
	}
	return false
}

// AddSource adds a provenance tag, preserving set semantics.
func (c *PageCandidate) AddSource(s Source) {
	if !c.HasSource(s) {
		c.Sources = append(c.Sources, s)
	}
}

// CandidateKey returns the deduplication key for a URL: scheme and host
// are lowercased, the fragment is stripped, and a bare path is normalized
// to "/". Path and query case is preserved.
func CandidateKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// PageCollection is an ordered set of page candidates for one base URL.
// Within a collection, candidate URLs are unique by CandidateKey.
type PageCollection struct {
	BaseURL  string            `json:"baseUrl"`
	Pages    []*PageCandidate  `json:"pages"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewPageCollection creates an empty collection for the given base URL.
func NewPageCollection(baseURL string) *PageCollection {
	return &PageCollection{BaseURL: baseURL}
}

// Len returns the number of candidates in the collection.
// It is nil-safe so optional stage results can be inspected directly.
func (pc *PageCollection) Len() int {
	if pc == nil {
		return 0
	}
	return len(pc.Pages)
}

// SortByPriority sorts candidates by descending priority. The sort is
// stable so equal-priority candidates keep their insertion order.
func (pc *PageCollection) SortByPriority() {
	sort.SliceStable(pc.Pages, func(i, j int) bool {
		return pc.Pages[i].Priority > pc.Pages[j].Priority
	})
}

// Truncate caps the collection at n candidates.
func (pc *PageCollection) Truncate(n int) {
	if n >= 0 && len(pc.Pages) > n {
		pc.Pages = pc.Pages[:n]
	}
}
