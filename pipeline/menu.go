package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pagecap/menumap"
	"github.com/pagecap/menumap/goquery"
)

// Defaults for model omissions in the menu response.
const (
	defaultMenuPriority = 0.5
	defaultMenuDepth    = 0
)

// MenuStage renders the target page and extracts menu candidates from
// its navigation structure via the generator.
type MenuStage struct {
	Renderer  menumap.Renderer
	Generator menumap.Generator

	// MaxFragmentChars and MaxPromptLinks bound the prompt size.
	// Zero values use the package defaults.
	MaxFragmentChars int
	MaxPromptLinks   int
}

// Analyze populates State.MenuResult and advances the status. Render
// and generation failures set html_failed. A malformed model response
// records an error but leaves the status untouched, since the sitemap
// result may still carry the iteration. Any failure leaves MenuResult
// unset for this iteration; a result from a previous iteration never
// survives into the merge.
func (m *MenuStage) Analyze(ctx context.Context, st *menumap.State) {
	st.MenuResult = nil

	target := st.TargetURL()

	html, err := m.Renderer.Render(ctx, target)
	if err != nil {
		st.RecordError(menumap.StageHTML, fmt.Sprintf("rendering %s: %v", target, err))
		st.Status = menumap.StatusHTMLFailed
		return
	}

	fragments, err := extractNavFragments(html)
	if err != nil {
		st.RecordError(menumap.StageHTML, fmt.Sprintf("extracting fragments: %v", err))
		st.Status = menumap.StatusHTMLFailed
		return
	}
	links, err := goquery.ExtractLinks(html, target)
	if err != nil {
		st.RecordError(menumap.StageHTML, fmt.Sprintf("extracting links: %v", err))
		st.Status = menumap.StatusHTMLFailed
		return
	}
	if len(fragments) == 0 && len(links) == 0 {
		st.RecordError(menumap.StageHTML, "no navigation fragments or links found")
		st.Status = menumap.StatusHTMLFailed
		return
	}

	prompt := menuPrompt(target, fragments, links, st.Config, m.MaxFragmentChars, m.MaxPromptLinks)
	resp, err := m.Generator.Generate(ctx, prompt, menuSystem)
	if err != nil {
		st.RecordError(menumap.StageHTML, fmt.Sprintf("menu analysis: %v", err))
		st.Status = menumap.StatusHTMLFailed
		return
	}

	parsed, err := parseMenuResponse(resp)
	if err != nil {
		st.RecordError(menumap.StageHTML, fmt.Sprintf("parsing menu response: %v", err))
		return
	}

	col := buildMenuCollection(target, parsed, st.Config.MaxPages)
	col.Metadata = map[string]string{
		"content_hash": fmt.Sprintf("%016x", xxhash.Sum64String(html)),
	}
	st.MenuResult = col
	st.Status = menumap.StatusHTMLParsed
}

// extractNavFragments collects header and footer navigation fragments.
func extractNavFragments(html string) ([]string, error) {
	nav, err := goquery.ExtractFragments(html, goquery.NavSelectors(), goquery.DefaultMinFragmentLength)
	if err != nil {
		return nil, err
	}
	footer, err := goquery.ExtractFragments(html, goquery.FooterSelectors(), goquery.DefaultMinFragmentLength)
	if err != nil {
		return nil, err
	}
	return append(nav, footer...), nil
}

// buildMenuCollection converts the parsed model response into a
// deduplicated, priority-sorted collection capped at maxPages.
// Entries with unresolvable URLs are skipped.
func buildMenuCollection(target string, resp *menuResponse, maxPages int) *menumap.PageCollection {
	base, _ := url.Parse(target)
	col := menumap.NewPageCollection(target)
	seen := make(map[string]bool)

	for _, p := range resp.Pages {
		if len(col.Pages) >= maxPages {
			break
		}
		resolved := resolveCandidateURL(base, p.URL)
		if resolved == "" {
			continue
		}
		key := menumap.CandidateKey(resolved)
		if seen[key] {
			continue
		}
		seen[key] = true

		priority := defaultMenuPriority
		if p.Priority != nil {
			priority = *p.Priority
		}
		depth := defaultMenuDepth
		if p.Depth != nil && *p.Depth > 0 {
			depth = *p.Depth
		}
		col.Pages = append(col.Pages, &menumap.PageCandidate{
			URL:      resolved,
			Title:    p.Title,
			Priority: priority,
			Depth:    depth,
			Sources:  []menumap.Source{menumap.SourceHTMLParser},
		})
	}

	col.SortByPriority()
	return col
}

// resolveCandidateURL resolves a model-returned URL against the target.
// Returns "" for unparsable or non-absolute results.
func resolveCandidateURL(base *url.URL, raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	if !ref.IsAbs() || ref.Host == "" {
		return ""
	}
	ref.Fragment = ""
	return ref.String()
}
