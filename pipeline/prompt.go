package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pagecap/menumap"
	"github.com/pagecap/menumap/goquery"
)

// Prompt size caps. Navigation fragments and link lists from large
// sites can exceed model context windows, so both are bounded before
// the prompt is assembled.
const (
	DefaultMaxFragmentChars = 12000
	DefaultMaxPromptLinks   = 100
)

const menuSystem = "You analyze website navigation structure. " +
	"Given HTML fragments and a link inventory from a rendered page, you identify the pages a site's menu exposes. " +
	"You respond with JSON only, inside a fenced code block."

const reviewSystem = "You review extracted website page lists for completeness. " +
	"You judge whether the list covers the site's main sections well enough for screenshot capture."

// localePrompt asks whether host is a localized mirror of the apex
// domain and, if so, for the canonical URL in a fixed reply format.
func localePrompt(host, apex string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The website host is %q. Its registrable domain is %q.\n\n", host, apex)
	b.WriteString("If the host is a language or region mirror (for example kr., de., fr., es. subdomains), ")
	b.WriteString("reply with the canonical site root in exactly this format:\n\n")
	b.WriteString("Normalized URL: https://<canonical-host>/\n\n")
	b.WriteString("If the host is not a localized mirror (for example docs., blog., shop., app. subdomains, ")
	b.WriteString("which have their own distinct content), reply with:\n\n")
	b.WriteString("Normalized URL: none\n")
	return b.String()
}

// menuPrompt assembles the menu analysis prompt from navigation
// fragments and the extracted link inventory, both capped.
func menuPrompt(target string, fragments []string, links []goquery.Link, cfg menumap.Config, maxFragmentChars, maxLinks int) string {
	if maxFragmentChars <= 0 {
		maxFragmentChars = DefaultMaxFragmentChars
	}
	if maxLinks <= 0 {
		maxLinks = DefaultMaxPromptLinks
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Identify the menu pages of the website %s.\n\n", target)

	if joined := joinFragments(fragments, maxFragmentChars); joined != "" {
		b.WriteString("Navigation HTML fragments:\n\n```html\n")
		b.WriteString(joined)
		b.WriteString("\n```\n\n")
	}

	if len(links) > 0 {
		if len(links) > maxLinks {
			links = links[:maxLinks]
		}
		b.WriteString("Links found on the page:\n\n")
		for _, l := range links {
			if l.InNav {
				fmt.Fprintf(&b, "- [%s](%s) (nav)\n", l.Text, l.URL)
			} else {
				fmt.Fprintf(&b, "- [%s](%s)\n", l.Text, l.URL)
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Return at most %d pages that belong to the site's menu structure.\n", cfg.MaxPages)
	if cfg.PrioritizeMainSections {
		b.WriteString("Prioritize main sections (home, products, services, about, contact) over deep subpages.\n")
	}
	if !cfg.IncludeDynamicPages {
		b.WriteString("Exclude dynamic pages such as search results and URLs with query parameters.\n")
	}
	b.WriteString("\nRespond with a fenced JSON code block of this shape:\n\n")
	b.WriteString("```json\n")
	b.WriteString(`{"pages": [{"url": "https://example.com/about", "title": "About", "priority": 0.8, "depth": 1}]}`)
	b.WriteString("\n```\n\n")
	b.WriteString("priority is 0.1 to 1.0 (importance of the page in the menu), depth is 0 for the homepage and top-level entries.\n")
	return b.String()
}

// reviewPrompt asks the model to judge the final page list. The reply
// must contain the retry marker verbatim when the list is inadequate.
func reviewPrompt(st *menumap.State, marker string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The following %d pages were extracted from %s for screenshot capture:\n\n",
		st.FinalResult.Len(), st.TargetURL())
	for _, c := range st.FinalResult.Pages {
		title := c.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(&b, "- %s | %s | priority %.2f | depth %d\n", c.URL, title, c.Priority, c.Depth)
	}
	fmt.Fprintf(&b, "\nThe target was between %d and %d pages covering the site's main sections.\n",
		st.Config.MinPages, st.Config.MaxPages)
	fmt.Fprintf(&b, "If the list is missing obvious main sections or is clearly inadequate, include the exact phrase %s in your reply. ", marker)
	b.WriteString("Otherwise give a one-sentence assessment.\n")
	return b.String()
}

// joinFragments concatenates fragments up to a byte budget. The
// fragment that crosses the budget is truncated on a rune boundary
// rather than dropped, so the prompt never carries a torn UTF-8
// sequence.
func joinFragments(fragments []string, maxChars int) string {
	var b strings.Builder
	for _, f := range fragments {
		if b.Len() >= maxChars {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		remaining := maxChars - b.Len()
		if remaining < 0 {
			remaining = 0
		}
		if len(f) > remaining {
			cut := remaining
			for cut > 0 && !utf8.RuneStart(f[cut]) {
				cut--
			}
			f = f[:cut]
		}
		b.WriteString(f)
	}
	return b.String()
}
