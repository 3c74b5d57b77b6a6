package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagecap/menumap"
)

// Link is one same-origin anchor extracted from rendered HTML.
type Link struct {
	URL  string
	Text string

	// InNav is true when the anchor sits inside a navigation-like
	// container.
	InNav bool
}

// navContainerSelector matches ancestors that indicate navigation context.
const navContainerSelector = "nav, header, aside, [role=navigation], [class*=navbar], [class*=menu]"

// binaryExtensions are file suffixes excluded from candidate links.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".pdf": true, ".zip": true, ".gz": true, ".tar": true,
	".mp3": true, ".mp4": true, ".webm": true, ".avi": true,
	".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true, ".exe": true, ".dmg": true,
}

// ExtractLinks returns all same-origin anchors with non-empty text,
// resolved against baseURL. Fragment-only links, non-HTTP schemes
// (javascript:, mailto:, tel:), and links to binary files are excluded.
// Links are deduplicated by resolved URL; a navigation-context hit on
// any duplicate marks the kept link.
func ExtractLinks(html string, baseURL string) ([]Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, menumap.Errorf(menumap.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, menumap.Errorf(menumap.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]int)
	var links []Link

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if strings.HasPrefix(href, "#") || isNonHTTPLink(href) {
			return
		}

		text := strings.Join(strings.Fields(sel.Text()), " ")
		if text == "" {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !isSameHost(base, resolved) {
			return
		}
		if isBinaryURL(resolved) {
			return
		}

		inNav := sel.ParentsFiltered(navContainerSelector).Length() > 0

		if i, ok := seen[resolved]; ok {
			if inNav {
				links[i].InNav = true
			}
			return
		}
		seen[resolved] = len(links)
		links = append(links, Link{URL: resolved, Text: text, InNav: inNav})
	})

	return links, nil
}

// isNonHTTPLink reports hrefs that cannot be fetched over HTTP.
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:", "ftp:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// resolveURL resolves href against base, stripping the fragment.
// Returns "" if href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isSameHost reports whether the resolved URL shares the base host.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, base.Host)
}

// isBinaryURL reports whether the URL path ends in a binary extension.
func isBinaryURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return binaryExtensions[strings.ToLower(path.Ext(u.Path))]
}
