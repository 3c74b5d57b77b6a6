// Package goquery extracts navigation fragments and links from rendered
// HTML using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagecap/menumap"
)

// DefaultMinFragmentLength filters out fragments too short to describe
// a menu (empty wrappers, hamburger buttons, skip links).
const DefaultMinFragmentLength = 50

// NavSelectors match elements that typically hold primary navigation.
func NavSelectors() []string {
	return []string{
		"nav",
		"header nav",
		"[role=navigation]",
		"[class*=navbar]",
		"[class*=menu]",
		"[id*=menu]",
		"[id*=nav]",
	}
}

// FooterSelectors match elements that typically hold footer navigation.
func FooterSelectors() []string {
	return []string{
		"footer",
		"[class*=footer]",
		"[id*=footer]",
	}
}

// ExtractFragments returns the inner HTML of elements matching the
// selectors, in selector order, keeping only fragments of at least
// minLen characters. Fragments already contained in an earlier match
// are dropped.
func ExtractFragments(html string, selectors []string, minLen int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, menumap.Errorf(menumap.EINVALID, "failed to parse HTML: %v", err)
	}

	var fragments []string
	for _, selector := range selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			inner, err := sel.Html()
			if err != nil {
				return
			}
			inner = strings.TrimSpace(inner)
			if len(inner) < minLen {
				return
			}
			for _, have := range fragments {
				if strings.Contains(have, inner) {
					return
				}
			}
			fragments = append(fragments, inner)
		})
	}

	return fragments, nil
}
