package goquery_test

import (
	"testing"

	menugoquery "github.com/pagecap/menumap/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findLink(links []menugoquery.Link, url string) *menugoquery.Link {
	for i := range links {
		if links[i].URL == url {
			return &links[i]
		}
	}
	return nil
}

func TestExtractLinks_ResolvesRelativeURLs(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/about">About</a>
<a href="products">Products</a>
<a href="https://example.com/contact">Contact</a>
</body></html>`

	links, err := menugoquery.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.NotNil(t, findLink(links, "https://example.com/about"))
	assert.NotNil(t, findLink(links, "https://example.com/products"))
	assert.NotNil(t, findLink(links, "https://example.com/contact"))
}

func TestExtractLinks_FiltersExternalHosts(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="https://example.com/here">Here</a>
<a href="https://other.com/there">There</a>
<a href="https://sub.example.com/deep">Sub</a>
</body></html>`

	links, err := menugoquery.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/here", links[0].URL)
}

func TestExtractLinks_SkipsFragmentsSchemesAndBinaries(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="#section">Jump</a>
<a href="javascript:void(0)">JS</a>
<a href="mailto:hi@example.com">Mail</a>
<a href="tel:+123">Call</a>
<a href="/brochure.pdf">Brochure</a>
<a href="/logo.png">Logo</a>
<a href="/real-page">Real</a>
</body></html>`

	links, err := menugoquery.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/real-page", links[0].URL)
}

func TestExtractLinks_SkipsEmptyText(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/icon-only"><img src="/i.svg"></a>
<a href="/named">  Named   link </a>
</body></html>`

	links, err := menugoquery.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Named link", links[0].Text)
}

func TestExtractLinks_TagsNavContainment(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<nav><a href="/in-nav">In nav</a></nav>
<div class="main-menu"><a href="/in-menu">In menu</a></div>
<main><a href="/in-content">In content</a></main>
</body></html>`

	links, err := menugoquery.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.True(t, findLink(links, "https://example.com/in-nav").InNav)
	assert.True(t, findLink(links, "https://example.com/in-menu").InNav)
	assert.False(t, findLink(links, "https://example.com/in-content").InNav)
}

func TestExtractLinks_DeduplicatesKeepingNavHit(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<main><a href="/dup">Duplicate</a></main>
<nav><a href="/dup">Duplicate</a></nav>
</body></html>`

	links, err := menugoquery.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.True(t, links[0].InNav)
}

func TestExtractLinks_FragmentStrippedInResolvedURL(t *testing.T) {
	t.Parallel()

	html := `<html><body><a href="/page#top">Page</a></body></html>`

	links, err := menugoquery.ExtractLinks(html, "https://example.com/")

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/page", links[0].URL)
}

func TestExtractLinks_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := menugoquery.ExtractLinks("<html></html>", "://bad")

	assert.Error(t, err)
}
