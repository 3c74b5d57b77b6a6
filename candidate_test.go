package menumap_test

import (
	"testing"

	"github.com/pagecap/menumap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCandidate_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate menumap.PageCandidate
		wantCode  string
	}{
		{
			name: "valid",
			candidate: menumap.PageCandidate{
				URL:      "https://example.com/about",
				Priority: 0.5,
				Sources:  []menumap.Source{menumap.SourceSitemap},
			},
		},
		{
			name: "relative URL",
			candidate: menumap.PageCandidate{
				URL:     "/about",
				Sources: []menumap.Source{menumap.SourceSitemap},
			},
			wantCode: menumap.EINVALID,
		},
		{
			name: "negative depth",
			candidate: menumap.PageCandidate{
				URL:     "https://example.com/",
				Depth:   -1,
				Sources: []menumap.Source{menumap.SourceSitemap},
			},
			wantCode: menumap.EINVALID,
		},
		{
			name: "no sources",
			candidate: menumap.PageCandidate{
				URL: "https://example.com/",
			},
			wantCode: menumap.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.candidate.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantCode, menumap.ErrorCode(err))
			}
		})
	}
}

func TestPageCandidate_AddSource_SetSemantics(t *testing.T) {
	t.Parallel()

	c := &menumap.PageCandidate{URL: "https://example.com/"}
	c.AddSource(menumap.SourceSitemap)
	c.AddSource(menumap.SourceSitemap)
	c.AddSource(menumap.SourceHTMLParser)

	assert.Equal(t, []menumap.Source{menumap.SourceSitemap, menumap.SourceHTMLParser}, c.Sources)
}

func TestCandidateKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"case-insensitive host", "https://Example.COM/about", "https://example.com/about", true},
		{"case-insensitive scheme", "HTTPS://example.com/", "https://example.com/", true},
		{"fragment stripped", "https://example.com/about#team", "https://example.com/about", true},
		{"bare host gains slash", "https://example.com", "https://example.com/", true},
		{"path case preserved", "https://example.com/About", "https://example.com/about", false},
		{"query preserved", "https://example.com/?a=1", "https://example.com/?a=2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ka := menumap.CandidateKey(tt.a)
			kb := menumap.CandidateKey(tt.b)
			if tt.same {
				assert.Equal(t, ka, kb)
			} else {
				assert.NotEqual(t, ka, kb)
			}
		})
	}
}

func TestPageCollection_SortAndTruncate(t *testing.T) {
	t.Parallel()

	col := menumap.NewPageCollection("https://example.com/")
	col.Pages = []*menumap.PageCandidate{
		{URL: "https://example.com/a", Priority: 0.3},
		{URL: "https://example.com/b", Priority: 0.9},
		{URL: "https://example.com/c", Priority: 0.9},
		{URL: "https://example.com/d", Priority: 0.5},
	}

	col.SortByPriority()
	col.Truncate(3)

	require.Equal(t, 3, col.Len())
	// Stable: b before c at equal priority.
	assert.Equal(t, "https://example.com/b", col.Pages[0].URL)
	assert.Equal(t, "https://example.com/c", col.Pages[1].URL)
	assert.Equal(t, "https://example.com/d", col.Pages[2].URL)
}

func TestPageCollection_Len_Nil(t *testing.T) {
	t.Parallel()

	var col *menumap.PageCollection
	assert.Zero(t, col.Len())
}
