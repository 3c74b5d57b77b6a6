package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/pagecap/menumap"
	"github.com/pagecap/menumap/mock"
	mapslog "github.com/pagecap/menumap/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLoggingRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("logs render with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Renderer{
			RenderFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		r := mapslog.NewLoggingRenderer(inner, testLogger(&buf, slog.LevelInfo))
		html, err := r.Render(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "render")
		assert.Contains(t, output, "url=https://example.com/")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Renderer{
			RenderFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("navigation timeout")
			},
		}

		r := mapslog.NewLoggingRenderer(inner, testLogger(&buf, slog.LevelInfo))
		_, err := r.Render(context.Background(), "https://example.com/")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"navigation timeout\"")
	})

	t.Run("close delegates to inner renderer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		closed := false
		inner := &mock.Renderer{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		r := mapslog.NewLoggingRenderer(inner, testLogger(&buf, slog.LevelInfo))
		require.NoError(t, r.Close())
		assert.True(t, closed)
	})
}

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Generator{
		GenerateFn: func(ctx context.Context, prompt, system string) (string, error) {
			return "ok", nil
		},
	}

	g := mapslog.NewLoggingGenerator(inner, testLogger(&buf, slog.LevelInfo))
	text, err := g.Generate(context.Background(), "prompt", "system")

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	output := buf.String()
	assert.Contains(t, output, "generate")
	assert.Contains(t, output, "prompt_bytes=6")
	assert.Contains(t, output, "response_bytes=2")
	// Prompt and response bodies stay out of the logs.
	assert.NotContains(t, output, "prompt\"")
}

func TestLoggingSitemapResolver_Resolve(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	col := menumap.NewPageCollection("https://example.com/")
	col.Pages = append(col.Pages, &menumap.PageCandidate{
		URL:     "https://example.com/about",
		Sources: []menumap.Source{menumap.SourceSitemap},
	})
	inner := &mock.SitemapResolver{
		ResolveFn: func(ctx context.Context, baseURL string, limit int) (*menumap.PageCollection, error) {
			return col, nil
		},
	}

	s := mapslog.NewLoggingSitemapResolver(inner, testLogger(&buf, slog.LevelInfo))
	got, err := s.Resolve(context.Background(), "https://example.com/", 40)

	require.NoError(t, err)
	assert.Equal(t, col, got)
	output := buf.String()
	assert.Contains(t, output, "sitemap resolve")
	assert.Contains(t, output, "count=1")
	assert.Contains(t, output, "limit=40")
}

func TestLoggingChecker_Check(t *testing.T) {
	t.Parallel()

	t.Run("logs at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Checker{
			CheckFn: func(ctx context.Context, url string) (bool, error) {
				return true, nil
			},
		}

		c := mapslog.NewLoggingChecker(inner, testLogger(&buf, slog.LevelDebug))
		ok, err := c.Check(context.Background(), "https://example.com/about")

		require.NoError(t, err)
		assert.True(t, ok)
		output := buf.String()
		assert.Contains(t, output, "check")
		assert.Contains(t, output, "reachable=true")
	})

	t.Run("silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Checker{
			CheckFn: func(ctx context.Context, url string) (bool, error) {
				return true, nil
			},
		}

		c := mapslog.NewLoggingChecker(inner, testLogger(&buf, slog.LevelInfo))
		_, err := c.Check(context.Background(), "https://example.com/about")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
