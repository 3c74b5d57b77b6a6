package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pagecap/menumap/gemini"
	menuhttp "github.com/pagecap/menumap/http"
	"github.com/pagecap/menumap/pipeline"
	"github.com/pagecap/menumap/rod"
	mapslog "github.com/pagecap/menumap/slog"
	"google.golang.org/genai"
)

// requestsPerSecond is the per-domain rate shared by the sitemap
// resolver and the reachability checker.
const requestsPerSecond = 2.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Renderer kept for graceful shutdown after Run returns.
	renderer *rod.Renderer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.renderer != nil {
		return m.renderer.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("menumap"),
		kong.Description("Extract a website's menu pages for screenshot capture."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'menumap --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	limiter := menuhttp.NewDomainLimiter(requestsPerSecond)
	deps.Sitemaps = mapslog.NewLoggingSitemapResolver(
		menuhttp.NewSitemapResolver(nil, menuhttp.WithResolverLimiter(limiter)), logger)

	if cmd == "extract" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		renderer, err := rod.NewRenderer()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.renderer = renderer
		defer m.Close()

		deps.Pipeline = pipeline.New(
			deps.Sitemaps,
			mapslog.NewLoggingRenderer(renderer, logger),
			mapslog.NewLoggingGenerator(gemini.NewGenerator(client), logger),
			mapslog.NewLoggingChecker(menuhttp.NewChecker(nil, menuhttp.WithCheckerLimiter(limiter)), logger),
		)
	}

	return kongCtx.Run(deps)
}
