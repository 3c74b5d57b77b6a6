package main

import (
	"context"
	"io"

	"github.com/pagecap/menumap"
	"github.com/pagecap/menumap/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline *pipeline.Pipeline
	Sitemaps menumap.SitemapResolver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract a website's menu pages for screenshot capture"`
	Sitemap SitemapCmd `cmd:"" help:"List sitemap candidates without running the full pipeline"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Website root URL"`

	MinPages       int      `default:"5" help:"Desired lower bound on extracted pages (diagnostic only)"`
	MaxPages       int      `default:"20" help:"Maximum number of extracted pages"`
	MaxIterations  int      `default:"3" help:"Maximum extract-verify-retry iterations"`
	NoNormalize    bool     `help:"Use the URL verbatim, skipping canonicalization"`
	IncludeDynamic bool     `help:"Allow query-string URLs into the result"`
	FlatSections   bool     `help:"Do not prioritize main sections over deep subpages"`
	Device         []string `default:"desktop" help:"Device types for downstream capture (repeatable)"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	URL   string `arg:"" help:"Website root URL"`
	Limit int    `default:"40" help:"Maximum number of sitemap candidates"`
}
