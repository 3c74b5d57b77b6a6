package main

import (
	"fmt"

	"github.com/pagecap/menumap"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	col, err := deps.Sitemaps.Resolve(deps.Ctx, c.URL, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", menumap.ErrorMessage(err))
		return err
	}

	for _, p := range col.Pages {
		fmt.Fprintf(deps.Stdout, "%.2f  %s\n", p.Priority, p.URL)
	}
	fmt.Fprintf(deps.Stdout, "%d candidates\n", col.Len())
	return nil
}
