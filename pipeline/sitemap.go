package pipeline

import (
	"context"
	"fmt"

	"github.com/pagecap/menumap"
)

// DefaultSitemapHeadroom multiplies MaxPages when asking the resolver
// for candidates. The extra headroom lets verification drop unreachable
// URLs without starving the final list.
const DefaultSitemapHeadroom = 2

// SitemapStage resolves sitemap candidates for the target URL. A
// missing sitemap is a normal outcome, not a pipeline failure.
type SitemapStage struct {
	Resolver menumap.SitemapResolver

	// Headroom overrides DefaultSitemapHeadroom.
	Headroom int
}

// Extract populates State.SitemapResult and advances the status.
// The result is always set, possibly empty, so later stages never
// distinguish "failed" from "found nothing".
func (s *SitemapStage) Extract(ctx context.Context, st *menumap.State) {
	headroom := s.Headroom
	if headroom <= 0 {
		headroom = DefaultSitemapHeadroom
	}

	col, err := s.Resolver.Resolve(ctx, st.TargetURL(), headroom*st.Config.MaxPages)
	if err != nil {
		st.SitemapResult = menumap.NewPageCollection(st.TargetURL())
		if menumap.ErrorCode(err) == menumap.ENOTFOUND {
			st.RecordError(menumap.StageSitemap, menumap.ErrorMessage(err))
			st.Status = menumap.StatusSitemapNotFound
		} else {
			st.RecordError(menumap.StageSitemap, fmt.Sprintf("sitemap extraction: %v", err))
			st.Status = menumap.StatusSitemapFailed
		}
		return
	}

	st.SitemapResult = col
	st.Status = menumap.StatusSitemapExtracted
}
