package pipeline

import (
	"context"

	"github.com/pagecap/menumap"
)

// Pipeline runs the extraction state machine: normalize, sitemap,
// menu analysis, verify, finalize, looping while the finalizer asks
// for a retry and iteration budget remains.
type Pipeline struct {
	Normalizer *Normalizer
	Sitemap    *SitemapStage
	Menu       *MenuStage
	Verifier   *Verifier
	Finalizer  *Finalizer
}

// New wires a pipeline from its external dependencies.
func New(resolver menumap.SitemapResolver, renderer menumap.Renderer, generator menumap.Generator, checker menumap.Checker) *Pipeline {
	return &Pipeline{
		Normalizer: &Normalizer{Generator: generator},
		Sitemap:    &SitemapStage{Resolver: resolver},
		Menu:       &MenuStage{Renderer: renderer, Generator: generator},
		Verifier:   NewVerifier(checker),
		Finalizer:  &Finalizer{Generator: generator},
	}
}

// Run executes the extraction for baseURL and returns the final state.
// Stage failures are recorded on the state, never returned: the only
// error Run itself reports is invalid input. The returned state always
// carries a terminal status (or retry_needed resolved into one).
//
// The menu analysis is skipped when the sitemap alone already yields
// MaxPages or more candidates; a skipped analysis also clears any menu
// result from a previous iteration so stale candidates cannot leak
// into the merge.
func (p *Pipeline) Run(ctx context.Context, cfg menumap.Config, baseURL string) (*menumap.State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if baseURL == "" {
		return nil, menumap.Errorf(menumap.EINVALID, "base URL is required")
	}

	st := menumap.NewState(cfg, baseURL)
	for {
		st.Iteration++
		st.Status = menumap.StatusPlanningCompleted

		p.Normalizer.Normalize(ctx, st)
		p.Sitemap.Extract(ctx, st)
		if st.SitemapResult.Len() >= cfg.MaxPages {
			st.MenuResult = nil
		} else {
			p.Menu.Analyze(ctx, st)
		}
		p.Verifier.Verify(ctx, st)
		p.Finalizer.Finalize(ctx, st)

		if st.Status != menumap.StatusRetryNeeded {
			return st, nil
		}
		if st.Iteration >= cfg.MaxIterations {
			st.Status = menumap.StatusMaxIterationsReached
			return st, nil
		}
	}
}
