package pipeline

import (
	"context"
	"sync"

	"github.com/pagecap/menumap"
	"golang.org/x/sync/errgroup"
)

// DefaultSpotCheckSize is the number of top candidates probed for
// reachability per iteration.
const DefaultSpotCheckSize = 10

// Verifier merges sitemap and menu candidates, spot-checks the top
// candidates for reachability, scores, sorts, and truncates to
// MaxPages. Probe results are cached across iterations so retries do
// not re-probe the same URLs.
type Verifier struct {
	Checker menumap.Checker

	// SpotCheckSize overrides DefaultSpotCheckSize.
	SpotCheckSize int

	mu    sync.Mutex
	cache map[string]bool
}

// NewVerifier creates a Verifier with an empty probe cache.
func NewVerifier(checker menumap.Checker) *Verifier {
	return &Verifier{Checker: checker, cache: make(map[string]bool)}
}

// Verify populates State.FinalResult and advances the status. When
// both sources are empty the stage fails and FinalResult stays unset.
// The spot check runs only while iteration budget remains; the final
// iteration keeps its candidates unprobed rather than spending time on
// checks that cannot trigger a retry.
func (v *Verifier) Verify(ctx context.Context, st *menumap.State) {
	st.FinalResult = nil

	merged := menumap.Merge(st.TargetURL(), st.SitemapResult, st.MenuResult)
	if merged.Len() == 0 {
		st.RecordError(menumap.StageVerify, "no candidates from any source")
		st.Status = menumap.StatusVerificationFailed
		return
	}

	if v.Checker != nil && st.Iteration < st.Config.MaxIterations {
		v.spotCheck(ctx, merged)
	}

	menumap.Score(merged)
	merged.SortByPriority()
	merged.Truncate(st.Config.MaxPages)

	st.EffectiveMinPages = st.Config.MinPages
	if merged.Len() < st.EffectiveMinPages {
		st.EffectiveMinPages = merged.Len()
	}
	st.FinalResult = merged
	st.Status = menumap.StatusVerificationCompleted
}

// spotCheck probes the top candidates concurrently and tags each with
// the outcome. Probe failures mark the candidate invalid; they never
// abort verification.
func (v *Verifier) spotCheck(ctx context.Context, col *menumap.PageCollection) {
	col.SortByPriority()

	n := v.SpotCheckSize
	if n <= 0 {
		n = DefaultSpotCheckSize
	}
	if n > col.Len() {
		n = col.Len()
	}

	var g errgroup.Group
	for _, c := range col.Pages[:n] {
		key := menumap.CandidateKey(c.URL)
		if valid, ok := v.cached(key); ok {
			c.Valid = &valid
			continue
		}
		c := c
		g.Go(func() error {
			ok, err := v.Checker.Check(ctx, c.URL)
			valid := err == nil && ok
			c.Valid = &valid
			v.store(key, valid)
			return nil
		})
	}
	g.Wait()
}

func (v *Verifier) cached(key string) (valid, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cache == nil {
		return false, false
	}
	valid, ok = v.cache[key]
	return valid, ok
}

func (v *Verifier) store(key string, valid bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cache == nil {
		v.cache = make(map[string]bool)
	}
	v.cache[key] = valid
}
