package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/pagecap/menumap"
)

// DefaultRetryMarker is the phrase the review asks the model to emit
// when the extracted page list is inadequate.
const DefaultRetryMarker = "RETRY_NEEDED"

// Finalizer decides the outcome of one iteration. An empty result
// retries while budget remains and fails terminally otherwise. A
// non-empty result is optionally submitted for model review; review
// errors are swallowed because the extracted list is still usable.
type Finalizer struct {
	Generator menumap.Generator

	// RetryMarker overrides DefaultRetryMarker.
	RetryMarker string
}

// Finalize sets the iteration's closing status: completed,
// retry_needed, or finalization_failed.
func (f *Finalizer) Finalize(ctx context.Context, st *menumap.State) {
	if st.FinalResult.Len() == 0 {
		if st.Iteration < st.Config.MaxIterations {
			st.Status = menumap.StatusRetryNeeded
			return
		}
		st.RecordError(menumap.StageFinalize, "no pages extracted and no iterations remaining")
		st.Status = menumap.StatusFinalizationFailed
		return
	}

	if f.Generator == nil {
		st.Status = menumap.StatusCompleted
		return
	}

	marker := f.RetryMarker
	if marker == "" {
		marker = DefaultRetryMarker
	}
	resp, err := f.Generator.Generate(ctx, reviewPrompt(st, marker), reviewSystem)
	if err != nil {
		st.RecordError(menumap.StageFinalize, fmt.Sprintf("result review: %v", err))
		st.Status = menumap.StatusCompleted
		return
	}
	if strings.Contains(resp, marker) {
		st.Status = menumap.StatusRetryNeeded
		return
	}
	st.Status = menumap.StatusCompleted
}
