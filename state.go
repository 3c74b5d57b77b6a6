package menumap

import (
	"time"

	"github.com/google/uuid"
)

// Status labels the extraction state machine.
type Status string

// Pipeline status values, in rough transition order.
const (
	StatusInitialized           Status = "initialized"
	StatusPlanningCompleted     Status = "planning_completed"
	StatusURLNormalized         Status = "url_normalized"
	StatusSitemapExtracted      Status = "sitemap_extracted"
	StatusSitemapNotFound       Status = "sitemap_not_found"
	StatusSitemapFailed         Status = "sitemap_failed"
	StatusHTMLParsed            Status = "html_parsed"
	StatusHTMLFailed            Status = "html_failed"
	StatusVerificationCompleted Status = "verification_completed"
	StatusVerificationFailed    Status = "verification_failed"
	StatusCompleted             Status = "completed"
	StatusRetryNeeded           Status = "retry_needed"
	StatusFinalizationFailed    Status = "finalization_failed"
	StatusMaxIterationsReached  Status = "max_iterations_reached"
)

// Terminal returns true if the status ends an extraction run.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusMaxIterationsReached, StatusFinalizationFailed, StatusVerificationFailed:
		return true
	}
	return false
}

// Stage names used as keys in State.Errors.
const (
	StageNormalize = "normalize"
	StageSitemap   = "sitemap"
	StageHTML      = "html"
	StageVerify    = "verify"
	StageFinalize  = "finalize"
)

// State is the single unit of pipeline state threaded through every
// stage of one extraction request. Each stage receives it, updates it,
// and never holds it beyond its own call.
type State struct {
	ID            string          `json:"id"`
	Config        Config          `json:"config"`
	BaseURL       string          `json:"baseUrl"`
	NormalizedURL string          `json:"normalizedUrl,omitempty"`
	Iteration     int             `json:"iterationCount"`
	SitemapResult *PageCollection `json:"sitemapResult,omitempty"`
	MenuResult    *PageCollection `json:"menuResult,omitempty"`
	FinalResult   *PageCollection `json:"finalResult,omitempty"`

	// EffectiveMinPages records min(Config.MinPages, final count) for
	// diagnostics. The result is never padded to reach it.
	EffectiveMinPages int `json:"effectiveMinPages"`

	// Errors maps stage name to an append-only list of error messages.
	Errors map[string][]string `json:"errorsByStage"`

	Status    Status    `json:"status"`
	StartedAt time.Time `json:"startedAt"`
}

// NewState creates the initial state for one extraction request.
func NewState(cfg Config, baseURL string) *State {
	return &State{
		ID:        uuid.New().String(),
		Config:    cfg,
		BaseURL:   baseURL,
		Errors:    make(map[string][]string),
		Status:    StatusInitialized,
		StartedAt: time.Now(),
	}
}

// RecordError appends a stage-local error message. Stage errors never
// abort the pipeline; callers inspect Errors alongside Status.
func (s *State) RecordError(stage, msg string) {
	if s.Errors == nil {
		s.Errors = make(map[string][]string)
	}
	s.Errors[stage] = append(s.Errors[stage], msg)
}

// TargetURL returns the normalized URL when set, else the base URL.
func (s *State) TargetURL() string {
	if s.NormalizedURL != "" {
		return s.NormalizedURL
	}
	return s.BaseURL
}
