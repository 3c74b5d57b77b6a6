package menumap

// Config holds the immutable per-run extraction settings.
type Config struct {
	// MinPages is the desired lower bound on the final page count.
	// It is diagnostic only; results are never padded to reach it.
	MinPages int `json:"minPages"`

	// MaxPages caps the final result and drives intermediate headroom.
	MaxPages int `json:"maxPages"`

	// MaxIterations bounds the extract-verify-retry loop.
	MaxIterations int `json:"maxIterations"`

	// PrioritizeMainSections asks the menu analysis to favor top-level
	// sections over deep links.
	PrioritizeMainSections bool `json:"prioritizeMainSections"`

	// IncludeDynamicPages allows query-string URLs into the result.
	IncludeDynamicPages bool `json:"includeDynamicPages"`

	// DeviceTypes is passed through to the downstream capture scheduler.
	DeviceTypes []string `json:"deviceTypes"`

	// NormalizeURLs enables root URL canonicalization before extraction.
	NormalizeURLs bool `json:"normalizeUrls"`
}

// DefaultConfig returns the extraction settings used when the caller
// does not override them.
func DefaultConfig() Config {
	return Config{
		MinPages:               5,
		MaxPages:               20,
		MaxIterations:          3,
		PrioritizeMainSections: true,
		IncludeDynamicPages:    false,
		DeviceTypes:            []string{"desktop"},
		NormalizeURLs:          true,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c Config) Validate() error {
	if c.MinPages < 0 {
		return Errorf(EINVALID, "min pages must be non-negative")
	}
	if c.MaxPages < c.MinPages {
		return Errorf(EINVALID, "max pages must be >= min pages")
	}
	if c.MaxIterations < 1 {
		return Errorf(EINVALID, "max iterations must be >= 1")
	}
	return nil
}
