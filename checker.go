package menumap

import "context"

// Checker probes URLs for reachability. Probes are lightweight
// (status-code only) and best-effort.
type Checker interface {
	// Check reports whether the URL currently resolves to a page.
	Check(ctx context.Context, url string) (bool, error)
}
