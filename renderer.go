package menumap

import "context"

// Renderer retrieves fully rendered HTML from URLs.
// Implementations may use browser automation to handle
// JavaScript-rendered navigation.
type Renderer interface {
	// Render navigates to the URL, waits until network activity
	// settles, and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Render(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}
