package http

import (
	"context"
	"io"
	"time"
)

// GetFunc is the signature for a single fetch attempt.
type GetFunc func(ctx context.Context, url string) (io.ReadCloser, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s.
// Sitemap fetches stay short so a dead location moves on quickly.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// GetWithRetryDelays attempts a fetch with backoff retries. It makes one
// initial attempt plus one retry per delay. An empty delays slice means a
// single attempt.
func GetWithRetryDelays(ctx context.Context, url string, get GetFunc, delays []time.Duration) (io.ReadCloser, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
