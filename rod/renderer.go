// Package rod provides a menumap.Renderer backed by Chrome browser
// automation, so JavaScript-rendered navigation is visible to the
// extraction pipeline.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pagecap/menumap"
)

// DefaultRenderTimeout bounds one page render end to end. Rendering is
// the slow path of the pipeline; everything else uses short timeouts.
const DefaultRenderTimeout = 30 * time.Second

// DefaultIdleWindow is how long the network must stay quiet before a
// page counts as settled.
const DefaultIdleWindow = 300 * time.Millisecond

// DefaultMaxPages is the number of renders before the browser is
// recycled. Chrome accumulates memory over time and the baseline never
// returns to initial levels even with proper page cleanup.
const DefaultMaxPages = 75

// Ensure Renderer implements menumap.Renderer at compile time.
var _ menumap.Renderer = (*Renderer)(nil)

// Renderer retrieves rendered HTML using a headless Chrome browser.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	timeout   time.Duration
	idle      time.Duration
	closed    atomic.Bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRenderTimeout bounds one render. Defaults to DefaultRenderTimeout.
func WithRenderTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// WithIdleWindow sets the network-quiet window that ends the wait.
// Defaults to DefaultIdleWindow.
func WithIdleWindow(d time.Duration) Option {
	return func(r *Renderer) {
		r.idle = d
	}
}

// WithMaxPages sets the render count before browser recycling.
// Defaults to DefaultMaxPages.
func WithMaxPages(n int64) Option {
	return func(r *Renderer) {
		r.maxPages = n
	}
}

// NewRenderer launches a headless Chrome browser. Close must be called
// when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		maxPages: DefaultMaxPages,
		timeout:  DefaultRenderTimeout,
		idle:     DefaultIdleWindow,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.launch(); err != nil {
		return nil, err
	}
	return r, nil
}

// Render navigates to the URL, waits for load plus a network-idle
// window, and returns the rendered HTML.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser := r.acquire()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(r.timeout)

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("waiting for load: %w", err)
	}

	wait := page.WaitRequestIdle(r.idle, nil, nil, nil)
	wait()

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading rendered HTML: %w", err)
	}

	atomic.AddInt64(&r.pageCount, 1)
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (r *Renderer) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// acquire returns the current browser, recycling it once the render
// count reaches maxPages.
func (r *Renderer) acquire() *rod.Browser {
	r.mu.Lock()
	defer r.mu.Unlock()

	if atomic.LoadInt64(&r.pageCount) >= r.maxPages {
		r.recycle()
	}
	return r.browser
}

// launch starts a new browser with stability flags.
func (r *Renderer) launch() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	r.browser = browser
	r.launcher = lnchr
	return nil
}

// recycle swaps in a fresh browser. If the new launch fails, the old
// browser stays in service. Must be called with mu held.
func (r *Renderer) recycle() {
	oldBrowser := r.browser
	oldLauncher := r.launcher
	r.browser = nil
	r.launcher = nil

	if err := r.launch(); err != nil {
		r.browser = oldBrowser
		r.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&r.pageCount, 0)
}
