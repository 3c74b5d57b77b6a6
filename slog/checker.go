package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagecap/menumap"
)

// Ensure LoggingChecker implements menumap.Checker.
var _ menumap.Checker = (*LoggingChecker)(nil)

// LoggingChecker wraps a Checker with debug logging. Probe volume is
// high, so it logs at debug level unlike the other decorators.
type LoggingChecker struct {
	next   menumap.Checker
	logger *slog.Logger
}

// NewLoggingChecker creates a new LoggingChecker.
func NewLoggingChecker(next menumap.Checker, logger *slog.Logger) *LoggingChecker {
	return &LoggingChecker{next: next, logger: logger}
}

// Check delegates to the wrapped checker and logs the probe.
func (c *LoggingChecker) Check(ctx context.Context, url string) (ok bool, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("check",
			"url", url,
			"reachable", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Check(ctx, url)
}
