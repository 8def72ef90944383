package db

import (
	"context"
	"sync/atomic"
	"time"

	"gorm.io/gorm/logger"
)

// QueryCounter is a gorm logger that counts executed statements on its way
// through to the wrapped logger. Trace fires once per SQL statement,
// preloaded association queries and batch iterations included, which makes
// it the honest place to verify the guide's round-trip claims: an N+1 loop
// really costs N+1 statements, a preload really costs two.
type QueryCounter struct {
	inner   logger.Interface
	queries *atomic.Int64
}

// NewQueryCounter wraps inner with statement counting.
func NewQueryCounter(inner logger.Interface) *QueryCounter {
	return &QueryCounter{inner: inner, queries: &atomic.Int64{}}
}

// LogMode implements logger.Interface. The derived logger shares the count.
func (c *QueryCounter) LogMode(level logger.LogLevel) logger.Interface {
	return &QueryCounter{inner: c.inner.LogMode(level), queries: c.queries}
}

// Info implements logger.Interface.
func (c *QueryCounter) Info(ctx context.Context, format string, args ...any) {
	c.inner.Info(ctx, format, args...)
}

// Warn implements logger.Interface.
func (c *QueryCounter) Warn(ctx context.Context, format string, args ...any) {
	c.inner.Warn(ctx, format, args...)
}

// Error implements logger.Interface.
func (c *QueryCounter) Error(ctx context.Context, format string, args ...any) {
	c.inner.Error(ctx, format, args...)
}

// Trace implements logger.Interface, counting one statement per call.
func (c *QueryCounter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	c.queries.Add(1)
	c.inner.Trace(ctx, begin, fc, err)
}

// Queries returns the number of statements executed since the last Reset.
func (c *QueryCounter) Queries() int64 {
	return c.queries.Load()
}

// Reset zeroes the counter.
func (c *QueryCounter) Reset() {
	c.queries.Store(0)
}
