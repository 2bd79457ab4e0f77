// Package metrics provides build performance tracking.
package metrics

import (
	"fmt"
	"log/slog"
	"time"
)

// BuildMetrics tracks counters and phase durations of one build.
type BuildMetrics struct {
	// Timing
	StartTime    time.Time
	EndTime      time.Time
	ScanTime     time.Duration
	RenderTime   time.Duration
	ResourceTime time.Duration
	FeedTime     time.Duration

	// Counters
	PostsProcessed   int
	PagesProcessed   int
	CategoryPages    int
	FilesWritten     int
	FilesRemoved     int
	FilesCompressed  int
	ResourcesCopied  int
	ResourcesSkipped int
}

// NewBuildMetrics creates a new metrics instance.
func NewBuildMetrics() *BuildMetrics {
	return &BuildMetrics{
		StartTime: time.Now(),
	}
}

// RecordEnd marks the end of the build.
func (m *BuildMetrics) RecordEnd() {
	m.EndTime = time.Now()
}

// TotalDuration returns the total build duration.
func (m *BuildMetrics) TotalDuration() time.Duration {
	if m.EndTime.IsZero() {
		return time.Since(m.StartTime)
	}
	return m.EndTime.Sub(m.StartTime)
}

// Phase runs fn and adds its duration to *d.
func Phase(d *time.Duration, fn func() error) error {
	start := time.Now()
	err := fn()
	*d += time.Since(start)
	return err
}

// String returns a single-line summary.
func (m *BuildMetrics) String() string {
	return fmt.Sprintf("Built %d posts and %d pages in %v (%d files written, %d resources copied, %d skipped)",
		m.PostsProcessed,
		m.PagesProcessed,
		m.TotalDuration().Round(time.Millisecond),
		m.FilesWritten,
		m.ResourcesCopied,
		m.ResourcesSkipped,
	)
}

// Log writes the summary and phase timings at info level.
func (m *BuildMetrics) Log(logger *slog.Logger) {
	logger.Info(m.String(),
		"scan", m.ScanTime.Round(time.Microsecond),
		"render", m.RenderTime.Round(time.Microsecond),
		"resources", m.ResourceTime.Round(time.Microsecond),
		"feeds", m.FeedTime.Round(time.Microsecond),
	)
}
