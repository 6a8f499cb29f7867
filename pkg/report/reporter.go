package report

import (
	"sync"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/logging"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/rs/zerolog"
)

// LogReporter writes every outcome to a zerolog logger
type LogReporter struct {
	logger zerolog.Logger
}

// NewLogReporter returns a reporter logging under the "report" component
func NewLogReporter() *LogReporter {
	return &LogReporter{logger: logging.GetLogger("report")}
}

// NewLogReporterWith returns a reporter writing to logger
func NewLogReporterWith(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs moved and skipped outcomes at info level and failures at
// error level
func (r *LogReporter) Report(o types.Outcome) {
	switch o.Status {
	case types.StatusMoved:
		r.logger.Info().
			Str("from", o.Source).
			Str("to", o.Destination).
			Bool("dryRun", o.DryRun).
			Msg("Moved file")
	case types.StatusSkipped:
		r.logger.Info().
			Str("file", o.Source).
			Str("reason", o.Reason).
			Msg("Skipped file")
	case types.StatusFailed:
		r.logger.Error().
			Err(o.Err).
			Str("file", o.Source).
			Str("code", string(errors.GetErrorCode(o.Err))).
			Msg("Failed to organize file")
	}
}

// Collector keeps outcomes in memory
type Collector struct {
	mu       sync.Mutex
	outcomes []types.Outcome
}

// NewCollector returns an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Report records o
func (c *Collector) Report(o types.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes = append(c.outcomes, o)
}

// Outcomes returns a copy of the recorded outcomes
func (c *Collector) Outcomes() []types.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Outcome, len(c.outcomes))
	copy(out, c.outcomes)
	return out
}

// Multi forwards each outcome to every reporter in order
type Multi []types.Reporter

// Report implements types.Reporter
func (m Multi) Report(o types.Outcome) {
	for _, r := range m {
		if r != nil {
			r.Report(o)
		}
	}
}
