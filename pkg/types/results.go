package types

import "time"

// OutcomeStatus is the per-file result of an organize run
type OutcomeStatus string

const (
	StatusMoved   OutcomeStatus = "moved"
	StatusSkipped OutcomeStatus = "skipped"
	StatusFailed  OutcomeStatus = "failed"
)

// Skip reasons
const (
	ReasonUnmatched  = "unmatched"
	ReasonNotRegular = "not a regular file"
	ReasonInPlace    = "already in destination"
)

// OrganizeMode names the classifier used by a run
type OrganizeMode string

const (
	ModeExtension OrganizeMode = "extension"
	ModeKeyword   OrganizeMode = "keyword"
)

// Outcome is the result of processing one file, or one source root that
// could not be walked. It is produced once and handed to a Reporter; it is
// never persisted.
type Outcome struct {
	Status      OutcomeStatus `json:"status"`
	Source      string        `json:"source"`
	Destination string        `json:"destination,omitempty"`
	Reason      string        `json:"reason,omitempty"`
	Err         error         `json:"-"`
	DryRun      bool          `json:"dryRun,omitempty"`
}

// Moved builds a successful outcome
func Moved(from, to string) Outcome {
	return Outcome{Status: StatusMoved, Source: from, Destination: to}
}

// Skipped builds an informational outcome
func Skipped(path, reason string) Outcome {
	return Outcome{Status: StatusSkipped, Source: path, Reason: reason}
}

// Failed builds a failed outcome carrying the underlying error
func Failed(path string, err error) Outcome {
	o := Outcome{Status: StatusFailed, Source: path, Err: err}
	if err != nil {
		o.Reason = err.Error()
	}
	return o
}

// Tally counts outcomes per status
type Tally struct {
	Moved   int `json:"moved"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Total returns the number of outcomes counted
func (t Tally) Total() int {
	return t.Moved + t.Skipped + t.Failed
}

// Summary is the result of one organize run. Interrupted is set when the
// run stopped before visiting every file.
type Summary struct {
	RunID       string       `json:"runId"`
	Mode        OrganizeMode `json:"mode"`
	DryRun      bool         `json:"dryRun"`
	Sources     []string     `json:"sources"`
	StartedAt   time.Time    `json:"startedAt"`
	FinishedAt  time.Time    `json:"finishedAt"`
	Interrupted bool         `json:"interrupted,omitempty"`
	Outcomes    []Outcome    `json:"outcomes"`
}

// Add appends an outcome to the summary
func (s *Summary) Add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
}

// Tally counts the outcomes recorded so far
func (s *Summary) Tally() Tally {
	var t Tally
	for _, o := range s.Outcomes {
		switch o.Status {
		case StatusMoved:
			t.Moved++
		case StatusSkipped:
			t.Skipped++
		case StatusFailed:
			t.Failed++
		}
	}
	return t
}

// Failures returns the failed outcomes in the order they were produced
func (s *Summary) Failures() []Outcome {
	var failed []Outcome
	for _, o := range s.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Duration returns how long the run took
func (s *Summary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
