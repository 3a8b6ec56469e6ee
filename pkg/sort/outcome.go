package sort

import (
	"github.com/arthur-debert/photosort/pkg/errors"
)

// Action is what happened to a file that was sorted without error.
type Action int

const (
	ActionReplicated Action = iota
	ActionSkipped
)

func (a Action) String() string {
	switch a {
	case ActionReplicated:
		return "replicated"
	case ActionSkipped:
		return "skipped"
	}
	return "unknown"
}

// SkipReason tells why a file was skipped.
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipSameFile
	SkipOverwriteDisabled
)

func (r SkipReason) String() string {
	switch r {
	case SkipSameFile:
		return "same file"
	case SkipOverwriteDisabled:
		return "destination exists"
	}
	return ""
}

// Outcome describes a successfully handled file.
type Outcome struct {
	Action      Action
	Source      string
	Destination string
	Overwritten bool
	SkipReason  SkipReason
}

// Stage names the step of the pipeline that failed.
type Stage string

const (
	StageContext   Stage = "context"
	StageRender    Stage = "render"
	StageResolve   Stage = "resolve"
	StageOverwrite Stage = "overwrite"
	StageReplicate Stage = "replicate"
	StageWalk      Stage = "walk"
)

// StageOf returns the stage recorded on a sort error.
func StageOf(err error) (Stage, bool) {
	v, ok := errors.GetDetail(err, "stage")
	if !ok {
		return "", false
	}
	stage, ok := v.(Stage)
	return stage, ok
}

// Result is the per-path report of a batch run. Exactly one of Outcome and
// Err is meaningful.
type Result struct {
	Path    string
	Outcome Outcome
	Err     error
}

// Summary counts results.
type Summary struct {
	Replicated  int
	Overwritten int
	Skipped     int
	Errors      int
}

// Add records r in the summary.
func (s *Summary) Add(r Result) {
	switch {
	case r.Err != nil:
		s.Errors++
	case r.Outcome.Action == ActionSkipped:
		s.Skipped++
	default:
		s.Replicated++
		if r.Outcome.Overwritten {
			s.Overwritten++
		}
	}
}

// Total is the number of results recorded.
func (s Summary) Total() int {
	return s.Replicated + s.Skipped + s.Errors
}

// Failed reports whether any result was an error.
func (s Summary) Failed() bool {
	return s.Errors > 0
}
