package watch

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// EventOp is the kind of filesystem change an Event reports.
type EventOp int

const (
	OpCreate EventOp = iota
	OpWriteClose
	OpRemove
	OpRename
	OpMetadata
	OpDirCreate
)

func (op EventOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWriteClose:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	case OpMetadata:
		return "metadata"
	case OpDirCreate:
		return "dir-create"
	}
	return "unknown"
}

// Event is a filesystem change below a watched source.
type Event struct {
	Op    EventOp
	Paths []string
}

func (e Event) String() string {
	return e.Op.String() + " " + strings.Join(e.Paths, ", ")
}

// FilterReason tells why an event was filtered out.
type FilterReason int

const (
	FilterNone FilterReason = iota
	FilterMissingEventPath
	FilterMatchIgnoreRegex
)

func (r FilterReason) String() string {
	switch r {
	case FilterMissingEventPath:
		return "missing event path"
	case FilterMatchIgnoreRegex:
		return "matched ignore pattern"
	}
	return ""
}

// Filter drops events that must not be sorted.
type Filter struct {
	// Ignore is matched against the first path of an event. Nil disables it.
	Ignore *regexp.Regexp
}

// Check returns the reason ev is filtered out, or FilterNone. Paths that
// are not valid UTF-8 are never matched against the ignore pattern.
func (f Filter) Check(ev Event) FilterReason {
	if len(ev.Paths) == 0 {
		return FilterMissingEventPath
	}
	path := ev.Paths[0]
	if f.Ignore == nil || !utf8.ValidString(path) {
		return FilterNone
	}
	if f.Ignore.MatchString(path) {
		return FilterMatchIgnoreRegex
	}
	return FilterNone
}
