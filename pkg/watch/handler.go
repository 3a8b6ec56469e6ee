package watch

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/photosort/pkg/logging"
	"github.com/arthur-debert/photosort/pkg/sort"
)

// FileSorter sorts one file. *sort.Sorter implements it.
type FileSorter interface {
	SortFile(path string) (sort.Outcome, error)
}

// ResultKind classifies what a Handler did with an event.
type ResultKind int

const (
	ResultIgnored ResultKind = iota
	ResultFiltered
	ResultSorted
	ResultFailed
)

// HandlerResult reports the handling of one event.
//
// For ResultSorted, Path, Outcome and Err hold the sort result. For
// ResultFailed, Err holds an EVENT_RETRIEVE error and no event was handled.
type HandlerResult struct {
	Kind    ResultKind
	Event   Event
	Reason  FilterReason
	Path    string
	Outcome sort.Outcome
	Err     error
}

// Handler sorts the files that create and write events point at.
type Handler struct {
	sorter FileSorter
	filter Filter
	logger zerolog.Logger
}

// NewHandler returns a Handler that sorts through sorter.
func NewHandler(sorter FileSorter, filter Filter) *Handler {
	return &Handler{
		sorter: sorter,
		filter: filter,
		logger: logging.GetLogger("watch"),
	}
}

// Handle processes a single event, sorting at most one file.
func (h *Handler) Handle(ev Event) HandlerResult {
	if ev.Op != OpCreate && ev.Op != OpWriteClose {
		h.logger.Trace().Stringer("event", ev).Msg("Ignoring event")
		return HandlerResult{Kind: ResultIgnored, Event: ev}
	}

	if reason := h.filter.Check(ev); reason != FilterNone {
		h.logger.Debug().Stringer("event", ev).Stringer("reason", reason).Msg("Filtered event")
		return HandlerResult{Kind: ResultFiltered, Event: ev, Reason: reason}
	}

	path := ev.Paths[0]
	h.logger.Debug().Stringer("event", ev).Msg("Handling event")
	outcome, err := h.sorter.SortFile(path)
	return HandlerResult{
		Kind:    ResultSorted,
		Event:   ev,
		Path:    path,
		Outcome: outcome,
		Err:     err,
	}
}
