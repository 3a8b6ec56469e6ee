package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/photosort/pkg/sort"
	"github.com/arthur-debert/photosort/pkg/style"
	"github.com/arthur-debert/photosort/pkg/watch"
)

// labelWidth fits the longest outcome label.
const labelWidth = len("overwritten")

// Reporter writes results to an output stream.
type Reporter struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// New creates a Reporter writing to w. FormatAuto resolves to
// DetectFormat when w is a file and to FormatText otherwise.
func New(w io.Writer, format Format) *Reporter {
	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	r := lipgloss.NewRenderer(w)
	if format == FormatText {
		r.SetColorProfile(termenv.Ascii)
		r.SetHasDarkBackground(true)
	}
	return &Reporter{w: w, renderer: r}
}

// Result writes the line for one batch result.
func (r *Reporter) Result(res sort.Result) error {
	_, err := fmt.Fprintln(r.w, r.resultLine(res.Path, res.Outcome, res.Err))
	return err
}

// HandlerResult writes the line for a handled watch event. Ignored and
// filtered events produce no output. Failures without a path come from the
// event source and are written as errors.
func (r *Reporter) HandlerResult(res watch.HandlerResult) error {
	switch res.Kind {
	case watch.ResultFailed:
		if res.Path == "" {
			return r.Error(res.Err)
		}
		_, err := fmt.Fprintln(r.w, r.resultLine(res.Path, res.Outcome, res.Err))
		return err
	case watch.ResultSorted:
		_, err := fmt.Fprintln(r.w, r.resultLine(res.Path, res.Outcome, res.Err))
		return err
	}
	return nil
}

// Error writes a failure that is not tied to a sorted file, such as an
// event source error in watch mode.
func (r *Reporter) Error(err error) error {
	_, werr := fmt.Fprintln(r.w, r.label(style.FailedStyle, style.FailedIndicator, "error")+" "+err.Error())
	return werr
}

// Summary writes the outcome counts of a batch run as a table.
func (r *Reporter) Summary(s sort.Summary) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Outcome", "Count"})
	tw.AppendRows([]table.Row{
		{"replicated", strconv.Itoa(s.Replicated)},
		{"overwritten", strconv.Itoa(s.Overwritten)},
		{"skipped", strconv.Itoa(s.Skipped)},
		{"errors", strconv.Itoa(s.Errors)},
	})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"total", strconv.Itoa(s.Total())})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	_, err := fmt.Fprintln(r.w, tw.Render())
	return err
}

func (r *Reporter) resultLine(path string, outcome sort.Outcome, err error) string {
	if err != nil {
		var b strings.Builder
		b.WriteString(r.label(style.FailedStyle, style.FailedIndicator, "failed"))
		b.WriteString(" ")
		b.WriteString(r.path(path))
		if stage, ok := sort.StageOf(err); ok {
			fmt.Fprintf(&b, " [%s]", stage)
		}
		b.WriteString(" ")
		b.WriteString(err.Error())
		return b.String()
	}

	move := r.path(outcome.Source) + " -> " + r.path(outcome.Destination)
	switch {
	case outcome.Action == sort.ActionSkipped:
		line := r.label(style.SkippedStyle, style.SkippedIndicator, "skipped") + " " + move
		if outcome.SkipReason != sort.SkipNone {
			line += " " + style.MutedStyle.Renderer(r.renderer).Render("("+outcome.SkipReason.String()+")")
		}
		return line
	case outcome.Overwritten:
		return r.label(style.OverwrittenStyle, style.OverwrittenIndicator, "overwritten") + " " + move
	default:
		return r.label(style.ReplicatedStyle, style.ReplicatedIndicator, "replicated") + " " + move
	}
}

func (r *Reporter) label(s lipgloss.Style, indicator, name string) string {
	styled := s.Renderer(r.renderer).Render(indicator + " " + name)
	return styled + strings.Repeat(" ", labelWidth-len(name))
}

func (r *Reporter) path(p string) string {
	return style.PathStyle.Renderer(r.renderer).Render(p)
}
