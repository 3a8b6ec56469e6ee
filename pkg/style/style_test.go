package style

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func renderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(profile)
	r.SetHasDarkBackground(true)
	return r
}

func TestStyles_PlainProfile(t *testing.T) {
	r := renderer(termenv.Ascii)

	styles := map[string]lipgloss.Style{
		"replicated":  ReplicatedStyle,
		"overwritten": OverwrittenStyle,
		"skipped":     SkippedStyle,
		"failed":      FailedStyle,
		"path":        PathStyle,
		"muted":       MutedStyle,
	}
	for name, s := range styles {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, s.Renderer(r).Render(name))
		})
	}
}

func TestStyles_ColorProfile(t *testing.T) {
	r := renderer(termenv.TrueColor)

	out := FailedStyle.Renderer(r).Render("failed")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "\x1b[")
}

func TestOutcomeStylesAreDistinct(t *testing.T) {
	r := renderer(termenv.TrueColor)

	seen := map[string]string{}
	for name, s := range map[string]lipgloss.Style{
		"replicated":  ReplicatedStyle,
		"overwritten": OverwrittenStyle,
		"skipped":     SkippedStyle,
		"failed":      FailedStyle,
	} {
		out := s.Renderer(r).Render("x")
		if other, ok := seen[out]; ok {
			t.Errorf("%s renders like %s", name, other)
		}
		seen[out] = name
	}
}
