package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	PathColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}

	ReplicatedColor = lipgloss.AdaptiveColor{
		Light: "#10B981", // Emerald
		Dark:  "#34D399",
	}

	OverwrittenColor = lipgloss.AdaptiveColor{
		Light: "#F59E0B", // Orange
		Dark:  "#FBBF24",
	}

	SkippedColor = lipgloss.AdaptiveColor{
		Light: "#0EA5E9", // Sky blue
		Dark:  "#38BDF8",
	}
)

var (
	// ErrorStyle is used for fatal command errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Outcome styles, one per way a file can leave a sort run
var (
	ReplicatedStyle = lipgloss.NewStyle().
			Foreground(ReplicatedColor).
			Bold(true)

	OverwrittenStyle = lipgloss.NewStyle().
				Foreground(OverwrittenColor).
				Bold(true)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(SkippedColor)

	FailedStyle = ErrorStyle
)

// Outcome indicators
const (
	ReplicatedIndicator  = "✓"
	OverwrittenIndicator = "!"
	SkippedIndicator     = "•"
	FailedIndicator      = "✗"
)
