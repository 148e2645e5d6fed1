package terminal

import "github.com/charmbracelet/lipgloss"

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}

	SymlinkColor = lipgloss.AdaptiveColor{
		Light: "#0EA5E9", // Sky blue
		Dark:  "#38BDF8",
	}
)

var (
	LabelStyle   = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	PathStyle    = lipgloss.NewStyle().Foreground(SymlinkColor)
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(SuccessColor)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
)
