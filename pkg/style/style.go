// Package style defines the visual styling for snipforge's terminal
// output, using adaptive colors that adjust to light and dark themes.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC",
		Dark:  "#3D9EFF",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#A0A8B0",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745",
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107",
		Dark:  "#FFD54F",
	}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	TriggerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	VariantStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ReplacementStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)
)
