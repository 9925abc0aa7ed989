// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/foldertools/foldername/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - shared hex colors for consistent theming across all CLI output.
const (
	// ColorPrimary is purple - used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for valid names and checkmarks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for invalid names and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for commands, keys and corrected names.
	ColorHighlight = lipgloss.Color("#3B82F6")

	// Darker variants for light terminal backgrounds.
	colorPrimaryLight   = lipgloss.Color("#5B21B6")
	colorSuccessLight   = lipgloss.Color("#047857")
	colorHighlightLight = lipgloss.Color("#1D4ED8")
)

// styles holds the lipgloss styles for one color scheme.
type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Cmd      lipgloss.Style
	Cell     lipgloss.Style
}

// newStyles builds the palette for scheme. ColorSchemeNone yields unstyled text.
func newStyles(scheme config.ColorScheme) styles {
	plain := lipgloss.NewStyle()
	cell := plain.Padding(0, 1)
	if scheme == config.ColorSchemeNone {
		return styles{
			Title:    plain,
			Subtitle: plain,
			Success:  plain,
			Error:    plain,
			Warning:  plain,
			Cmd:      plain,
			Cell:     cell,
		}
	}

	primary, success, highlight := ColorPrimary, ColorSuccess, ColorHighlight
	if scheme == config.ColorSchemeLight {
		primary, success, highlight = colorPrimaryLight, colorSuccessLight, colorHighlightLight
	}

	return styles{
		Title:    plain.Bold(true).Foreground(primary),
		Subtitle: plain.Foreground(ColorMuted),
		Success:  plain.Foreground(success),
		Error:    plain.Bold(true).Foreground(ColorError),
		Warning:  plain.Foreground(ColorWarning),
		Cmd:      plain.Foreground(highlight),
		Cell:     cell,
	}
}
