package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/ironproject/internal/model"
)

// Color palette based on TUI design
var (
	// Priority colors
	PriorityUrgent = lipgloss.Color("#FF6B6B") // Red
	PriorityHigh   = lipgloss.Color("#FFB347") // Orange
	PriorityMedium = lipgloss.Color("#FFE66D") // Yellow
	PriorityLow    = lipgloss.Color("#4ECDC4") // Blue

	// Status colors
	Completed = lipgloss.Color("#95E1A3") // Green
	Canceled  = lipgloss.Color("#6C757D") // Gray
	Danger    = lipgloss.Color("#FF6B6B") // Red

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Secondary = lipgloss.Color("#6C757D")
	Surface   = lipgloss.Color("#16213e")
	Text      = lipgloss.Color("#FFFFFF")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
	Favorite  = lipgloss.Color("#FFD166")
)

// Tailwind 500 shades for label color tags
var labelColors = map[string]lipgloss.Color{
	"bg-red-500":    lipgloss.Color("#EF4444"),
	"bg-blue-500":   lipgloss.Color("#3B82F6"),
	"bg-green-500":  lipgloss.Color("#22C55E"),
	"bg-yellow-500": lipgloss.Color("#EAB308"),
	"bg-purple-500": lipgloss.Color("#A855F7"),
	"bg-pink-500":   lipgloss.Color("#EC4899"),
	"bg-gray-500":   lipgloss.Color("#6B7280"),
}

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	// Toolbar chips
	ChipStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	// Form rows
	RowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	RowSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Width(14)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(TextMuted).
				Italic(true)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(Border)

	DangerStyle = lipgloss.NewStyle().
			Foreground(Danger)

	// Section header
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	// Dialog frame
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// StatusGlyph returns the icon shown next to a status
func StatusGlyph(s model.Status) string {
	switch s {
	case model.StatusPlanned:
		return "○"
	case model.StatusInProgress:
		return "◐"
	case model.StatusCompleted:
		return "●"
	case model.StatusCanceled:
		return "⊗"
	default:
		return "◌"
	}
}

// FormatStatus returns a colored "glyph label" for a status
func FormatStatus(s model.Status) string {
	style := lipgloss.NewStyle()
	switch s {
	case model.StatusInProgress:
		style = style.Foreground(PriorityMedium)
	case model.StatusCompleted:
		style = style.Foreground(Completed)
	case model.StatusCanceled:
		style = style.Foreground(Canceled)
	}
	return style.Render(StatusGlyph(s) + " " + string(s))
}

// PriorityGlyph returns the icon shown next to a priority
func PriorityGlyph(p model.Priority) string {
	switch p {
	case model.PriorityUrgent:
		return "!"
	case model.PriorityLow:
		return "▁"
	case model.PriorityMedium:
		return "▃"
	case model.PriorityHigh:
		return "▇"
	default:
		return "—"
	}
}

// GetPriorityStyle returns the style for a given priority
func GetPriorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityUrgent:
		return lipgloss.NewStyle().Foreground(PriorityUrgent).Bold(true)
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(PriorityHigh).Bold(true)
	case model.PriorityMedium:
		return lipgloss.NewStyle().Foreground(PriorityMedium)
	case model.PriorityLow:
		return lipgloss.NewStyle().Foreground(PriorityLow)
	default:
		return lipgloss.NewStyle().Foreground(TextMuted)
	}
}

// FormatPriority returns a colored "glyph label" for a priority
func FormatPriority(p model.Priority) string {
	return GetPriorityStyle(p).Render(PriorityGlyph(p) + " " + string(p))
}

// LabelBadge renders a label name in its color, filled when selected
func LabelBadge(l model.Label, selected bool) string {
	color, ok := labelColors[l.ColorTag]
	if !ok {
		color = Secondary
	}
	style := lipgloss.NewStyle().Padding(0, 1)
	if selected {
		style = style.Background(color).Foreground(Text).Bold(true)
	} else {
		style = style.Foreground(color)
	}
	return style.Render(l.Name)
}

// ColorSwatch renders a color tag as a small colored block with its name
func ColorSwatch(tag string) string {
	color, ok := labelColors[tag]
	if !ok {
		color = Secondary
	}
	return lipgloss.NewStyle().Foreground(color).Render("■") + " " + model.ColorName(tag)
}
