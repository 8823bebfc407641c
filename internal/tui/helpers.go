package tui

import (
	"strings"
	"time"

	"github.com/existflow/ironproject/internal/model"
)

// truncate shortens a string to max runes with ellipsis
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max || max < 4 {
		return s
	}
	return string(r[:max-3]) + "..."
}

// firstLine returns s up to its first newline
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

// formatDateInput renders a date the way model.ParseDate reads it
func formatDateInput(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(model.DateLayout)
}

// formatDateChip renders a date for display, e.g. "Jan 2, 2006"
func formatDateChip(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("Jan 2, 2006")
}
