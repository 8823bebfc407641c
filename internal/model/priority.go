package model

import "strings"

// Priority levels for projects
type Priority string

const (
	PriorityNone   Priority = "No Priority"
	PriorityUrgent Priority = "Urgent"
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every priority in display order. The first entry is the default.
var Priorities = []Priority{
	PriorityNone,
	PriorityUrgent,
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

// DefaultPriority is the priority of a fresh draft
const DefaultPriority = PriorityNone

// Valid reports whether p is one of Priorities
func (p Priority) Valid() bool {
	return indexOf(Priorities, p) >= 0
}

// Next returns the priority after p, wrapping around
func (p Priority) Next() Priority {
	return Priorities[(indexOf(Priorities, p)+1)%len(Priorities)]
}

// Prev returns the priority before p, wrapping around
func (p Priority) Prev() Priority {
	i := indexOf(Priorities, p)
	if i <= 0 {
		return Priorities[len(Priorities)-1]
	}
	return Priorities[i-1]
}

// ParsePriority matches a priority by its label, case-insensitively.
// "none" is accepted for PriorityNone.
func ParsePriority(s string) (Priority, bool) {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return PriorityNone, true
	}
	return parseEnum(Priorities, s)
}

func indexOf[T ~string](values []T, v T) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}

func parseEnum[T ~string](values []T, s string) (T, bool) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s))
	for _, v := range values {
		if strings.EqualFold(string(v), norm) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
