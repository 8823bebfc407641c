package model

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a project
type Status string

const (
	StatusBacklog    Status = "Backlog"
	StatusPlanned    Status = "Planned"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCanceled   Status = "Canceled"
)

// Statuses lists every status in display order. The first entry is the default.
var Statuses = []Status{
	StatusBacklog,
	StatusPlanned,
	StatusInProgress,
	StatusCompleted,
	StatusCanceled,
}

// DefaultStatus is the status of a fresh draft
const DefaultStatus = StatusBacklog

// Valid reports whether s is one of Statuses
func (s Status) Valid() bool {
	return indexOf(Statuses, s) >= 0
}

// Next returns the status after s, wrapping around
func (s Status) Next() Status {
	return Statuses[(indexOf(Statuses, s)+1)%len(Statuses)]
}

// Prev returns the status before s, wrapping around
func (s Status) Prev() Status {
	i := indexOf(Statuses, s)
	if i <= 0 {
		return Statuses[len(Statuses)-1]
	}
	return Statuses[i-1]
}

// ParseStatus matches a status by its label, case-insensitively.
// Dashes and underscores are accepted in place of spaces ("in-progress").
func ParseStatus(s string) (Status, bool) {
	return parseEnum(Statuses, s)
}

// Project is the payload emitted when a project draft is submitted.
// Dates are ISO-8601 strings in UTC with millisecond precision.
type Project struct {
	Title       string             `json:"title" yaml:"title"`
	Description string             `json:"description" yaml:"description"`
	Status      Status             `json:"status" yaml:"status"`
	Priority    Priority           `json:"priority" yaml:"priority"`
	StartDate   *string            `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	TargetDate  *string            `json:"targetDate,omitempty" yaml:"targetDate,omitempty"`
	IsFavorite  bool               `json:"isFavorite" yaml:"isFavorite"`
	Labels      []Label            `json:"labels" yaml:"labels"`
	Milestones  []MilestonePayload `json:"milestones" yaml:"milestones"`
	CreatedAt   string             `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   string             `json:"updatedAt" yaml:"updatedAt"`
}

// ISOLayout is the timestamp layout used in payloads (UTC, milliseconds)
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatISO renders t in ISOLayout
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// FormatOptionalISO renders t in ISOLayout, or returns nil when t is nil
func FormatOptionalISO(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatISO(*t)
	return &s
}

// DateLayout is the calendar date format accepted on input
const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD date as midnight UTC. Blank input means no date.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
