package model

import (
	"strings"
	"time"
)

// Milestone is one checkpoint of a project draft
type Milestone struct {
	ID          int
	Title       string
	Date        *time.Time
	Description string
	IsExpanded  bool // UI state only, never submitted
}

// NewMilestone creates an empty milestone
func NewMilestone(id int, expanded bool) Milestone {
	return Milestone{
		ID:         id,
		IsExpanded: expanded,
	}
}

// HasTitle reports whether the milestone has a non-blank title
func (m *Milestone) HasTitle() bool {
	return strings.TrimSpace(m.Title) != ""
}

// Payload converts the milestone to its submitted form
func (m *Milestone) Payload() MilestonePayload {
	return MilestonePayload{
		ID:          m.ID,
		Title:       m.Title,
		Date:        FormatOptionalISO(m.Date),
		Description: m.Description,
	}
}

// MilestonePayload is the submitted form of a Milestone
type MilestonePayload struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Date        *string `json:"date,omitempty" yaml:"date,omitempty"`
	Description string  `json:"description" yaml:"description"`
}
