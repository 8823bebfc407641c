// Package draft holds the state of a project being composed in the
// "new project" form: core attributes, the label catalog and selection,
// and the milestone list. Submit turns the draft into a model.Project and
// starts a fresh draft.
//
// A Store is owned by a single editing session and is not safe for
// concurrent use.
package draft

import (
	"strings"
	"time"

	"github.com/existflow/ironproject/internal/logger"
	"github.com/existflow/ironproject/internal/model"
	"github.com/google/uuid"
)

// Draft holds the core attributes of the project being composed
type Draft struct {
	Title            string
	Description      string
	Status           model.Status
	Priority         model.Priority
	StartDate        *time.Time
	TargetDate       *time.Time
	IsFavorite       bool
	SelectedLabelIDs map[int]struct{}
}

// Config configures a new Store
type Config struct {
	Labels            []model.Label    // Initial label catalog
	DefaultLabelColor string           // Color for labels added without one
	Clock             func() time.Time // Source of createdAt/updatedAt, defaults to time.Now
	Logger            *logger.Logger   // Defaults to the global logger
}

// Store is the single source of truth for a project draft
type Store struct {
	draft      Draft
	milestones []model.Milestone

	labels     []model.Label // catalog, insertion order
	labelIndex map[int]int   // label id -> position in labels

	nextLabelID     int
	nextMilestoneID int

	defaultColor string
	now          func() time.Time

	sessionID string
	baseLog   *logger.Logger
	log       *logger.Logger
}

// New creates a store with an empty draft and the configured label catalog.
// Seed labels with a non-positive or duplicate id, or a blank name, are skipped.
func New(cfg Config) *Store {
	s := &Store{
		labelIndex:   make(map[int]int),
		nextLabelID:  1,
		defaultColor: cfg.DefaultLabelColor,
		now:          cfg.Clock,
		baseLog:      cfg.Logger,
	}
	if s.defaultColor == "" {
		s.defaultColor = model.DefaultLabelColor
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.baseLog == nil {
		s.baseLog = logger.WithFields()
	}

	for _, l := range cfg.Labels {
		if _, dup := s.labelIndex[l.ID]; dup || l.ID <= 0 || strings.TrimSpace(l.Name) == "" {
			continue
		}
		s.appendLabel(l)
	}

	s.reset()
	s.log.Debug("Draft store created", logger.F("labels", len(s.labels)))
	return s
}

// reset puts the draft back to its initial state and starts a new session.
// The label catalog is kept.
func (s *Store) reset() {
	s.draft = Draft{
		Status:           model.DefaultStatus,
		Priority:         model.DefaultPriority,
		SelectedLabelIDs: make(map[int]struct{}),
	}
	s.milestones = []model.Milestone{model.NewMilestone(1, false)}
	s.nextMilestoneID = 2

	s.sessionID = uuid.NewString()
	s.log = s.baseLog.WithFields(logger.F("session", s.sessionID))
}

// Reset discards the draft without submitting it (the form was closed)
func (s *Store) Reset() {
	s.log.Debug("Draft discarded")
	s.reset()
}

// SessionID identifies the current editing session
func (s *Store) SessionID() string {
	return s.sessionID
}

// Core attributes

func (s *Store) SetTitle(title string) {
	s.draft.Title = title
}

func (s *Store) SetDescription(description string) {
	s.draft.Description = description
}

// SetStatus ignores values that are not a known status
func (s *Store) SetStatus(status model.Status) {
	if status.Valid() {
		s.draft.Status = status
	}
}

// SetPriority ignores values that are not a known priority
func (s *Store) SetPriority(priority model.Priority) {
	if priority.Valid() {
		s.draft.Priority = priority
	}
}

// SetStartDate sets or, with nil, clears the start date
func (s *Store) SetStartDate(date *time.Time) {
	s.draft.StartDate = copyTime(date)
}

// SetTargetDate sets or, with nil, clears the target date
func (s *Store) SetTargetDate(date *time.Time) {
	s.draft.TargetDate = copyTime(date)
}

func (s *Store) ToggleFavorite() {
	s.draft.IsFavorite = !s.draft.IsFavorite
}

// Draft returns a copy of the core attributes
func (s *Store) Draft() Draft {
	d := s.draft
	d.StartDate = copyTime(d.StartDate)
	d.TargetDate = copyTime(d.TargetDate)
	d.SelectedLabelIDs = make(map[int]struct{}, len(s.draft.SelectedLabelIDs))
	for id := range s.draft.SelectedLabelIDs {
		d.SelectedLabelIDs[id] = struct{}{}
	}
	return d
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
