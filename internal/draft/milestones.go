package draft

import (
	"time"

	"github.com/existflow/ironproject/internal/logger"
	"github.com/existflow/ironproject/internal/model"
)

// MilestoneField names an editable field of a milestone
type MilestoneField string

const (
	FieldTitle       MilestoneField = "title"
	FieldDate        MilestoneField = "date"
	FieldDescription MilestoneField = "description"
	FieldExpanded    MilestoneField = "isExpanded"
)

func (s *Store) milestoneIndex(id int) int {
	for i := range s.milestones {
		if s.milestones[i].ID == id {
			return i
		}
	}
	return -1
}

// AddMilestone appends an empty, expanded milestone. Its id is greater
// than any id issued in this session, so removed ids are never reused.
func (s *Store) AddMilestone() model.Milestone {
	m := model.NewMilestone(s.nextMilestoneID, true)
	s.nextMilestoneID++
	s.milestones = append(s.milestones, m)
	s.log.Debug("Milestone added", logger.F("id", m.ID), logger.F("count", len(s.milestones)))
	return m
}

// UpdateMilestoneField replaces one field of a milestone. The value must
// have the field's type (string, *time.Time or time.Time or nil, string,
// bool); anything else, or an unknown id, leaves the milestone unchanged.
func (s *Store) UpdateMilestoneField(id int, field MilestoneField, value interface{}) bool {
	i := s.milestoneIndex(id)
	if i < 0 {
		return false
	}
	m := &s.milestones[i]

	switch field {
	case FieldTitle:
		v, ok := value.(string)
		if !ok {
			return false
		}
		m.Title = v
	case FieldDescription:
		v, ok := value.(string)
		if !ok {
			return false
		}
		m.Description = v
	case FieldExpanded:
		v, ok := value.(bool)
		if !ok {
			return false
		}
		m.IsExpanded = v
	case FieldDate:
		switch v := value.(type) {
		case nil:
			m.Date = nil
		case *time.Time:
			m.Date = copyTime(v)
		case time.Time:
			m.Date = &v
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (s *Store) SetMilestoneTitle(id int, title string) bool {
	return s.UpdateMilestoneField(id, FieldTitle, title)
}

func (s *Store) SetMilestoneDescription(id int, description string) bool {
	return s.UpdateMilestoneField(id, FieldDescription, description)
}

// SetMilestoneDate sets or, with nil, clears a milestone's due date
func (s *Store) SetMilestoneDate(id int, date *time.Time) bool {
	return s.UpdateMilestoneField(id, FieldDate, date)
}

func (s *Store) SetMilestoneExpanded(id int, expanded bool) bool {
	return s.UpdateMilestoneField(id, FieldExpanded, expanded)
}

// ToggleMilestoneExpanded flips the expanded state of a milestone
func (s *Store) ToggleMilestoneExpanded(id int) {
	if i := s.milestoneIndex(id); i >= 0 {
		s.milestones[i].IsExpanded = !s.milestones[i].IsExpanded
	}
}

// RemoveMilestone deletes a milestone unless it is the only one left.
// It reports whether anything was removed.
func (s *Store) RemoveMilestone(id int) bool {
	if len(s.milestones) <= 1 {
		return false
	}
	i := s.milestoneIndex(id)
	if i < 0 {
		return false
	}
	s.milestones = append(s.milestones[:i], s.milestones[i+1:]...)
	s.log.Debug("Milestone removed", logger.F("id", id), logger.F("count", len(s.milestones)))
	return true
}

// CanRemoveMilestone reports whether RemoveMilestone would succeed
func (s *Store) CanRemoveMilestone() bool {
	return len(s.milestones) > 1
}

// Milestones returns copies of the milestones in order
func (s *Store) Milestones() []model.Milestone {
	out := make([]model.Milestone, len(s.milestones))
	for i, m := range s.milestones {
		m.Date = copyTime(m.Date)
		out[i] = m
	}
	return out
}

// Milestone looks up a milestone by id
func (s *Store) Milestone(id int) (model.Milestone, bool) {
	i := s.milestoneIndex(id)
	if i < 0 {
		return model.Milestone{}, false
	}
	m := s.milestones[i]
	m.Date = copyTime(m.Date)
	return m, true
}

// MilestoneProgress returns how many milestones have a title, out of all of them
func (s *Store) MilestoneProgress() (titled, total int) {
	for i := range s.milestones {
		if s.milestones[i].HasTitle() {
			titled++
		}
	}
	return titled, len(s.milestones)
}
