package draft

import (
	"strings"

	"github.com/existflow/ironproject/internal/logger"
	"github.com/existflow/ironproject/internal/model"
)

func (s *Store) appendLabel(l model.Label) {
	s.labelIndex[l.ID] = len(s.labels)
	s.labels = append(s.labels, l)
	if l.ID >= s.nextLabelID {
		s.nextLabelID = l.ID + 1
	}
}

// AddLabel adds a label to the catalog. Blank names are rejected and
// report false. The new label is not selected.
func (s *Store) AddLabel(name, colorTag string) (model.Label, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Label{}, false
	}
	if colorTag == "" {
		colorTag = s.defaultColor
	}

	l := model.Label{ID: s.nextLabelID, Name: name, ColorTag: colorTag}
	s.appendLabel(l)
	s.log.Debug("Label added", logger.F("id", l.ID), logger.F("name", l.Name))
	return l, true
}

// ToggleLabelSelection selects or deselects a label. Unknown ids are ignored.
func (s *Store) ToggleLabelSelection(id int) {
	if _, ok := s.labelIndex[id]; !ok {
		return
	}
	if _, selected := s.draft.SelectedLabelIDs[id]; selected {
		delete(s.draft.SelectedLabelIDs, id)
	} else {
		s.draft.SelectedLabelIDs[id] = struct{}{}
	}
}

// IsLabelSelected reports whether the label is part of the selection
func (s *Store) IsLabelSelected(id int) bool {
	_, ok := s.draft.SelectedLabelIDs[id]
	return ok
}

// Labels returns the catalog in insertion order
func (s *Store) Labels() []model.Label {
	out := make([]model.Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// Label looks up a catalog entry by id
func (s *Store) Label(id int) (model.Label, bool) {
	i, ok := s.labelIndex[id]
	if !ok {
		return model.Label{}, false
	}
	return s.labels[i], true
}

// LabelByName looks up a catalog entry by name, case-insensitively
func (s *Store) LabelByName(name string) (model.Label, bool) {
	name = strings.TrimSpace(name)
	for _, l := range s.labels {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return model.Label{}, false
}

// SelectedLabels returns copies of the selected labels in catalog order
func (s *Store) SelectedLabels() []model.Label {
	out := make([]model.Label, 0, len(s.draft.SelectedLabelIDs))
	for _, l := range s.labels {
		if _, ok := s.draft.SelectedLabelIDs[l.ID]; ok {
			out = append(out, l)
		}
	}
	return out
}
