package draft

import (
	"strings"

	"github.com/existflow/ironproject/internal/logger"
	"github.com/existflow/ironproject/internal/model"
)

// Submit validates the draft and turns it into a project payload, then
// resets the draft for the next project, keeping only the favorite flag.
// On a *ValidationError nothing is changed.
func (s *Store) Submit() (model.Project, error) {
	title := strings.TrimSpace(s.draft.Title)
	if title == "" {
		err := errTitleRequired()
		s.log.Debug("Draft rejected", logger.F("field", err.Field), logger.F("reason", err.Message))
		return model.Project{}, err
	}

	milestones := make([]model.MilestonePayload, len(s.milestones))
	for i := range s.milestones {
		milestones[i] = s.milestones[i].Payload()
	}

	now := model.FormatISO(s.now())
	payload := model.Project{
		Title:       title,
		Description: strings.TrimSpace(s.draft.Description),
		Status:      s.draft.Status,
		Priority:    s.draft.Priority,
		StartDate:   model.FormatOptionalISO(s.draft.StartDate),
		TargetDate:  model.FormatOptionalISO(s.draft.TargetDate),
		IsFavorite:  s.draft.IsFavorite,
		Labels:      s.SelectedLabels(),
		Milestones:  milestones,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.log.Info("Project draft submitted",
		logger.F("title", payload.Title),
		logger.F("status", string(payload.Status)),
		logger.F("labels", len(payload.Labels)),
		logger.F("milestones", len(payload.Milestones)))

	// The favorite flag carries over to the next draft
	favorite := s.draft.IsFavorite
	s.reset()
	s.draft.IsFavorite = favorite
	return payload, nil
}
