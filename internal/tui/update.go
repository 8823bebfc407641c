package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/ironproject/internal/draft"
	"github.com/existflow/ironproject/internal/logger"
	"github.com/existflow/ironproject/internal/model"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 30; w > 20 && w < 60 {
			m.input.Width = w
			m.textarea.SetWidth(w)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeEditText:
			return m.handleEditKeys(msg)
		case ModeLabels:
			return m.handleLabelKeys(msg)
		case ModeNewLabel:
			return m.handleNewLabelKeys(msg)
		case ModeHelp:
			m.mode = ModeForm
			return m, nil
		}
		return m.handleFormKeys(msg)
	}

	// Cursor blink and friends
	var cmd tea.Cmd
	switch {
	case m.mode == ModeEditText && usesTextarea(m.editing.kind):
		m.textarea, cmd = m.textarea.Update(msg)
	case m.mode == ModeEditText, m.mode == ModeNewLabel:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// handleFormKeys handles key presses while moving around the form
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, keys.Save):
		return m.submit()

	case key.Matches(msg, keys.Quit), key.Matches(msg, keys.Escape):
		return m.cancel()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Left):
		m.cycle(-1)

	case key.Matches(msg, keys.Right):
		m.cycle(1)

	case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Toggle):
		return m.activate()

	case key.Matches(msg, keys.Favorite):
		m.store.ToggleFavorite()

	case key.Matches(msg, keys.Add):
		m.addMilestone()

	case key.Matches(msg, keys.Remove):
		m.removeMilestone(m.current().milestoneID)

	case key.Matches(msg, keys.Clear):
		m.clearDate()
	}

	return m, nil
}

// activate performs the primary action of the row under the cursor
func (m Model) activate() (tea.Model, tea.Cmd) {
	r := m.current()
	d := m.store.Draft()

	switch r.kind {
	case rowTitle:
		return m.startEdit(r, d.Title)
	case rowDescription:
		return m.startEdit(r, d.Description)
	case rowStatus, rowPriority:
		m.cycle(1)
	case rowStartDate:
		return m.startEdit(r, formatDateInput(d.StartDate))
	case rowTargetDate:
		return m.startEdit(r, formatDateInput(d.TargetDate))
	case rowFavorite:
		m.store.ToggleFavorite()
	case rowLabels:
		m.mode = ModeLabels
		m.labelCursor = 0
	case rowMilestone:
		m.store.ToggleMilestoneExpanded(r.milestoneID)
	case rowMilestoneTitle:
		ms, _ := m.store.Milestone(r.milestoneID)
		return m.startEdit(r, ms.Title)
	case rowMilestoneDate:
		ms, _ := m.store.Milestone(r.milestoneID)
		return m.startEdit(r, formatDateInput(ms.Date))
	case rowMilestoneDescription:
		ms, _ := m.store.Milestone(r.milestoneID)
		return m.startEdit(r, ms.Description)
	case rowMilestoneRemove:
		m.removeMilestone(r.milestoneID)
	case rowAddMilestone:
		m.addMilestone()
	case rowSubmit:
		return m.submit()
	}
	return m, nil
}

// cycle steps the status or priority, or folds a milestone
func (m *Model) cycle(dir int) {
	r := m.current()
	d := m.store.Draft()

	switch r.kind {
	case rowStatus:
		if dir > 0 {
			m.store.SetStatus(d.Status.Next())
		} else {
			m.store.SetStatus(d.Status.Prev())
		}
	case rowPriority:
		if dir > 0 {
			m.store.SetPriority(d.Priority.Next())
		} else {
			m.store.SetPriority(d.Priority.Prev())
		}
	case rowMilestone:
		m.store.SetMilestoneExpanded(r.milestoneID, dir > 0)
	}
}

func (m *Model) addMilestone() {
	ms := m.store.AddMilestone()
	m.moveTo(rowMilestoneTitle, ms.ID)
	m.message = "Milestone added"
}

func (m *Model) removeMilestone(id int) {
	if id == 0 {
		return
	}
	if !m.store.CanRemoveMilestone() {
		m.message = "A project needs at least one milestone"
		return
	}
	if m.store.RemoveMilestone(id) {
		m.message = "Milestone removed"
		m.current()
	}
}

func (m *Model) clearDate() {
	r := m.current()
	switch r.kind {
	case rowStartDate:
		m.store.SetStartDate(nil)
	case rowTargetDate:
		m.store.SetTargetDate(nil)
	case rowMilestoneDate:
		m.store.SetMilestoneDate(r.milestoneID, nil)
	default:
		return
	}
	m.message = "Date cleared"
}

// submit hands the draft to the store. On success the form closes.
func (m Model) submit() (tea.Model, tea.Cmd) {
	project, err := m.store.Submit()
	if err != nil {
		var verr *draft.ValidationError
		if errors.As(err, &verr) && verr.Field == "title" {
			m.moveTo(rowTitle, 0)
		}
		m.message = "Cannot create project: " + err.Error()
		return m, nil
	}

	m.log.Info("Project created", logger.F("title", project.Title))
	m.submitted = &project
	return m, tea.Quit
}

// cancel discards the draft and closes the form
func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.store.Reset()
	m.cancelled = true
	m.log.Info("Project form cancelled")
	return m, tea.Quit
}

func usesTextarea(kind rowKind) bool {
	return kind == rowDescription || kind == rowMilestoneDescription
}

func isDateRow(kind rowKind) bool {
	return kind == rowStartDate || kind == rowTargetDate || kind == rowMilestoneDate
}

// startEdit opens the editor for a text or date row
func (m Model) startEdit(r row, value string) (tea.Model, tea.Cmd) {
	m.editing = r
	m.mode = ModeEditText

	if usesTextarea(r.kind) {
		m.textarea.Reset()
		m.textarea.SetValue(value)
		return m, m.textarea.Focus()
	}

	m.input.Reset()
	m.input.SetValue(value)
	m.input.CursorEnd()
	switch {
	case isDateRow(r.kind):
		m.input.Placeholder = "YYYY-MM-DD"
	case r.kind == rowTitle:
		m.input.Placeholder = "Project name"
	default:
		m.input.Placeholder = "Milestone name"
	}
	return m, m.input.Focus()
}

// handleEditKeys handles key presses while a field is being edited
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	multiline := usesTextarea(m.editing.kind)

	switch {
	case msg.String() == "ctrl+c":
		m.stopEdit()
		return m.cancel()

	case key.Matches(msg, keys.Escape):
		m.stopEdit()
		m.message = "Edit cancelled"
		return m, nil

	case key.Matches(msg, keys.Save), !multiline && key.Matches(msg, keys.Enter):
		m.commitEdit()
		return m, nil
	}

	var cmd tea.Cmd
	if multiline {
		m.textarea, cmd = m.textarea.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// commitEdit writes the edited value to the store. Invalid dates keep
// the editor open.
func (m *Model) commitEdit() {
	r := m.editing
	value := m.input.Value()
	if usesTextarea(r.kind) {
		value = m.textarea.Value()
	}

	if isDateRow(r.kind) {
		date, err := model.ParseDate(value)
		if err != nil {
			m.message = "Invalid date, use YYYY-MM-DD"
			return
		}
		switch r.kind {
		case rowStartDate:
			m.store.SetStartDate(date)
		case rowTargetDate:
			m.store.SetTargetDate(date)
		default:
			m.store.SetMilestoneDate(r.milestoneID, date)
		}
	} else {
		switch r.kind {
		case rowTitle:
			m.store.SetTitle(value)
		case rowDescription:
			m.store.SetDescription(value)
		case rowMilestoneTitle:
			m.store.SetMilestoneTitle(r.milestoneID, value)
		case rowMilestoneDescription:
			m.store.SetMilestoneDescription(r.milestoneID, value)
		}
	}

	m.stopEdit()
	m.message = ""
}

func (m *Model) stopEdit() {
	m.input.Blur()
	m.textarea.Blur()
	m.mode = ModeForm
}

// handleLabelKeys handles the label picker. The row after the last label
// creates a new one.
func (m Model) handleLabelKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	labels := m.store.Labels()
	m.message = ""

	switch {
	case msg.String() == "ctrl+c":
		return m.cancel()

	case key.Matches(msg, keys.Save):
		return m.submit()

	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Quit):
		m.mode = ModeForm

	case key.Matches(msg, keys.Up):
		if m.labelCursor > 0 {
			m.labelCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.labelCursor < len(labels) {
			m.labelCursor++
		}

	case key.Matches(msg, keys.NewLabel):
		return m.startNewLabel()

	case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Toggle):
		if m.labelCursor >= len(labels) {
			return m.startNewLabel()
		}
		m.store.ToggleLabelSelection(labels[m.labelCursor].ID)
	}

	return m, nil
}

func (m Model) startNewLabel() (tea.Model, tea.Cmd) {
	m.mode = ModeNewLabel
	m.newLabelColor = model.DefaultLabelColor
	m.input.Reset()
	m.input.Placeholder = "Label name"
	return m, m.input.Focus()
}

// handleNewLabelKeys handles the new label dialog
func (m Model) handleNewLabelKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.input.Blur()
		return m.cancel()

	case key.Matches(msg, keys.Escape):
		m.input.Blur()
		m.mode = ModeLabels
		return m, nil

	case key.Matches(msg, keys.NextColor):
		m.newLabelColor = model.NextColor(m.newLabelColor)
		return m, nil

	case key.Matches(msg, keys.Enter):
		l, ok := m.store.AddLabel(m.input.Value(), m.newLabelColor)
		if !ok {
			m.message = "Label name is required"
			return m, nil
		}
		m.input.Blur()
		m.mode = ModeLabels
		m.labelCursor = len(m.store.Labels()) - 1
		m.message = fmt.Sprintf("Label %q added", l.Name)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
