package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/ironproject/internal/draft"
	"github.com/existflow/ironproject/internal/logger"
	"github.com/existflow/ironproject/internal/model"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeForm Mode = iota
	ModeEditText
	ModeLabels
	ModeNewLabel
	ModeHelp
)

// rowKind identifies one line of the form
type rowKind int

const (
	rowTitle rowKind = iota
	rowDescription
	rowStatus
	rowPriority
	rowStartDate
	rowTargetDate
	rowFavorite
	rowLabels
	rowMilestone
	rowMilestoneTitle
	rowMilestoneDate
	rowMilestoneDescription
	rowMilestoneRemove
	rowAddMilestone
	rowSubmit
)

type row struct {
	kind        rowKind
	milestoneID int // set for milestone rows
}

// Model is the "new project" form
type Model struct {
	store *draft.Store

	// UI state
	width  int
	height int
	mode   Mode
	cursor int

	// Editing
	editing  row
	input    textinput.Model
	textarea textarea.Model

	// Label picker
	labelCursor   int
	newLabelColor string

	// Outcome
	submitted *model.Project
	cancelled bool

	message string
	log     *logger.Logger
}

// NewModel creates a form bound to store
func NewModel(store *draft.Store) Model {
	log := logger.WithFields(logger.F("session", store.SessionID()))
	log.Info("Initializing project form")

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetWidth(50)
	ta.SetHeight(5)

	return Model{
		store:         store,
		input:         ti,
		textarea:      ta,
		newLabelColor: model.DefaultLabelColor,
		log:           log,
	}
}

// Submitted returns the payload of a successfully submitted form
func (m Model) Submitted() (model.Project, bool) {
	if m.submitted == nil {
		return model.Project{}, false
	}
	return *m.submitted, true
}

// Cancelled reports whether the form was closed without submitting
func (m Model) Cancelled() bool {
	return m.cancelled
}

// rows lays out the form for the current draft
func (m Model) rows() []row {
	rows := []row{
		{kind: rowTitle},
		{kind: rowDescription},
		{kind: rowStatus},
		{kind: rowPriority},
		{kind: rowStartDate},
		{kind: rowTargetDate},
		{kind: rowFavorite},
		{kind: rowLabels},
	}
	for _, ms := range m.store.Milestones() {
		rows = append(rows, row{kind: rowMilestone, milestoneID: ms.ID})
		if ms.IsExpanded {
			rows = append(rows,
				row{kind: rowMilestoneTitle, milestoneID: ms.ID},
				row{kind: rowMilestoneDate, milestoneID: ms.ID},
				row{kind: rowMilestoneDescription, milestoneID: ms.ID},
				row{kind: rowMilestoneRemove, milestoneID: ms.ID},
			)
		}
	}
	return append(rows, row{kind: rowAddMilestone}, row{kind: rowSubmit})
}

// current returns the row under the cursor, clamping the cursor first
func (m *Model) current() row {
	rows := m.rows()
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return rows[m.cursor]
}

// moveTo puts the cursor on the first row matching kind and milestone id
func (m *Model) moveTo(kind rowKind, milestoneID int) {
	for i, r := range m.rows() {
		if r.kind == kind && r.milestoneID == milestoneID {
			m.cursor = i
			return
		}
	}
}
