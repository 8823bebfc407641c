package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var modal string
	switch m.mode {
	case ModeHelp:
		modal = m.renderHelp()
	case ModeLabels, ModeNewLabel:
		modal = m.renderLabelPicker()
	default:
		modal = m.renderForm()
	}

	mainContent := lipgloss.Place(
		m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
	)

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderStatusBar())
}

// renderChips renders the summary toolbar above the form
func (m Model) renderChips() string {
	d := m.store.Draft()

	start := "Start"
	if d.StartDate != nil {
		start = "Start " + formatDateChip(d.StartDate)
	}
	target := "Target"
	if d.TargetDate != nil {
		target = "Target " + formatDateChip(d.TargetDate)
	}
	labels := "Labels"
	if n := len(d.SelectedLabelIDs); n == 1 {
		labels = "1 label"
	} else if n > 1 {
		labels = fmt.Sprintf("%d labels", n)
	}
	star := "☆"
	if d.IsFavorite {
		star = lipgloss.NewStyle().Foreground(Favorite).Render("★")
	}

	chips := []string{
		ChipStyle.Render(FormatStatus(d.Status)),
		ChipStyle.Render(FormatPriority(d.Priority)),
		ChipStyle.Render(start),
		ChipStyle.Render(target),
		ChipStyle.Render(labels),
		ChipStyle.Render(star),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// renderForm renders the project form
func (m Model) renderForm() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("New project"))
	b.WriteString("\n\n")
	b.WriteString(m.renderChips())
	b.WriteString("\n")

	rows := m.rows()
	cursor := m.cursor
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}

	for i, r := range rows {
		if r.kind == rowMilestone && (i == 0 || rows[i-1].kind == rowLabels) {
			titled, total := m.store.MilestoneProgress()
			b.WriteString(SectionStyle.Render(fmt.Sprintf("Milestones  %d of %d", titled, total)))
			b.WriteString("\n")
		}
		if r.kind == rowAddMilestone || r.kind == rowSubmit {
			b.WriteString("\n")
		}

		line := m.renderRow(r)
		if i == cursor {
			b.WriteString(RowSelectedStyle.Render("❯ " + line))
		} else {
			b.WriteString(RowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return ModalStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderRow renders one form row, showing the editor for the row being edited
func (m Model) renderRow(r row) string {
	if m.mode == ModeEditText && m.editing == r {
		label := FieldLabelStyle.Render(fieldName(r.kind))
		if usesTextarea(r.kind) {
			return label + "\n" + m.textarea.View()
		}
		return label + m.input.View()
	}

	d := m.store.Draft()
	field := func(value, placeholder string) string {
		if value == "" {
			value = PlaceholderStyle.Render(placeholder)
		}
		return FieldLabelStyle.Render(fieldName(r.kind)) + value
	}

	switch r.kind {
	case rowTitle:
		return field(truncate(d.Title, 50), "Project name")
	case rowDescription:
		return field(truncate(firstLine(d.Description), 50), "Add a short summary...")
	case rowStatus:
		return field(FormatStatus(d.Status), "")
	case rowPriority:
		return field(FormatPriority(d.Priority), "")
	case rowStartDate:
		return field(formatDateChip(d.StartDate), "No start date")
	case rowTargetDate:
		return field(formatDateChip(d.TargetDate), "No target date")
	case rowFavorite:
		if d.IsFavorite {
			return field(lipgloss.NewStyle().Foreground(Favorite).Render("★ Yes"), "")
		}
		return field("☆ No", "")
	case rowLabels:
		var badges []string
		for _, l := range m.store.SelectedLabels() {
			badges = append(badges, LabelBadge(l, true))
		}
		return field(strings.Join(badges, " "), "None")
	}

	ms, _ := m.store.Milestone(r.milestoneID)
	switch r.kind {
	case rowMilestone:
		arrow := "▸"
		if ms.IsExpanded {
			arrow = "▾"
		}
		title := truncate(ms.Title, 40)
		if !ms.HasTitle() {
			title = PlaceholderStyle.Render("Untitled milestone")
		}
		if ms.Date != nil {
			title += HelpStyle.Render("  " + formatDateChip(ms.Date))
		}
		return arrow + " " + title
	case rowMilestoneTitle:
		return "  " + field(truncate(ms.Title, 40), "Milestone name")
	case rowMilestoneDate:
		return "  " + field(formatDateChip(ms.Date), "No due date")
	case rowMilestoneDescription:
		return "  " + field(truncate(firstLine(ms.Description), 40), "Add a description...")
	case rowMilestoneRemove:
		if !m.store.CanRemoveMilestone() {
			return "  " + DisabledStyle.Render("✕ Remove milestone")
		}
		return "  " + DangerStyle.Render("✕ Remove milestone")
	case rowAddMilestone:
		return "+ Add milestone"
	case rowSubmit:
		return HeaderStyle.Render("Create project")
	}
	return ""
}

func fieldName(kind rowKind) string {
	switch kind {
	case rowTitle, rowMilestoneTitle:
		return "Title"
	case rowDescription, rowMilestoneDescription:
		return "Description"
	case rowStatus:
		return "Status"
	case rowPriority:
		return "Priority"
	case rowStartDate:
		return "Start date"
	case rowTargetDate:
		return "Target date"
	case rowMilestoneDate:
		return "Due date"
	case rowFavorite:
		return "Favorite"
	case rowLabels:
		return "Labels"
	}
	return ""
}

// renderLabelPicker renders the label list and the new label dialog
func (m Model) renderLabelPicker() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Labels"))
	b.WriteString("\n\n")

	labels := m.store.Labels()
	for i, l := range labels {
		check := "[ ]"
		if m.store.IsLabelSelected(l.ID) {
			check = "[x]"
		}
		line := check + " " + LabelBadge(l, m.store.IsLabelSelected(l.ID))
		if i == m.labelCursor && m.mode == ModeLabels {
			b.WriteString(RowSelectedStyle.Render("❯ " + line))
		} else {
			b.WriteString(RowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.mode == ModeNewLabel {
		b.WriteString("\n")
		b.WriteString(FieldLabelStyle.Render("Name") + m.input.View())
		b.WriteString("\n")
		b.WriteString(FieldLabelStyle.Render("Color") + ColorSwatch(m.newLabelColor))
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("enter: create • tab: next color • esc: back"))
	} else {
		line := "+ New label"
		if m.labelCursor >= len(labels) {
			b.WriteString(RowSelectedStyle.Render("❯ " + line))
		} else {
			b.WriteString(RowStyle.Render("  " + line))
		}
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("space: toggle • n: new label • esc: back"))
	}

	return ModalStyle.Render(b.String())
}

// renderHelp renders the key binding overview
func (m Model) renderHelp() string {
	bindings := []struct {
		keys, desc string
	}{
		{"↑/k ↓/j", "Move between fields"},
		{"enter/space", "Edit or toggle field"},
		{"←/h →/l", "Change status/priority, fold milestone"},
		{"f", "Toggle favorite"},
		{"a", "Add milestone"},
		{"d", "Remove milestone"},
		{"⌫", "Clear date"},
		{"ctrl+s", "Create project"},
		{"esc/q", "Cancel"},
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")
	for _, kb := range bindings {
		b.WriteString(FieldLabelStyle.Render(kb.keys))
		b.WriteString(kb.desc)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Press any key to close"))

	return ModalStyle.Render(b.String())
}

// renderStatusBar renders the message line at the bottom
func (m Model) renderStatusBar() string {
	text := m.message
	if text == "" {
		switch m.mode {
		case ModeEditText:
			if usesTextarea(m.editing.kind) {
				text = "ctrl+s: save • esc: cancel"
			} else {
				text = "enter: save • esc: cancel"
			}
		default:
			text = "enter: edit • ctrl+s: create • ?: help • esc: cancel"
		}
	}
	return StatusBarStyle.Width(m.width).Render(text)
}

