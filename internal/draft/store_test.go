package draft

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/existflow/ironproject/internal/model"
)

var fixedNow = time.Date(2024, 1, 2, 15, 4, 5, 123_000_000, time.UTC)

func newTestStore() *Store {
	return New(Config{
		Labels: model.DefaultLabels(),
		Clock:  func() time.Time { return fixedNow },
	})
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNew_Defaults(t *testing.T) {
	s := newTestStore()
	d := s.Draft()

	if d.Title != "" || d.Description != "" {
		t.Errorf("expected empty text fields, got %q / %q", d.Title, d.Description)
	}
	if d.Status != model.StatusBacklog {
		t.Errorf("Status = %q, want Backlog", d.Status)
	}
	if d.Priority != model.PriorityNone {
		t.Errorf("Priority = %q, want No Priority", d.Priority)
	}
	if d.StartDate != nil || d.TargetDate != nil {
		t.Error("expected no dates")
	}
	if len(d.SelectedLabelIDs) != 0 {
		t.Errorf("expected empty selection, got %v", d.SelectedLabelIDs)
	}

	ms := s.Milestones()
	if len(ms) != 1 {
		t.Fatalf("expected 1 initial milestone, got %d", len(ms))
	}
	if ms[0].ID != 1 || ms[0].IsExpanded {
		t.Errorf("initial milestone should be id 1 and collapsed, got %+v", ms[0])
	}
	if len(s.Labels()) != 5 {
		t.Errorf("expected 5 catalog labels, got %d", len(s.Labels()))
	}
	if s.SessionID() == "" {
		t.Error("expected a session id")
	}
}

func TestNew_SkipsInvalidSeedLabels(t *testing.T) {
	s := New(Config{Labels: []model.Label{
		{ID: 3, Name: "Ok", ColorTag: "bg-red-500"},
		{ID: 3, Name: "Duplicate"},
		{ID: 0, Name: "Zero"},
		{ID: 4, Name: "  "},
	}})
	labels := s.Labels()
	if len(labels) != 1 || labels[0].Name != "Ok" {
		t.Fatalf("unexpected catalog %+v", labels)
	}

	l, ok := s.AddLabel("Next", "")
	if !ok || l.ID != 4 {
		t.Errorf("expected next id 4, got %+v", l)
	}
}

func TestSetters(t *testing.T) {
	s := newTestStore()

	s.SetTitle("  Roadmap ")
	s.SetDescription("desc")
	s.SetStatus(model.StatusInProgress)
	s.SetPriority(model.PriorityHigh)
	start := date(2024, 1, 1)
	s.SetStartDate(start)
	s.SetTargetDate(date(2024, 6, 30))
	s.ToggleFavorite()

	// Caller-owned times must not leak into the draft.
	*start = start.AddDate(1, 0, 0)

	d := s.Draft()
	if d.Title != "  Roadmap " {
		t.Errorf("Title = %q, setters must not trim", d.Title)
	}
	if d.Status != model.StatusInProgress || d.Priority != model.PriorityHigh {
		t.Errorf("enums = %q/%q", d.Status, d.Priority)
	}
	if !d.StartDate.Equal(*date(2024, 1, 1)) {
		t.Errorf("StartDate = %v", d.StartDate)
	}
	if !d.IsFavorite {
		t.Error("expected favorite")
	}

	s.ToggleFavorite()
	s.SetStartDate(nil)
	if d := s.Draft(); d.IsFavorite || d.StartDate != nil {
		t.Error("expected favorite off and start date cleared")
	}
}

func TestSetStatus_IgnoresUnknown(t *testing.T) {
	s := newTestStore()
	s.SetStatus(model.StatusPlanned)
	s.SetStatus(model.Status("Someday"))
	s.SetPriority(model.Priority("Critical"))

	d := s.Draft()
	if d.Status != model.StatusPlanned {
		t.Errorf("Status = %q", d.Status)
	}
	if d.Priority != model.PriorityNone {
		t.Errorf("Priority = %q", d.Priority)
	}
}

func TestAddLabel(t *testing.T) {
	s := newTestStore()

	l, ok := s.AddLabel("  Research  ", "bg-pink-500")
	if !ok {
		t.Fatal("expected label to be added")
	}
	if l.ID != 6 || l.Name != "Research" || l.ColorTag != "bg-pink-500" {
		t.Errorf("unexpected label %+v", l)
	}
	if s.IsLabelSelected(l.ID) {
		t.Error("new labels must not be auto-selected")
	}

	l2, _ := s.AddLabel("Ops", "")
	if l2.ColorTag != model.DefaultLabelColor {
		t.Errorf("ColorTag = %q, want default", l2.ColorTag)
	}
	if l2.ID <= l.ID {
		t.Errorf("label ids must increase: %d then %d", l.ID, l2.ID)
	}

	got, ok := s.LabelByName("research")
	if !ok || got.ID != l.ID {
		t.Errorf("LabelByName = %+v, %v", got, ok)
	}
}

func TestAddLabel_BlankIsNoop(t *testing.T) {
	s := newTestStore()
	before := s.Labels()

	for _, name := range []string{"", " ", "\t\n"} {
		if _, ok := s.AddLabel(name, "bg-red-500"); ok {
			t.Errorf("AddLabel(%q) should be rejected", name)
		}
	}

	after := s.Labels()
	if len(after) != len(before) {
		t.Fatalf("catalog changed: %d -> %d", len(before), len(after))
	}

	// The rejected calls must not consume ids either.
	l, _ := s.AddLabel("Real", "")
	if l.ID != 6 {
		t.Errorf("expected id 6, got %d", l.ID)
	}
}

func TestToggleLabelSelection(t *testing.T) {
	s := newTestStore()

	s.ToggleLabelSelection(2)
	s.ToggleLabelSelection(1)
	if !s.IsLabelSelected(1) || !s.IsLabelSelected(2) {
		t.Fatal("expected labels 1 and 2 selected")
	}

	sel := s.SelectedLabels()
	if len(sel) != 2 || sel[0].ID != 1 || sel[1].ID != 2 {
		t.Errorf("SelectedLabels should follow catalog order, got %+v", sel)
	}

	s.ToggleLabelSelection(2)
	if s.IsLabelSelected(2) {
		t.Error("expected label 2 deselected")
	}

	s.ToggleLabelSelection(999)
	if len(s.Draft().SelectedLabelIDs) != 1 {
		t.Errorf("unknown id must be ignored, selection = %v", s.Draft().SelectedLabelIDs)
	}
}

func TestAddMilestone(t *testing.T) {
	s := newTestStore()

	m := s.AddMilestone()
	if m.ID != 2 {
		t.Errorf("ID = %d, want 2", m.ID)
	}
	if !m.IsExpanded {
		t.Error("new milestones start expanded")
	}
	if m.Title != "" || m.Description != "" || m.Date != nil {
		t.Errorf("expected empty milestone, got %+v", m)
	}
	if len(s.Milestones()) != 2 {
		t.Errorf("expected 2 milestones")
	}
}

func TestMilestoneIDs_NotReusedAfterRemovingMax(t *testing.T) {
	s := newTestStore()
	s.AddMilestone() // 2
	m3 := s.AddMilestone()

	if !s.RemoveMilestone(m3.ID) {
		t.Fatal("expected removal")
	}
	m := s.AddMilestone()
	if m.ID != 4 {
		t.Errorf("ID = %d, want 4 (3 must not be reused)", m.ID)
	}
}

func TestRemoveMilestone(t *testing.T) {
	s := newTestStore()

	if s.RemoveMilestone(1) {
		t.Error("removing the only milestone must be a no-op")
	}
	if s.CanRemoveMilestone() {
		t.Error("CanRemoveMilestone should be false with one milestone")
	}
	if ms := s.Milestones(); len(ms) != 1 || ms[0].ID != 1 {
		t.Fatalf("milestones changed: %+v", ms)
	}

	s.AddMilestone()
	s.AddMilestone()
	if s.RemoveMilestone(42) {
		t.Error("unknown id must not remove anything")
	}
	if !s.RemoveMilestone(2) {
		t.Fatal("expected milestone 2 removed")
	}

	ms := s.Milestones()
	if len(ms) != 2 || ms[0].ID != 1 || ms[1].ID != 3 {
		t.Errorf("order not preserved: %+v", ms)
	}
}

func TestUpdateMilestoneField(t *testing.T) {
	s := newTestStore()
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		field MilestoneField
		value interface{}
		ok    bool
	}{
		{"title", FieldTitle, "Kickoff", true},
		{"description", FieldDescription, "first", true},
		{"expanded", FieldExpanded, true, true},
		{"date value", FieldDate, due, true},
		{"wrong type", FieldTitle, 42, false},
		{"unknown field", MilestoneField("owner"), "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.UpdateMilestoneField(1, tt.field, tt.value); got != tt.ok {
				t.Errorf("UpdateMilestoneField = %v, want %v", got, tt.ok)
			}
		})
	}

	m, _ := s.Milestone(1)
	if m.Title != "Kickoff" || m.Description != "first" || !m.IsExpanded {
		t.Errorf("unexpected milestone %+v", m)
	}
	if m.Date == nil || !m.Date.Equal(due) {
		t.Errorf("Date = %v", m.Date)
	}

	if !s.UpdateMilestoneField(1, FieldDate, nil) {
		t.Error("nil date should clear")
	}
	if m, _ := s.Milestone(1); m.Date != nil {
		t.Errorf("expected date cleared, got %v", m.Date)
	}

	if s.SetMilestoneTitle(99, "ghost") {
		t.Error("unknown id must be a no-op")
	}
}

func TestUpdateMilestoneField_OnlyTouchesTarget(t *testing.T) {
	s := newTestStore()
	s.AddMilestone()
	s.SetMilestoneTitle(1, "one")
	s.SetMilestoneTitle(2, "two")
	s.SetMilestoneDate(2, date(2024, 5, 5))

	ms := s.Milestones()
	if ms[0].Title != "one" || ms[0].Date != nil {
		t.Errorf("milestone 1 = %+v", ms[0])
	}
	if ms[1].Title != "two" || ms[1].Date == nil {
		t.Errorf("milestone 2 = %+v", ms[1])
	}
}

func TestToggleMilestoneExpanded(t *testing.T) {
	s := newTestStore()
	s.ToggleMilestoneExpanded(1)
	if m, _ := s.Milestone(1); !m.IsExpanded {
		t.Error("expected expanded")
	}
	s.ToggleMilestoneExpanded(1)
	if m, _ := s.Milestone(1); m.IsExpanded {
		t.Error("expected collapsed")
	}
	s.ToggleMilestoneExpanded(7) // ignored
}

func TestMilestoneProgress(t *testing.T) {
	s := newTestStore()
	s.AddMilestone()
	s.AddMilestone()
	s.SetMilestoneTitle(1, "Kickoff")
	s.SetMilestoneTitle(3, "   ")

	titled, total := s.MilestoneProgress()
	if titled != 1 || total != 3 {
		t.Errorf("progress = %d of %d, want 1 of 3", titled, total)
	}
}

func TestSubmit_BlankTitleIsRejectedWithoutMutation(t *testing.T) {
	s := newTestStore()
	s.SetTitle("   ")
	s.SetDescription("keep me")
	s.SetStatus(model.StatusPlanned)
	s.ToggleLabelSelection(3)
	s.AddMilestone()
	s.SetMilestoneTitle(2, "draft")
	session := s.SessionID()

	before := s.Draft()
	beforeMs := s.Milestones()

	_, err := s.Submit()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "title" || verr.Error() != "title required" {
		t.Errorf("unexpected error %+v", verr)
	}

	after := s.Draft()
	if after.Title != before.Title || after.Description != before.Description || after.Status != before.Status {
		t.Errorf("draft changed: %+v -> %+v", before, after)
	}
	if !s.IsLabelSelected(3) {
		t.Error("selection changed")
	}
	if ms := s.Milestones(); len(ms) != len(beforeMs) || ms[1].Title != "draft" {
		t.Errorf("milestones changed: %+v", ms)
	}
	if s.SessionID() != session {
		t.Error("failed submit must not start a new session")
	}
}

func TestSubmit_RoadmapScenario(t *testing.T) {
	s := newTestStore()
	s.SetTitle("Roadmap")
	s.SetMilestoneTitle(1, "Kickoff")
	s.SetMilestoneDate(1, date(2024, 1, 10))
	launch := s.AddMilestone()
	s.SetMilestoneTitle(launch.ID, "Launch")
	s.ToggleLabelSelection(1)
	session := s.SessionID()

	p, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if p.Title != "Roadmap" {
		t.Errorf("Title = %q", p.Title)
	}
	if len(p.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(p.Milestones))
	}
	if p.Milestones[0].Title != "Kickoff" || p.Milestones[0].Date == nil || *p.Milestones[0].Date != "2024-01-10T00:00:00.000Z" {
		t.Errorf("milestone 0 = %+v", p.Milestones[0])
	}
	if p.Milestones[1].Title != "Launch" || p.Milestones[1].Date != nil {
		t.Errorf("milestone 1 = %+v", p.Milestones[1])
	}
	want := model.Label{ID: 1, Name: "Design", ColorTag: "bg-blue-500"}
	if len(p.Labels) != 1 || p.Labels[0] != want {
		t.Errorf("labels = %+v", p.Labels)
	}
	if p.CreatedAt != "2024-01-02T15:04:05.123Z" || p.CreatedAt != p.UpdatedAt {
		t.Errorf("timestamps = %q / %q", p.CreatedAt, p.UpdatedAt)
	}

	ms := s.Milestones()
	if len(ms) != 1 {
		t.Fatalf("expected reset to 1 milestone, got %d", len(ms))
	}
	if ms[0].Title != "" || ms[0].Description != "" || ms[0].Date != nil || ms[0].IsExpanded {
		t.Errorf("expected an empty collapsed milestone, got %+v", ms[0])
	}
	if len(s.Draft().SelectedLabelIDs) != 0 {
		t.Error("expected selection cleared")
	}
	if s.SessionID() == session {
		t.Error("expected a new session after submit")
	}
}

func TestSubmit_TrimsAndResets(t *testing.T) {
	s := newTestStore()
	s.SetTitle("  Site relaunch  ")
	s.SetDescription("\n brief \n")
	s.SetStatus(model.StatusCompleted)
	s.SetPriority(model.PriorityUrgent)
	s.SetStartDate(date(2024, 2, 1))
	s.ToggleFavorite()
	s.AddLabel("Ops", "")

	p, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if p.Title != "Site relaunch" || p.Description != "brief" {
		t.Errorf("text not trimmed: %q / %q", p.Title, p.Description)
	}
	if p.Status != model.StatusCompleted || p.Priority != model.PriorityUrgent || !p.IsFavorite {
		t.Errorf("unexpected attributes %+v", p)
	}
	if p.StartDate == nil || *p.StartDate != "2024-02-01T00:00:00.000Z" {
		t.Errorf("StartDate = %v", p.StartDate)
	}
	if p.TargetDate != nil {
		t.Errorf("TargetDate = %v, want absent", *p.TargetDate)
	}
	if p.Labels == nil || len(p.Labels) != 0 {
		t.Errorf("expected empty, non-nil labels, got %#v", p.Labels)
	}

	d := s.Draft()
	if d.Title != "" || d.Description != "" || d.Status != model.DefaultStatus ||
		d.Priority != model.DefaultPriority || d.StartDate != nil {
		t.Errorf("draft not reset: %+v", d)
	}
	if !d.IsFavorite {
		t.Error("favorite flag should survive submit")
	}
	if _, ok := s.LabelByName("Ops"); !ok {
		t.Error("catalog must survive submit")
	}
	if m := s.AddMilestone(); m.ID != 2 {
		t.Errorf("milestone ids restart with the new session, got %d", m.ID)
	}
}

func TestSubmit_PayloadIsASnapshot(t *testing.T) {
	s := newTestStore()
	s.SetTitle("Snapshot")
	s.ToggleLabelSelection(2)

	p, err := s.Submit()
	if err != nil {
		t.Fatal(err)
	}
	p.Labels[0].Name = "mutated"

	l, _ := s.Label(2)
	if l.Name != "Frontend" {
		t.Errorf("catalog changed through payload: %+v", l)
	}
}

func TestSubmit_JSONShape(t *testing.T) {
	s := newTestStore()
	s.SetTitle("Roadmap")
	s.SetMilestoneExpanded(1, true)

	p, err := s.Submit()
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"title", "description", "status", "priority", "isFavorite", "labels", "milestones", "createdAt", "updatedAt"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	for _, key := range []string{"startDate", "targetDate"} {
		if _, ok := raw[key]; ok {
			t.Errorf("unset %q must be absent", key)
		}
	}

	m := raw["milestones"].([]interface{})[0].(map[string]interface{})
	if _, ok := m["isExpanded"]; ok {
		t.Error("isExpanded must not be submitted")
	}
	if _, ok := m["date"]; ok {
		t.Error("unset milestone date must be absent")
	}
	if raw["status"] != "Backlog" || raw["priority"] != "No Priority" {
		t.Errorf("enums = %v / %v", raw["status"], raw["priority"])
	}
}

func TestReset(t *testing.T) {
	s := newTestStore()
	s.SetTitle("half done")
	s.ToggleLabelSelection(1)
	s.AddMilestone()
	s.AddLabel("Kept", "")

	s.Reset()

	if d := s.Draft(); d.Title != "" || len(d.SelectedLabelIDs) != 0 {
		t.Errorf("draft not reset: %+v", d)
	}
	if len(s.Milestones()) != 1 {
		t.Error("milestones not reset")
	}
	if _, ok := s.LabelByName("Kept"); !ok {
		t.Error("catalog must survive reset")
	}
}

func TestDraft_ReturnsCopy(t *testing.T) {
	s := newTestStore()
	s.ToggleLabelSelection(1)
	s.SetTargetDate(date(2024, 9, 9))

	d := s.Draft()
	delete(d.SelectedLabelIDs, 1)
	*d.TargetDate = time.Time{}

	if !s.IsLabelSelected(1) {
		t.Error("selection changed through snapshot")
	}
	if s.Draft().TargetDate.IsZero() {
		t.Error("target date changed through snapshot")
	}
}

func TestSubmit_KeepsFavoriteResetClearsIt(t *testing.T) {
	s := newTestStore()
	s.SetTitle("X")
	s.ToggleFavorite()

	if _, err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !s.Draft().IsFavorite {
		t.Fatal("isFavorite after submit = false, want true")
	}

	s.SetTitle("Y")
	p, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !p.IsFavorite {
		t.Error("second payload should still be a favorite")
	}

	s.Reset()
	if s.Draft().IsFavorite {
		t.Error("Reset should clear the favorite flag")
	}
}
