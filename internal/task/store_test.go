package task

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/model"
)

// fakeSurface answers confirmations with a canned reply.
type fakeSurface struct {
	answer   string // "yes", "no", or "" to leave the prompt open
	renders  []model.List
	confirms []Prompt
	warnings []Prompt

	yes, no func()
}

func (f *fakeSurface) RenderSnapshot(l model.List) { f.renders = append(f.renders, l) }

func (f *fakeSurface) PromptConfirm(p Prompt, onYes, onNo func()) {
	f.confirms = append(f.confirms, p)
	f.yes, f.no = onYes, onNo
	switch f.answer {
	case "yes":
		onYes()
	case "no":
		onNo()
	}
}

func (f *fakeSurface) PromptWarning(p Prompt) { f.warnings = append(f.warnings, p) }

func titles(l model.List) []string {
	out := make([]string, 0, len(l))
	for _, t := range l {
		out = append(out, t.Title)
	}
	return out
}

func TestAddTaskDistinctTitlesKeepOrder(t *testing.T) {
	s := NewStore()
	want := []string{"Buy milk", "Walk dog", "buy milk", "Call mom"}
	for _, title := range want {
		if _, ok := s.AddTask(title); !ok {
			t.Fatalf("AddTask(%q) rejected", title)
		}
	}

	got := s.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("len: got %d, want %d", len(got), len(want))
	}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("order: got %v, want %v", titles(got), want)
	}
	seen := map[model.ID]bool{}
	for _, task := range got {
		if seen[task.ID] {
			t.Errorf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
		if task.Done {
			t.Errorf("task %q created done", task.Title)
		}
	}
}

func TestAddTaskDuplicateWarnsOnce(t *testing.T) {
	surf := &fakeSurface{}
	s := NewStore(WithSurface(surf))

	s.AddTask("Buy milk")
	if _, ok := s.AddTask("Buy milk"); ok {
		t.Fatal("duplicate title accepted")
	}

	if s.Len() != 1 {
		t.Errorf("len: got %d, want 1", s.Len())
	}
	if len(surf.warnings) != 1 {
		t.Fatalf("warnings: got %d, want 1", len(surf.warnings))
	}
	if surf.warnings[0] != DuplicateTitleWarning {
		t.Errorf("warning: got %+v", surf.warnings[0])
	}
	if len(surf.renders) != 1 {
		t.Errorf("renders: got %d, want 1", len(surf.renders))
	}
}

func TestAddTaskEmptyTitleIgnored(t *testing.T) {
	surf := &fakeSurface{}
	s := NewStore(WithSurface(surf))
	if _, ok := s.AddTask(""); ok {
		t.Fatal("empty title accepted")
	}
	if s.Len() != 0 || len(surf.warnings) != 0 || len(surf.renders) != 0 {
		t.Errorf("unexpected effects: len=%d warnings=%d renders=%d", s.Len(), len(surf.warnings), len(surf.renders))
	}
}

func TestAddTaskSkipsCollidingIDs(t *testing.T) {
	ids := []model.ID{7, 7, 8}
	s := NewStore(WithSequence(func() model.ID {
		id := ids[0]
		ids = ids[1:]
		return id
	}))
	a, _ := s.AddTask("a")
	b, _ := s.AddTask("b")
	if a.ID != 7 || b.ID != 8 {
		t.Errorf("ids: got %d, %d, want 7, 8", a.ID, b.ID)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	s := NewStore()
	task, _ := s.AddTask("Buy milk")

	if !s.ToggleTaskDone(task.ID) {
		t.Fatal("toggle reported no change")
	}
	if got, _ := s.Snapshot().Find(task.ID); !got.Done {
		t.Fatal("first toggle did not set done")
	}
	s.ToggleTaskDone(task.ID)
	if got, _ := s.Snapshot().Find(task.ID); got.Done {
		t.Error("second toggle did not restore done=false")
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	surf := &fakeSurface{}
	s := NewStore(WithSurface(surf))
	s.AddTask("a")
	s.AddTask("b")
	before := s.Snapshot().Clone()
	renders := len(surf.renders)

	if s.ToggleTaskDone(999) {
		t.Error("toggle of unknown id reported a change")
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Errorf("list changed: got %+v, want %+v", s.Snapshot(), before)
	}
	if len(surf.renders) != renders {
		t.Error("unknown id triggered a render")
	}
}

func TestSnapshotsAreNotMutated(t *testing.T) {
	s := NewStore()
	task, _ := s.AddTask("Buy milk")
	old := s.Snapshot()

	s.ToggleTaskDone(task.ID)
	s.EditTask(task.ID, "Buy oat milk")
	s.AddTask("Walk dog")

	if len(old) != 1 || old[0].Done || old[0].Title != "Buy milk" {
		t.Errorf("earlier snapshot changed: %+v", old)
	}
}

func TestRemoveTask(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		wantLen int
	}{
		{name: "confirmed", answer: "yes", wantLen: 2},
		{name: "declined", answer: "no", wantLen: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surf := &fakeSurface{answer: tt.answer}
			s := NewStore(WithSurface(surf))
			s.AddTask("a")
			mid, _ := s.AddTask("b")
			s.AddTask("c")

			s.RemoveTask(mid.ID)

			if len(surf.confirms) != 1 || surf.confirms[0] != RemoveConfirmation {
				t.Fatalf("confirms: %+v", surf.confirms)
			}
			if s.Len() != tt.wantLen {
				t.Errorf("len: got %d, want %d", s.Len(), tt.wantLen)
			}
			_, found := s.Snapshot().Find(mid.ID)
			if found != (tt.answer != "yes") {
				t.Errorf("task present=%v after answer %q", found, tt.answer)
			}
			if s.Pending() {
				t.Error("prompt still pending after answer")
			}
		})
	}
}

func TestRemoveUnknownIDConfirmedIsNoop(t *testing.T) {
	surf := &fakeSurface{answer: "yes"}
	s := NewStore(WithSurface(surf))
	s.AddTask("a")
	renders := len(surf.renders)

	s.RemoveTask(42)

	if s.Len() != 1 || len(surf.renders) != renders {
		t.Errorf("unknown id removal changed state: len=%d renders=%d", s.Len(), len(surf.renders))
	}
}

func TestPendingPromptBlocksOtherOperations(t *testing.T) {
	surf := &fakeSurface{}
	s := NewStore(WithSurface(surf))
	a, _ := s.AddTask("a")

	s.RemoveTask(a.ID)
	if !s.Pending() {
		t.Fatal("expected pending prompt")
	}

	if _, ok := s.AddTask("b"); ok {
		t.Error("add admitted while prompt pending")
	}
	if s.ToggleTaskDone(a.ID) {
		t.Error("toggle admitted while prompt pending")
	}
	if s.EditTask(a.ID, "x") {
		t.Error("edit admitted while prompt pending")
	}
	s.RemoveTask(a.ID)
	if len(surf.confirms) != 1 {
		t.Errorf("second confirm opened while pending: %d", len(surf.confirms))
	}

	surf.no()
	surf.yes() // late second answer must be ignored
	if s.Len() != 1 {
		t.Errorf("len: got %d, want 1", s.Len())
	}
	if _, ok := s.AddTask("b"); !ok {
		t.Error("add rejected after prompt settled")
	}
}

func TestEditTask(t *testing.T) {
	s := NewStore()
	task, _ := s.AddTask("Buy milk")
	s.ToggleTaskDone(task.ID)

	if !s.EditTask(task.ID, "") {
		t.Fatal("edit reported no change")
	}
	got, _ := s.Snapshot().Find(task.ID)
	if got.Title != "" || !got.Done || got.ID != task.ID {
		t.Errorf("after edit: %+v", got)
	}
	if s.EditTask(999, "nope") {
		t.Error("edit of unknown id reported a change")
	}
}

func TestEndToEnd(t *testing.T) {
	surf := &fakeSurface{answer: "yes"}
	s := NewStore(WithSurface(surf))

	task, _ := s.AddTask("Buy milk")
	want := model.List{{ID: task.ID, Title: "Buy milk"}}
	if !reflect.DeepEqual(s.Snapshot(), want) {
		t.Fatalf("after add: %+v", s.Snapshot())
	}

	s.ToggleTaskDone(task.ID)
	s.EditTask(task.ID, "Buy oat milk")
	want = model.List{{ID: task.ID, Title: "Buy oat milk", Done: true}}
	if !reflect.DeepEqual(s.Snapshot(), want) {
		t.Fatalf("after toggle+edit: %+v", s.Snapshot())
	}

	s.RemoveTask(task.ID)
	if s.Len() != 0 {
		t.Errorf("after remove: %+v", s.Snapshot())
	}
}

func TestStoreLogsAbsorbedConditions(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := NewStore(WithLogger(logger))

	s.AddTask("a")
	s.AddTask("a")
	s.ToggleTaskDone(404)

	out := buf.String()
	for _, want := range []string{ErrDuplicateTitle.Error(), ErrUnknownID.Error()} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDefaultSurfaceDismissesConfirmations(t *testing.T) {
	s := NewStore()
	a, _ := s.AddTask("a")
	s.RemoveTask(a.ID)
	if s.Pending() || s.Len() != 1 {
		t.Errorf("pending=%v len=%d", s.Pending(), s.Len())
	}
}
