// Package screen is the home screen: one task store plus the edit controller
// of every visible row.
package screen

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/task"
)

// Event is a user intent delivered by a rendering surface.
type Event interface{ event() }

// TapMarker toggles the done flag of a row.
type TapMarker struct{ ID model.ID }

type TapStartEdit struct{ ID model.ID }

type TapCancelEdit struct{ ID model.ID }

// ChangeText carries the whole draft after one keystroke.
type ChangeText struct {
	ID    model.ID
	Draft string
}

// SubmitText commits the row's draft.
type SubmitText struct{ ID model.ID }

type TapDelete struct{ ID model.ID }

type SubmitNewTaskTitle struct{ Title string }

func (TapMarker) event()          {}
func (TapStartEdit) event()       {}
func (TapCancelEdit) event()      {}
func (ChangeText) event()         {}
func (SubmitText) event()         {}
func (TapDelete) event()          {}
func (SubmitNewTaskTitle) event() {}

// Screen wires a store to a rendering surface. It sits between the two as the
// store's Surface so row controllers can follow every snapshot.
type Screen struct {
	store   *task.Store
	surface task.Surface
	focuser task.Focuser
	rows    map[model.ID]*task.Item
}

// New builds a screen over store, forwarding outbound requests to surface and
// focus changes to focuser. Either may be nil.
func New(store *task.Store, surface task.Surface, focuser task.Focuser) *Screen {
	s := &Screen{
		store:   store,
		surface: surface,
		focuser: focuser,
		rows:    map[model.ID]*task.Item{},
	}
	store.SetSurface(s)
	return s
}

func (s *Screen) Store() *task.Store { return s.store }

// Snapshot returns the list currently on screen.
func (s *Screen) Snapshot() model.List { return s.store.Snapshot() }

// Header is the counter shown above the list.
func (s *Screen) Header() string {
	return fmt.Sprintf("Tasks: %d", s.store.Len())
}

// Row returns the controller for id, creating it on first use. It returns nil
// when id is not in the current snapshot.
func (s *Screen) Row(id model.ID) *task.Item {
	if it, ok := s.rows[id]; ok {
		return it
	}
	t, ok := s.store.Snapshot().Find(id)
	if !ok {
		return nil
	}
	it := task.NewItem(t, s.store, s.focuser)
	s.rows[id] = it
	return it
}

// Editing returns the id of a row in Editing state, if any.
func (s *Screen) Editing() (model.ID, bool) {
	for _, t := range s.store.Snapshot() {
		if it, ok := s.rows[t.ID]; ok && it.Editing() {
			return t.ID, true
		}
	}
	return 0, false
}

// Dispatch routes one event. Events naming a task that is no longer listed are
// dropped.
func (s *Screen) Dispatch(ev Event) {
	switch e := ev.(type) {
	case TapMarker:
		s.store.ToggleTaskDone(e.ID)
	case SubmitNewTaskTitle:
		if strings.TrimSpace(e.Title) == "" {
			return
		}
		s.store.AddTask(e.Title)
	case TapStartEdit:
		if it := s.Row(e.ID); it != nil {
			it.StartEdit()
		}
	case TapCancelEdit:
		if it := s.Row(e.ID); it != nil {
			it.CancelEdit()
		}
	case ChangeText:
		if it := s.Row(e.ID); it != nil {
			it.ChangeText(e.Draft)
		}
	case SubmitText:
		if it := s.Row(e.ID); it != nil {
			it.SubmitEdit()
		}
	case TapDelete:
		if it := s.Row(e.ID); it != nil {
			it.Delete()
		}
	}
}

// RenderSnapshot drops controllers of removed tasks, syncs the rest and hands
// the snapshot on.
func (s *Screen) RenderSnapshot(list model.List) {
	for id, it := range s.rows {
		t, ok := list.Find(id)
		if !ok {
			delete(s.rows, id)
			continue
		}
		it.Sync(t)
	}
	if s.surface != nil {
		s.surface.RenderSnapshot(list)
	}
}

func (s *Screen) PromptConfirm(p task.Prompt, onYes, onNo func()) {
	if s.surface == nil {
		onNo()
		return
	}
	s.surface.PromptConfirm(p, onYes, onNo)
}

func (s *Screen) PromptWarning(p task.Prompt) {
	if s.surface != nil {
		s.surface.PromptWarning(p)
	}
}
