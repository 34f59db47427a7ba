// Package task owns the task list and the per-row edit state.
package task

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/model"
)

// Store holds the task list for one screen session.
//
// Every mutation builds a new slice, so a List returned by Snapshot or passed
// to RenderSnapshot stays valid forever. Store is not safe for concurrent use;
// all calls are expected to come from the surface's event loop.
type Store struct {
	list    model.List
	next    func() model.ID
	surface Surface
	log     *log.Logger

	pending bool // a confirmation prompt is waiting for an answer
}

// Option configures a Store.
type Option func(*Store)

// WithSurface sets where snapshots and prompts go.
func WithSurface(s Surface) Option {
	return func(st *Store) {
		if s != nil {
			st.surface = s
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(st *Store) {
		if l != nil {
			st.log = l
		}
	}
}

// WithSequence replaces the id generator.
func WithSequence(next func() model.ID) Option {
	return func(st *Store) {
		if next != nil {
			st.next = next
		}
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		list:    model.List{},
		next:    Sequence(),
		surface: nopSurface{},
		log:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetSurface swaps the surface after construction.
func (s *Store) SetSurface(surface Surface) {
	if surface == nil {
		surface = nopSurface{}
	}
	s.surface = surface
}

// Snapshot returns the current list.
func (s *Store) Snapshot() model.List { return s.list }

func (s *Store) Len() int { return len(s.list) }

// Pending reports whether a confirmation prompt is open.
func (s *Store) Pending() bool { return s.pending }

// AddTask appends a new pending task. A title already in the list is rejected
// with a duplicate warning; an empty title is ignored.
func (s *Store) AddTask(title string) (model.Task, bool) {
	if !s.admit("add") {
		return model.Task{}, false
	}
	if title == "" {
		s.log.Debug("add rejected", "err", ErrEmptyTitle)
		return model.Task{}, false
	}
	if s.list.HasTitle(title) {
		s.log.Info("add rejected", "err", ErrDuplicateTitle, "title", title)
		s.surface.PromptWarning(DuplicateTitleWarning)
		return model.Task{}, false
	}

	id := s.next()
	for s.list.Index(id) >= 0 {
		id = s.next()
	}
	t := model.Task{ID: id, Title: title}

	next := make(model.List, len(s.list), len(s.list)+1)
	copy(next, s.list)
	s.commit(append(next, t))
	s.log.Debug("task added", "id", t.ID, "title", t.Title)
	return t, true
}

// ToggleTaskDone flips the done flag of id. Unknown ids are ignored.
func (s *Store) ToggleTaskDone(id model.ID) bool {
	if !s.admit("toggle") {
		return false
	}
	return s.update(id, "toggle", func(t *model.Task) { t.Done = !t.Done })
}

// EditTask replaces the title of id, keeping its id and done flag. An empty
// title is accepted.
func (s *Store) EditTask(id model.ID, title string) bool {
	if !s.admit("edit") {
		return false
	}
	return s.update(id, "edit", func(t *model.Task) { t.Title = title })
}

// RemoveTask asks the surface for confirmation and removes id only when the
// user answers yes.
func (s *Store) RemoveTask(id model.ID) {
	if !s.admit("remove") {
		return
	}

	s.pending = true
	answered := false
	settle := func() bool {
		if answered {
			return false
		}
		answered = true
		s.pending = false
		return true
	}

	onYes := func() {
		if !settle() {
			return
		}
		i := s.list.Index(id)
		if i < 0 {
			s.log.Debug("remove ignored", "err", ErrUnknownID, "id", id)
			return
		}
		next := make(model.List, 0, len(s.list)-1)
		next = append(next, s.list[:i]...)
		next = append(next, s.list[i+1:]...)
		s.commit(next)
		s.log.Debug("task removed", "id", id)
	}
	onNo := func() {
		if settle() {
			s.log.Debug("remove cancelled", "id", id)
		}
	}

	s.surface.PromptConfirm(RemoveConfirmation, onYes, onNo)
}

func (s *Store) update(id model.ID, op string, fn func(*model.Task)) bool {
	i := s.list.Index(id)
	if i < 0 {
		s.log.Debug(op+" ignored", "err", ErrUnknownID, "id", id)
		return false
	}
	next := s.list.Clone()
	fn(&next[i])
	s.commit(next)
	s.log.Debug("task updated", "op", op, "id", id)
	return true
}

func (s *Store) admit(op string) bool {
	if s.pending {
		s.log.Warn(op+" ignored", "err", ErrPromptPending)
		return false
	}
	return true
}

func (s *Store) commit(next model.List) {
	s.list = next
	s.surface.RenderSnapshot(next)
}
