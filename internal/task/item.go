package task

import "github.com/idilsaglam/tasklist/internal/model"

// State is the edit state of one row.
type State int

const (
	Viewing State = iota
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

// Item is the edit controller behind a single row. The draft is only pushed to
// the store on SubmitEdit.
type Item struct {
	id      model.ID
	title   string // committed title from the latest snapshot
	draft   string
	state   State
	store   *Store
	focuser Focuser
}

// NewItem returns a controller in Viewing state for t.
func NewItem(t model.Task, store *Store, f Focuser) *Item {
	if f == nil {
		f = nopFocuser{}
	}
	return &Item{
		id:      t.ID,
		title:   t.Title,
		draft:   t.Title,
		store:   store,
		focuser: f,
	}
}

func (it *Item) ID() model.ID        { return it.id }
func (it *Item) State() State        { return it.state }
func (it *Item) Editing() bool       { return it.state == Editing }
func (it *Item) Draft() string       { return it.draft }
func (it *Item) Title() string       { return it.title }
func (it *Item) DeleteEnabled() bool { return it.state == Viewing }

// Sync follows the committed title of the latest snapshot. An in-progress
// draft is left alone.
func (it *Item) Sync(t model.Task) {
	it.title = t.Title
	if it.state == Viewing {
		it.draft = t.Title
	}
}

func (it *Item) StartEdit() {
	if it.state == Editing {
		return
	}
	it.draft = it.title
	it.state = Editing
	it.focuser.FocusInput(it.id)
}

// CancelEdit drops the draft and goes back to Viewing.
func (it *Item) CancelEdit() {
	if it.state != Editing {
		return
	}
	it.draft = it.title
	it.state = Viewing
	it.focuser.BlurInput(it.id)
}

// ChangeText records one keystroke worth of draft.
func (it *Item) ChangeText(s string) {
	if it.state != Editing {
		return
	}
	it.draft = s
}

// SubmitEdit commits the draft as-is, empty or unchanged included.
func (it *Item) SubmitEdit() {
	if it.state != Editing {
		return
	}
	draft := it.draft
	it.state = Viewing
	if it.store.EditTask(it.id, draft) {
		it.title = draft
	}
	it.draft = it.title
	it.focuser.BlurInput(it.id)
}

func (it *Item) ToggleDone() bool {
	return it.store.ToggleTaskDone(it.id)
}

// Delete asks the store to remove the row. It is disabled while editing.
func (it *Item) Delete() bool {
	if !it.DeleteEnabled() {
		return false
	}
	it.store.RemoveTask(it.id)
	return true
}
