package task

import "github.com/idilsaglam/tasklist/internal/model"

// Prompt is a modal message shown by the rendering surface.
type Prompt struct {
	Title   string
	Message string
}

var (
	RemoveConfirmation = Prompt{
		Title:   "Remove item",
		Message: "Are you sure you want to remove this item?",
	}
	DuplicateTitleWarning = Prompt{
		Title:   "Task already registered",
		Message: "You cannot register a task with the same name",
	}
)

// Surface draws snapshots and shows prompts on behalf of the store.
//
// PromptConfirm must eventually call exactly one of onYes or onNo; dismissing
// the prompt counts as onNo.
type Surface interface {
	RenderSnapshot(list model.List)
	PromptConfirm(p Prompt, onYes, onNo func())
	PromptWarning(p Prompt)
}

// Focuser moves input focus to and from a row's text field.
type Focuser interface {
	FocusInput(id model.ID)
	BlurInput(id model.ID)
}

type nopSurface struct{}

func (nopSurface) RenderSnapshot(model.List)                 {}
func (nopSurface) PromptConfirm(_ Prompt, _, onNo func()) { onNo() }
func (nopSurface) PromptWarning(Prompt)                      {}

type nopFocuser struct{}

func (nopFocuser) FocusInput(model.ID) {}
func (nopFocuser) BlurInput(model.ID)  {}
