package tui

import (
	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/task"
)

// RenderSnapshot replaces the rows, keeping the cursor in range.
func (m *tuiModel) RenderSnapshot(l model.List) {
	idx := m.list.Index()
	m.list.SetItems(rows(l))
	if idx >= len(l) {
		idx = len(l) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.refreshTitle(l)
}

func (m *tuiModel) PromptConfirm(p task.Prompt, onYes, onNo func()) {
	m.prompt = &modal{prompt: p, onYes: onYes, onNo: onNo}
	m.resize()
}

func (m *tuiModel) PromptWarning(p task.Prompt) {
	m.prompt = &modal{prompt: p, warning: true}
	m.resize()
}

// FocusInput loads the row's draft into the shared text input.
func (m *tuiModel) FocusInput(id model.ID) {
	it := m.scr.Row(id)
	if it == nil {
		return
	}
	m.editing = true
	m.editID = id
	m.ti.Placeholder = "Edit item title..."
	m.ti.SetValue(it.Draft())
	m.ti.CursorEnd()
	m.ti.Focus()
	m.resize()
}

func (m *tuiModel) BlurInput(id model.ID) {
	if !m.editing || m.editID != id {
		return
	}
	m.editing = false
	m.closeInput()
}
