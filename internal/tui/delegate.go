package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/screen"
)

// row adapts a task to bubbles/list.Item
type row struct {
	task model.Task
}

func (r row) TitleText() string {
	b := boxUnchecked
	if r.task.Done {
		b = boxChecked
	}
	return fmt.Sprintf("%s %s", b, r.task.Title)
}

func (r row) Title() string       { return r.TitleText() }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.task.Title }

func rows(l model.List) []list.Item {
	out := make([]list.Item, 0, len(l))
	for _, t := range l {
		out = append(out, row{task: t})
	}
	return out
}

// rowDelegate draws one line per task. The row being edited shows its draft
// and a dimmed delete marker.
type rowDelegate struct {
	scr *screen.Screen
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}

	marker := mutedStyle.Render(boxUnchecked)
	text := r.task.Title
	if r.task.Done {
		marker = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	trash := "✖"
	if id, editing := d.scr.Editing(); editing && id == r.task.ID {
		text = accentStyle.Render(d.scr.Row(id).Draft() + "▏")
		trash = mutedStyle.Render(trash)
	} else {
		trash = errorStyle.Render(trash)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s  %s", prefix, marker, text, trash)
}
