// Package tui is the interactive rendering surface of the home screen.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/export"
	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/screen"
	"github.com/idilsaglam/tasklist/internal/task"
)

// Options configures the interactive screen.
type Options struct {
	AltScreen  bool
	CharLimit  int
	ExportPath string
	Logger     *log.Logger

	// Input and Output override the terminal, mainly for tests.
	Input  io.Reader
	Output io.Writer
}

// Run starts the Bubble Tea program and blocks until the user quits. Tasks are
// gone once it returns.
func Run(ctx context.Context, opt Options) error {
	m := newModel(opt)

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opt.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if opt.Input != nil {
		popts = append(popts, tea.WithInput(opt.Input))
	}
	if opt.Output != nil {
		popts = append(popts, tea.WithOutput(opt.Output))
	}

	p := tea.NewProgram(m, popts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	m.log.Info("screen closed", "tasks", len(m.scr.Snapshot()))
	return nil
}

// modal is an open prompt. Warnings only need acknowledging.
type modal struct {
	prompt      task.Prompt
	warning     bool
	onYes, onNo func()
}

type tuiModel struct {
	scr  *screen.Screen
	list list.Model
	ti   textinput.Model // shared text input model (used for add & edit)
	opt  Options
	log  *log.Logger

	// Inline add
	adding bool
	addErr string

	// Inline edit, driven by FocusInput/BlurInput
	editing bool
	editID  model.ID

	prompt *modal
	status string

	width, height int
}

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done"))
	editBind   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	deleteBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	exportBind = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export"))
)

func newModel(opt Options) *tuiModel {
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard)
	}
	if opt.CharLimit <= 0 {
		opt.CharLimit = 200
	}
	if opt.ExportPath == "" {
		opt.ExportPath = "todos.json"
	}

	m := &tuiModel{opt: opt, log: opt.Logger, width: 80, height: 24}
	store := task.NewStore(task.WithLogger(opt.Logger))
	m.scr = screen.New(store, m, m)

	l := list.New(nil, rowDelegate{scr: m.scr}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("task", "tasks")
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f") // "d" deletes
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{addBind, toggleBind, editBind, deleteBind}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{addBind, toggleBind, editBind, deleteBind, exportBind}
	}
	m.list = l

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New item title..."
	m.ti.CharLimit = opt.CharLimit

	m.refreshTitle(store.Snapshot())
	m.resize()
	return m
}

func (m *tuiModel) Init() tea.Cmd { return nil }

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// a prompt swallows every key until answered
		if m.prompt != nil {
			m.updatePrompt(msg)
			return m, nil
		}
		if m.adding {
			return m.updateAdd(msg)
		}
		if m.editing {
			return m.updateEdit(msg)
		}
		return m.updateList(msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *tuiModel) updatePrompt(msg tea.KeyMsg) {
	p := m.prompt
	if p.warning {
		m.prompt = nil
		m.resize()
		return
	}
	switch msg.String() {
	case "y", "Y", "enter":
		m.prompt = nil
		p.onYes()
	case "n", "N", "esc":
		m.prompt = nil
		p.onNo()
	}
	m.resize()
}

func (m *tuiModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.ti.Value())
		if title == "" {
			m.addErr = "Title cannot be empty"
			return m, nil
		}
		m.closeInput()
		m.adding = false
		m.scr.Dispatch(screen.SubmitNewTaskTitle{Title: title})
		if n := len(m.scr.Snapshot()); n > 0 && m.scr.Snapshot()[n-1].Title == title {
			m.list.Select(n - 1)
		}
		return m, nil
	case "esc":
		m.closeInput()
		m.adding = false
		return m, nil
	}
	m.addErr = ""
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *tuiModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.scr.Dispatch(screen.SubmitText{ID: m.editID})
		return m, nil
	case "esc":
		m.scr.Dispatch(screen.TapCancelEdit{ID: m.editID})
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.scr.Dispatch(screen.ChangeText{ID: m.editID, Draft: m.ti.Value()})
	return m, cmd
}

func (m *tuiModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "a":
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New item title..."
		m.resize()
		return m, m.ti.Focus()
	case " ":
		if id, ok := m.selected(); ok {
			m.scr.Dispatch(screen.TapMarker{ID: id})
		}
		return m, nil
	case "e":
		if id, ok := m.selected(); ok {
			m.scr.Dispatch(screen.TapStartEdit{ID: id})
		}
		return m, nil
	case "d":
		if id, ok := m.selected(); ok {
			m.scr.Dispatch(screen.TapDelete{ID: id})
		}
		return m, nil
	case "x":
		path := m.opt.ExportPath
		if err := export.ToFile(path, "", m.scr.Snapshot()); err != nil {
			m.log.Error("export failed", "path", path, "err", err)
			m.status = errorStyle.Render("✖ export: " + err.Error())
			return m, nil
		}
		m.status = successStyle.Render("✔ exported " + path)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *tuiModel) selected() (model.ID, bool) {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return 0, false
	}
	return r.task.ID, true
}

func (m *tuiModel) closeInput() {
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *tuiModel) refreshTitle(l model.List) {
	dn, pn := l.Stats()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
		accentStyle.Render("Total"), len(l),
	)
}

func (m *tuiModel) resize() {
	h := m.height - 4
	if m.adding || m.editing {
		h -= 3
	}
	if m.prompt != nil {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m *tuiModel) View() string {
	content := m.list.View()

	if m.adding || m.editing {
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		if m.addErr != "" && m.adding {
			title += " - " + errorStyle.Render(m.addErr)
		}
		content += "\n" + box().Render(title+"\n"+m.ti.View())
	}

	if p := m.prompt; p != nil {
		head := warnStyle.Render(p.prompt.Title)
		hint := helpStyle.Render("[y] Yes   [n] No")
		if p.warning {
			head = errorStyle.Render(p.prompt.Title)
			hint = helpStyle.Render("press any key")
		}
		content += "\n" + box().Render(head+"\n"+p.prompt.Message+"\n"+hint)
	}

	if m.status != "" {
		content += "\n" + m.status
	}
	return box().Render(content)
}
