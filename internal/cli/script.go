package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/tasklist/internal/export"
	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/screen"
	"github.com/idilsaglam/tasklist/internal/task"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// lineSurface renders a screen as plain lines. Confirmations are answered by
// the next input line.
type lineSurface struct {
	in    *bufio.Scanner
	out   io.Writer
	group bool
}

func (s *lineSurface) RenderSnapshot(model.List) {}

func (s *lineSurface) PromptConfirm(p task.Prompt, onYes, onNo func()) {
	fmt.Fprintf(s.out, "%s: %s [y/N] ", p.Title, p.Message)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		onNo()
		return
	}
	answer := strings.ToLower(strings.TrimSpace(s.in.Text()))
	fmt.Fprintln(s.out, answer)
	if answer == "y" || answer == "yes" {
		onYes()
		return
	}
	onNo()
}

func (s *lineSurface) PromptWarning(p task.Prompt) {
	ui.Warn(s.out, p.Title+": "+p.Message)
}

type scriptRunner struct {
	scr  *screen.Screen
	surf *lineSurface
	opt  Options
	code int
}

func runScript(r io.Reader, opt Options) int {
	sc := bufio.NewScanner(r)
	surf := &lineSurface{in: sc, out: opt.Stdout, group: opt.Group}
	store := task.NewStore(task.WithLogger(opt.Logger))
	run := &scriptRunner{
		scr:  screen.New(store, surf, nil),
		surf: surf,
		opt:  opt,
	}

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		opt.Logger.Debug("script command", "line", lineNo, "cmd", cmd)
		if cmd == "quit" {
			break
		}
		run.exec(cmd, rest)
	}
	if err := sc.Err(); err != nil {
		ui.Fail(opt.Stderr, "read: "+err.Error())
		return 1
	}
	return run.code
}

func (r *scriptRunner) fail(code int, msg string) {
	ui.Fail(r.opt.Stderr, msg)
	if code > r.code {
		r.code = code
	}
}

func (r *scriptRunner) exec(cmd, rest string) {
	out := r.opt.Stdout
	switch cmd {
	case "help":
		PrintHelp(out)

	case "ls":
		r.list()

	case "add":
		if rest == "" {
			r.fail(2, "usage: add <title...>")
			return
		}
		before := len(r.scr.Snapshot())
		r.scr.Dispatch(screen.SubmitNewTaskTitle{Title: rest})
		if len(r.scr.Snapshot()) > before {
			ui.OK(out, "added")
		}

	case "done":
		id, ok := r.index(cmd, rest)
		if !ok {
			return
		}
		r.scr.Dispatch(screen.TapMarker{ID: id})
		ui.OK(out, "toggled")

	case "edit":
		n, title, _ := strings.Cut(rest, " ")
		id, ok := r.index(cmd, n)
		if !ok {
			return
		}
		r.scr.Dispatch(screen.TapStartEdit{ID: id})
		r.scr.Dispatch(screen.ChangeText{ID: id, Draft: strings.TrimSpace(title)})
		r.scr.Dispatch(screen.SubmitText{ID: id})
		ui.OK(out, "edited")

	case "rm":
		id, ok := r.index(cmd, rest)
		if !ok {
			return
		}
		r.scr.Dispatch(screen.TapDelete{ID: id})
		if _, still := r.scr.Snapshot().Find(id); still {
			ui.Hint(out, "kept")
			return
		}
		ui.OK(out, "removed")

	case "export":
		format, path, _ := strings.Cut(rest, " ")
		path = strings.TrimSpace(path)
		if format == "" || path == "" {
			r.fail(2, "usage: export <json|csv|pdf> <path>")
			return
		}
		if err := export.ToFile(path, format, r.scr.Snapshot()); err != nil {
			r.fail(1, "export: "+err.Error())
			return
		}
		ui.OK(out, "exported "+path)

	default:
		r.fail(2, "unknown command: "+cmd)
	}
}

// index resolves a 1-based position to a task id.
func (r *scriptRunner) index(cmd, arg string) (model.ID, bool) {
	if arg == "" || strings.Contains(arg, " ") {
		r.fail(2, "usage: "+cmd+" <index>")
		return 0, false
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		r.fail(2, cmd+": not a number: "+arg)
		return 0, false
	}
	list := r.scr.Snapshot()
	if n < 1 || n > len(list) {
		r.fail(2, fmt.Sprintf("index out of range: have %d, got %d", len(list), n))
		ui.Hint(r.opt.Stderr, "Hint: run `ls` to see valid indexes")
		return 0, false
	}
	return list[n-1].ID, true
}

// -------------- rendering helpers --------------

func (r *scriptRunner) list() {
	out := r.opt.Stdout
	items := r.scr.Snapshot()
	th := ui.Current()

	d, p := items.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.CW(out, th.Title, "Todos"),
		ui.CW(out, th.Success, th.SymDone), d,
		ui.CW(out, th.Pending, th.SymUnchecked), p,
		ui.CW(out, th.Accent, "Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.CW(out, th.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if r.surf.group {
		lines = append(lines, groupLines(out, items)...)
	} else {
		lines = append(lines, flatLines(out, items, items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.CW(out, th.Muted, "Tip: add with `add Buy milk`"))
	ui.Panel(out, lines)
}

// flatLines numbers each row by its position in all, the list that `done`,
// `edit` and `rm` resolve indexes against.
func flatLines(w io.Writer, items, all model.List) []string {
	if len(items) == 0 {
		return []string{ui.CW(w, ui.Current().Muted, "no items")}
	}
	th := ui.Current()
	out := make([]string, 0, len(items))
	for _, it := range items {
		idx := fmt.Sprintf("%2d.", all.Index(it.ID)+1)
		box := th.BoxUnchecked
		color := th.Muted
		if it.Done {
			box, color = th.BoxChecked, th.Success
		}
		title := it.Title
		if r := []rune(title); len(r) > 80 {
			title = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.CW(w, th.Muted, idx), ui.CW(w, color, box), title))
	}
	return out
}

func groupLines(w io.Writer, items model.List) []string {
	var pend, done model.List
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	th := ui.Current()
	var lines []string
	lines = append(lines, ui.CW(w, th.Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.CW(w, th.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(w, pend, items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.CW(w, th.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, ui.CW(w, th.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(w, done, items)...)
	}
	return lines
}
