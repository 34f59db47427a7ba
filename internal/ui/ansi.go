package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
	symWarn  = "!"
)

var (
	forceColor   bool
	disableColor bool

	// set by the mono theme, independent of the caller's forcing
	themeNoColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// Colorize reports whether escapes should be written to w.
func Colorize(w io.Writer) bool {
	if disableColor || themeNoColor {
		return false
	}
	if forceColor {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// CW wraps s in color when w accepts escapes.
func CW(w io.Writer, color, s string) string {
	if color == "" || !Colorize(w) {
		return s
	}
	return color + s + reset
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, CW(w, fgGreen, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, CW(w, fgRed, symCross+" "+msg)) }
func Warn(w io.Writer, msg string) { fmt.Fprintln(w, CW(w, fgYellow, symWarn+" "+msg)) }

// Hint prints a dimmed follow-up line.
func Hint(w io.Writer, msg string) { fmt.Fprintln(w, CW(w, dim, msg)) }
