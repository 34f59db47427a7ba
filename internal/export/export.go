// Package export dumps a task snapshot as JSON, CSV or PDF. Nothing here is
// ever read back.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/idilsaglam/tasklist/internal/model"
)

// Formats lists the supported format names.
var Formats = []string{"json", "csv", "pdf"}

// FormatFromPath picks a format from the file extension, defaulting to json.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats {
		if f == ext {
			return f
		}
	}
	return "json"
}

// Write encodes list to w in the given format.
func Write(w io.Writer, format string, list model.List) error {
	if list == nil {
		list = model.List{}
	}
	switch strings.ToLower(format) {
	case "json":
		b, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"id", "title", "done"}); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		for _, t := range list {
			if err := cw.Write([]string{strconv.FormatInt(int64(t.ID), 10), t.Title, strconv.FormatBool(t.Done)}); err != nil {
				return fmt.Errorf("csv: %w", err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		return nil
	case "pdf":
		return writePDF(w, list)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
}

func writePDF(w io.Writer, list model.List) error {
	done, pending := list.Stats()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Todos")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(40, 6, fmt.Sprintf("done %d  pending %d  total %d", done, pending, len(list)))
	pdf.Ln(10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for i, t := range list {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		line := fmt.Sprintf("%2d. %s %s", i+1, box, tr(t.Title))
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// ToFile writes list to path. An empty format is derived from the extension.
// The file is only touched once encoding succeeded.
func ToFile(path, format string, list model.List) error {
	if format == "" {
		format = FormatFromPath(path)
	}
	var buf bytes.Buffer
	if err := Write(&buf, format, list); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
