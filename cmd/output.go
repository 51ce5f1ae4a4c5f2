package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/orochaa/go-clack/third_party/picocolors"

	"github.com/zbiljic/commitlint/pkg/lint"
)

const (
	symbolInput   = "⧗"
	symbolError   = "✖"
	symbolWarning = "⚠"
	symbolSuccess = "✔"
)

type reportWriter struct {
	out     io.Writer
	color   bool
	verbose bool
}

func (w reportWriter) paint(fn func(string) string, s string) string {
	if !w.color {
		return s
	}
	return fn(s)
}

// write prints the reports in the requested format.
func (w reportWriter) write(reports []lint.Report, format OutputFormat) error {
	switch format {
	case JSONFormat:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	default:
		for _, r := range reports {
			w.writeText(r)
		}
		return nil
	}
}

// writeText prints a single report. Valid reports without warnings are
// only printed in verbose mode.
func (w reportWriter) writeText(r lint.Report) {
	if r.Valid && len(r.Warnings) == 0 && !w.verbose {
		return
	}

	header, _, _ := strings.Cut(strings.TrimSpace(r.Input), "\n")
	fmt.Fprintf(w.out, "%s   input: %s\n", w.paint(picocolors.Gray, symbolInput), header)

	if r.Ignored {
		fmt.Fprintf(w.out, "%s   ignored\n\n", w.paint(picocolors.Gray, symbolSuccess))
		return
	}

	for _, p := range r.Errors {
		fmt.Fprintf(w.out, "%s   %s %s\n", w.paint(picocolors.Red, symbolError), p.Message, w.paint(picocolors.Gray, "["+p.Name+"]"))
	}
	for _, p := range r.Warnings {
		fmt.Fprintf(w.out, "%s   %s %s\n", w.paint(picocolors.Yellow, symbolWarning), p.Message, w.paint(picocolors.Gray, "["+p.Name+"]"))
	}

	symbol := w.paint(picocolors.Green, symbolSuccess)
	if !r.Valid {
		symbol = w.paint(picocolors.Red, symbolError)
	} else if len(r.Warnings) > 0 {
		symbol = w.paint(picocolors.Yellow, symbolWarning)
	}

	fmt.Fprintf(w.out, "\n%s   found %d problems, %d warnings\n\n", symbol, len(r.Errors), len(r.Warnings))
}
