package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"svlang/internal/diag"
	"svlang/internal/source"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	noteColor  = color.New(color.FgCyan)
	caretColor = color.New(color.FgGreen, color.Bold)
	locColor   = color.New(color.Bold)
)

// Pretty renders diagnostics human-readably, one per entry:
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//	   <source line>
//	   ^~~~~
//
// followed by notes in the same shape. Callers wanting location order
// should bag.Sort() first. Color is applied only when opts.Color is set
// (the CLI gates it on terminal detection).
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printEntry(w, fs, opts, d.Severity.String(), d.Code.ID(), d.Message, d.Primary, severityPainter(d.Severity))
		if opts.ShowNotes {
			for _, n := range d.Notes {
				printEntry(w, fs, opts, "note", "", n.Msg, n.Span, noteColor)
			}
		}
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  fix: %s\n", fix.Title)
			for _, edit := range fix.Edits {
				preview, err := buildFixEditPreview(fs, edit)
				if err != nil {
					continue
				}
				for _, line := range preview.after {
					fmt.Fprintf(w, "    | %s\n", line)
				}
			}
		}
	}
}

func severityPainter(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError, diag.SevFatal:
		return errorColor
	case diag.SevWarning:
		return warnColor
	default:
		return noteColor
	}
}

func printEntry(w io.Writer, fs *source.FileSet, opts PrettyOpts, sev, code, msg string, span source.Span, painter *color.Color) {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)

	path := "<unknown>"
	if f != nil {
		switch opts.PathMode {
		case PathModeAbsolute:
			path = f.FormatPath("absolute", "")
		case PathModeRelative:
			path = f.FormatPath("relative", fs.BaseDir())
		case PathModeBasename:
			path = f.FormatPath("basename", "")
		default:
			path = f.Path
		}
	}

	loc := fmt.Sprintf("%s:%d:%d:", path, start.Line, start.Col)
	sevText := sev
	if code != "" {
		sevText = sev + " " + code
	}
	if opts.Color {
		fmt.Fprintf(w, "%s %s: %s\n", locColor.Sprint(loc), painter.Sprint(sevText), msg)
	} else {
		fmt.Fprintf(w, "%s %s: %s\n", loc, sevText, msg)
	}

	if f == nil {
		return
	}
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(line, "\t", " "))

	// Caret underline spanning the diagnostic's extent within the line.
	width := int(span.End) - int(span.Start)
	if width < 1 {
		width = 1
	}
	if int(start.Col)-1+width > len(line) {
		width = len(line) - int(start.Col) + 1
		if width < 1 {
			width = 1
		}
	}
	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col)-1), underline)
}
