package diagfmt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"aidlkit/internal/diag"
	"aidlkit/internal/source"
)

// Pretty renders every diagnostic of every file to w with source context.
// Files are visited in FileID order; diagnostics keep the order they carry.
// For each diagnostic it prints a severity headline, the primary span with a
// `^^^` underline (labeled with the context message if present), one `---`
// underline per related info, and a trailing `= hint:` note when the
// diagnostic has one. The only failure mode is a write error on w.
func Pretty(w io.Writer, fs *source.FileSet, diags map[source.FileID][]diag.Diagnostic, opts PrettyOpts) error {
	p := &printer{w: w, styles: newStyles(opts.Color)}

	ids := make([]source.FileID, 0, len(diags))
	for id := range diags {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		for _, d := range diags[id] {
			p.diagnostic(fs, d, opts)
		}
	}
	return p.err
}

type styles struct {
	err    *color.Color
	warn   *color.Color
	bold   *color.Color
	gutter *color.Color
	prim   func(sev diag.Severity) *color.Color
	sec    *color.Color
	hint   *color.Color
}

func newStyles(enabled bool) styles {
	s := styles{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		bold:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		sec:    color.New(color.FgBlue),
		hint:   color.New(color.FgCyan),
	}
	all := []*color.Color{s.err, s.warn, s.bold, s.gutter, s.sec, s.hint}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	s.prim = func(sev diag.Severity) *color.Color {
		if sev >= diag.SevError {
			return s.err
		}
		return s.warn
	}
	return s
}

// printer remembers the first write error and drops everything after it.
type printer struct {
	w      io.Writer
	styles styles
	err    error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = fmt.Errorf("failed to render diagnostic: %w", err)
	}
}

func (p *printer) diagnostic(fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	sev := p.styles.prim(d.Severity)

	// Headline: `error[SEM3001]: unknown type `Missing``
	label := "warning"
	if d.Severity >= diag.SevError {
		label = "error"
	}
	p.printf("%s%s: %s\n",
		sev.Sprintf("%s", label),
		sev.Sprintf("[%s]", d.Code.String()),
		p.styles.bold.Sprint(d.Message))

	p.snippet(fs, d.Primary, d.ContextMsg, sev, "^", opts)
	for _, rel := range d.Related {
		p.snippet(fs, rel.Span, rel.Msg, p.styles.sec, "-", opts)
	}

	if d.Hint != "" {
		p.printf("   %s %s %s\n",
			p.styles.gutter.Sprint("="),
			p.styles.hint.Sprint("hint:"),
			d.Hint)
	}
	p.printf("\n")
}

// snippet prints one labeled span: location line, source line, underline.
func (p *printer) snippet(fs *source.FileSet, sp source.Span, msg string, c *color.Color, mark string, opts PrettyOpts) {
	file, err := fs.Lookup(sp.File)
	if err != nil {
		// A span pointing at an unregistered file still gets its message out.
		if msg != "" {
			p.printf("   %s %s\n", p.styles.gutter.Sprint("="), msg)
		}
		return
	}

	start, _ := fs.Resolve(sp)
	path := displayPath(file, fs, opts.PathMode)
	p.printf("  %s %s:%d:%d\n", p.styles.gutter.Sprint("-->"), path, start.Line, start.Col)

	line := file.GetLine(start.Line)
	gutterWidth := len(fmt.Sprintf("%d", start.Line))
	pad := strings.Repeat(" ", gutterWidth)

	p.printf("%s %s\n", pad, p.styles.gutter.Sprint("|"))
	p.printf("%s %s %s\n",
		p.styles.gutter.Sprintf("%d", start.Line),
		p.styles.gutter.Sprint("|"),
		line)

	// The underline covers the span on its first line only; terminal columns
	// are computed from rune widths so wide characters stay aligned.
	prefix := prefixOf(line, start.Col)
	underlined := spanTextOnLine(line, sp, start)
	width := runewidth.StringWidth(underlined)
	if width < 1 {
		width = 1
	}
	underline := strings.Repeat(mark, width)
	if msg != "" {
		underline += " " + msg
	}
	p.printf("%s %s %s%s\n",
		pad,
		p.styles.gutter.Sprint("|"),
		strings.Repeat(" ", runewidth.StringWidth(prefix)),
		c.Sprint(underline))
}

// prefixOf returns the part of line before the 1-based column.
func prefixOf(line string, col uint32) string {
	if int(col)-1 > len(line) {
		return line
	}
	return line[:col-1]
}

// spanTextOnLine returns the spanned text limited to the first line.
func spanTextOnLine(line string, sp source.Span, start source.LineCol) string {
	from := int(start.Col) - 1
	if from > len(line) {
		return ""
	}
	length := int(sp.Len())
	if length == 0 {
		length = 1
	}
	to := from + length
	if to > len(line) {
		to = len(line)
	}
	if from >= to {
		return ""
	}
	return line[from:to]
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
