package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"woof/internal/diag"
)

// Pretty formats diagnostics into a human-readable report. File
// diagnostics are grouped per (locale, file); interpolation errors
// print the source line with a caret underline; type mismatches list
// every competing (locale, type) pair.
func Pretty(w io.Writer, diags *diag.Diagnostics, opts PrettyOpts) {
	if diags.IsEmpty() {
		return
	}

	p := printer{w: w, colors: newPalette(opts.Color), max: opts.Max}

	for _, report := range diags.FileReports() {
		if p.exhausted() {
			break
		}
		where := report.File
		if report.Namespace != "" {
			where = report.Namespace + ": " + where
		}
		fmt.Fprintf(w, "Errors in %s (locale %s):\n", p.colors.file(where), report.Locale)

		for _, entry := range report.Entries {
			if p.exhausted() {
				break
			}
			p.count++
			switch entry.Diag.Kind {
			case diag.UnsupportedValue:
				fmt.Fprintf(w, "  key %s: unsupported value type: %s\n",
					p.colors.key(entry.Path), p.colors.detail(entry.Diag.ValueType))
			case diag.InterpolationErrors:
				fmt.Fprintf(w, "  key %s: interpolation errors:\n", p.colors.key(entry.Path))
				p.printSource(entry.Diag)
			}
		}
	}

	for _, report := range diags.MismatchReports() {
		if p.exhausted() {
			break
		}
		p.count++
		key := report.Path
		if report.Namespace != "" {
			key = report.Namespace + ": " + key
		}
		fmt.Fprintf(w, "Interpolation %s in key %s has different types between locales:\n",
			p.colors.detail(report.Name), p.colors.key(key))
		for _, lt := range report.Entries {
			fmt.Fprintf(w, "  • locale %s defines type as: %s\n",
				p.colors.locale(lt.Locale), p.colors.detail(lt.Type.String()))
		}
	}

	if remaining := diags.Len() - p.count; p.max > 0 && remaining > 0 {
		fmt.Fprintf(w, "... and %d more\n", remaining)
	}
}

type printer struct {
	w      io.Writer
	colors palette
	max    int
	count  int
}

func (p *printer) exhausted() bool {
	return p.max > 0 && p.count >= p.max
}

// printSource prints the offending translation followed by one caret
// underline per parse error. Underlines are aligned by display width so
// multibyte text keeps the carets under the right characters.
func (p *printer) printSource(kd diag.KeyDiagnostic) {
	fmt.Fprintf(p.w, "    %s\n", kd.Source)
	for _, perr := range kd.Errors {
		lead := runewidth.StringWidth(kd.Source[:clamp(int(perr.Span.Start), len(kd.Source))])
		width := runewidth.StringWidth(perr.Span.Text(kd.Source))
		if width < 1 {
			width = 1
		}
		underline := strings.Repeat(" ", lead) + "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(p.w, "    %s %s\n", p.colors.caret(underline), perr.Message())
	}
}

func clamp(n, limit int) int {
	if n > limit {
		return limit
	}
	return n
}

// palette holds the report colors; a disabled palette passes text
// through unchanged.
type palette struct {
	file   func(a ...interface{}) string
	key    func(a ...interface{}) string
	locale func(a ...interface{}) string
	detail func(a ...interface{}) string
	caret  func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.Sprint
	}
	return palette{
		file:   mk(color.FgGreen),
		key:    mk(color.FgYellow),
		locale: mk(color.FgBlue),
		detail: mk(color.FgMagenta),
		caret:  mk(color.FgRed, color.Bold),
	}
}
