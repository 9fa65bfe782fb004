package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"woof/internal/diag"
	"woof/internal/diagfmt"
	"woof/internal/interp"
	"woof/internal/source"
)

func sampleDiagnostics() *diag.Diagnostics {
	d := diag.New()
	d.AddKeyDiagnostic(diag.FileKey{Locale: "en", File: "en.toml"}, "x",
		diag.KeyDiagnostic{Kind: diag.UnsupportedValue, ValueType: "integer"})
	d.AddKeyDiagnostic(diag.FileKey{Locale: "en", File: "en.toml"}, "greet",
		diag.KeyDiagnostic{
			Kind:   diag.InterpolationErrors,
			Source: "Hello {123}",
			Errors: []interp.ParseError{{
				Kind:   interp.ErrInvalidIdentifier,
				Span:   source.Span{Start: 7, End: 10},
				Detail: "123",
			}},
		})
	d.AddTypeMismatch(diag.MismatchKey{Path: "count", Name: "n"},
		diag.LocaleType{Locale: "fr", Type: interp.TypeString},
		[]diag.LocaleType{{Locale: "en", Type: interp.TypeNumber}},
	)
	return d
}

func TestPretty(t *testing.T) {
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, sampleDiagnostics(), diagfmt.PrettyOpts{})
	out := buf.String()

	for _, want := range []string{
		"Errors in en.toml (locale en):",
		"key x: unsupported value type: integer",
		"key greet: interpolation errors:",
		"    Hello {123}",
		"^~~ invalid interpolation identifier: 123",
		"Interpolation n in key count has different types between locales:",
		"  • locale en defines type as: number",
		"  • locale fr defines type as: string",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Без цвета не должно быть ANSI-последовательностей
	if strings.Contains(out, "\x1b[") {
		t.Error("color escapes present with color disabled")
	}
}

func TestPrettyCaretAlignment(t *testing.T) {
	d := diag.New()
	d.AddKeyDiagnostic(diag.FileKey{Locale: "en", File: "en.toml"}, "greet",
		diag.KeyDiagnostic{
			Kind:   diag.InterpolationErrors,
			Source: "Hello {123}",
			Errors: []interp.ParseError{{
				Kind:   interp.ErrInvalidIdentifier,
				Span:   source.Span{Start: 7, End: 10},
				Detail: "123",
			}},
		})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, d, diagfmt.PrettyOpts{})

	// The caret line starts after the same 4-space indent as the source
	// line, with the caret column matching the span start.
	want := "    " + strings.Repeat(" ", 7) + "^~~"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("underline misaligned:\n%s", buf.String())
	}
}

func TestPrettyEmpty(t *testing.T) {
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, diag.New(), diagfmt.PrettyOpts{})
	if buf.Len() != 0 {
		t.Errorf("output for empty diagnostics: %q", buf.String())
	}
}

func TestPrettyMaxTruncates(t *testing.T) {
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, sampleDiagnostics(), diagfmt.PrettyOpts{Max: 1})
	out := buf.String()

	if !strings.Contains(out, "... and 2 more") {
		t.Errorf("truncation notice missing:\n%s", out)
	}
	if strings.Contains(out, "different types between locales") {
		t.Errorf("mismatch printed past the cap:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, sampleDiagnostics(), diagfmt.JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out struct {
		Files []struct {
			Locale string `json:"locale"`
			File   string `json:"file"`
			Keys   []struct {
				Path   string `json:"path"`
				Kind   string `json:"kind"`
				Errors []struct {
					Kind  string `json:"kind"`
					Start uint32 `json:"start"`
					End   uint32 `json:"end"`
				} `json:"errors"`
			} `json:"keys"`
		} `json:"files"`
		Mismatches []struct {
			Path    string `json:"path"`
			Name    string `json:"name"`
			Locales []struct {
				Locale string `json:"locale"`
				Type   string `json:"type"`
			} `json:"locales"`
		} `json:"mismatches"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Total != 3 {
		t.Errorf("total = %d", out.Total)
	}
	if len(out.Files) != 1 || out.Files[0].File != "en.toml" || len(out.Files[0].Keys) != 2 {
		t.Fatalf("files = %+v", out.Files)
	}
	// Entries sorted by path: greet before x.
	greet := out.Files[0].Keys[0]
	if greet.Path != "greet" || greet.Kind != "interpolation-errors" {
		t.Errorf("first key = %+v", greet)
	}
	if len(greet.Errors) != 1 || greet.Errors[0].Kind != "invalid-identifier" ||
		greet.Errors[0].Start != 7 || greet.Errors[0].End != 10 {
		t.Errorf("errors = %+v", greet.Errors)
	}
	if len(out.Mismatches) != 1 || out.Mismatches[0].Name != "n" || len(out.Mismatches[0].Locales) != 2 {
		t.Errorf("mismatches = %+v", out.Mismatches)
	}
}
