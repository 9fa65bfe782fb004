package catalog

import (
	"testing"

	"woof/internal/interp"
	"woof/internal/source"
)

// mkMessage builds a single-locale message the way the builder would,
// so template tests stay in sync with real scan offsets.
func mkMessage(t *testing.T, locale, raw string) *Message {
	t.Helper()
	tr := NewTranslation(raw)
	occs, errs := interp.Parse(tr.Escaped)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", raw, errs)
	}

	m := newMessage()
	m.translations[Locale(locale)] = tr
	for _, o := range occs {
		k := NewKey(o.Name)
		entry, ok := m.interps[k]
		if !ok {
			entry = &Interpolation{
				typ:    o.Type,
				ranges: make(map[Locale]source.Span, 1),
			}
			m.interps[k] = entry
		}
		entry.ranges[Locale(locale)] = o.Span
	}
	return m
}

func expectTemplate(t *testing.T, msg *Message, locale, want string) {
	t.Helper()
	got, ok := msg.Template(Locale(locale))
	if !ok {
		t.Fatalf("Template(%q) missing", locale)
	}
	if got != want {
		t.Errorf("Template(%q) = %q, want %q", locale, got, want)
	}
}

func TestTemplateBasic(t *testing.T) {
	msg := mkMessage(t, "en", "Hello {name}, you have {count} messages")
	expectTemplate(t, msg, "en", "Hello ${args.name}, you have ${args.count} messages")
}

func TestTemplateMissingLocale(t *testing.T) {
	msg := mkMessage(t, "en", "Hello {name}")
	if got, ok := msg.Template(Locale("fr")); ok {
		t.Errorf("Template for missing locale returned %q", got)
	}
}

func TestTemplateSanitizedKeys(t *testing.T) {
	// Reserved words pick up the underscore suffix in the output token.
	msg := mkMessage(t, "en", "Class: {class}, function: {function}")
	expectTemplate(t, msg, "en", "Class: ${args.class_}, function: ${args.function_}")
}

func TestTemplateSubstitutionOrder(t *testing.T) {
	// Back-to-front substitution keeps earlier offsets valid even though
	// every replacement changes the string length.
	msg := mkMessage(t, "en", "{a} {b} {c} {d}")
	expectTemplate(t, msg, "en", "${args.a} ${args.b} ${args.c} ${args.d}")
}

func TestTemplateNoInterpolations(t *testing.T) {
	msg := mkMessage(t, "en", "No interpolations here")
	expectTemplate(t, msg, "en", "No interpolations here")
}

func TestTemplateCollapsesBraceEscapes(t *testing.T) {
	msg := mkMessage(t, "en", "{{literal}} and {name}")
	expectTemplate(t, msg, "en", "{literal}} and ${args.name}")
}

func TestTemplateMultibyteText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Hello 🌍 world! Welcome {name}!", "Hello 🌍 world! Welcome ${args.name}!"},
		{"Café {name}", "Café ${args.name}"},
		{"中文 {count:number} 测试", "中文 ${args.count} 测试"},
		{"Ñiño {age:number} años", "Ñiño ${args.age} años"},
	}
	for _, tt := range tests {
		msg := mkMessage(t, "en", tt.raw)
		expectTemplate(t, msg, "en", tt.want)
	}
}

func TestTemplateEscapedTranslation(t *testing.T) {
	// Backticks survive escaped; only the interpolation is rewritten.
	msg := mkMessage(t, "en", "Path: C:\\Users\\{username}")
	expectTemplate(t, msg, "en", "Path: C:\\\\Users\\\\${args.username}")
}

func TestTemplateEmptyString(t *testing.T) {
	msg := mkMessage(t, "en", "")
	expectTemplate(t, msg, "en", "")
}
