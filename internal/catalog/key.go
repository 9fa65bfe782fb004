// Package catalog builds and holds the validated translation tree: one
// key-ordered module tree merged across every locale, with per-message
// interpolation records and the diagnostics gathered along the way.
package catalog

import (
	"sort"

	"woof/internal/sanitize"
)

// Locale is an opaque, case-sensitive locale identifier ("en",
// "fr-CA"). Ordering is plain lexical ordering for deterministic
// output.
type Locale string

// Key pairs a translation key as written in source with its sanitized
// form safe for generated identifiers. Sanitized is a pure function of
// Literal, so identity and ordering follow the literal alone.
type Key struct {
	Literal   string
	Sanitized string
}

func NewKey(literal string) Key {
	return Key{Literal: literal, Sanitized: sanitize.Key(literal)}
}

// Translation is one locale's string for a key. Escaped is the
// template-literal-ready form the scanner and materializer operate on;
// Raw is preserved for diagnostics.
type Translation struct {
	Raw     string
	Escaped string
}

func NewTranslation(raw string) Translation {
	return Translation{Raw: raw, Escaped: sanitize.EscapeTranslation(raw)}
}

func sortedLocales[V any](m map[Locale]V) []Locale {
	out := make([]Locale, 0, len(m))
	for loc := range m {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedKeys[V any](m map[Key]V) []Key {
	out := make([]Key, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Literal < out[j].Literal })
	return out
}
