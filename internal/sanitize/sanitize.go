// Package sanitize rewrites translation keys into identifiers that are
// safe to emit into generated JavaScript/TypeScript, and escapes
// translation text for template-literal output.
package sanitize

import (
	"strings"
	"unicode"
)

// Key makes a translation key safe for use as a generated identifier:
// non-alphanumeric runes (except underscore) are stripped, a leading
// digit gets an underscore prefix, and reserved words get an underscore
// suffix.
func Key(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	s := b.String()

	if s != "" {
		if r := []rune(s)[0]; unicode.IsDigit(r) {
			s = "_" + s
		}
	}
	if reservedWords[s] {
		s += "_"
	}
	return s
}

// EscapeTranslation escapes a translation string for embedding in a
// JavaScript template literal: backticks, backslashes and `${` are
// escaped; interpolation patterns like `{name}` pass through untouched.
func EscapeTranslation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '`':
			b.WriteString("\\`")
		case '\\':
			b.WriteString("\\\\")
		case '$':
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteString("\\$")
			} else {
				b.WriteByte('$')
			}
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// IsValidIdentifier reports whether s matches [a-zA-Z][a-zA-Z0-9_]*.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	b := s[0]
	if !(b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z') {
		return false
	}
	for i := 1; i < len(s); i++ {
		b := s[i]
		if b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_' {
			continue
		}
		return false
	}
	return true
}
