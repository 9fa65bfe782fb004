// Package diag accumulates content-level problems found while building
// a translation catalog. The accumulator is threaded through the whole
// recursive build; nothing recorded here ever aborts a build. It is not
// a global: each build owns exactly one Diagnostics value and hands it
// back to the caller.
package diag

import (
	"woof/internal/interp"
)

// KeyDiagnosticKind classifies per-key structural diagnostics.
type KeyDiagnosticKind uint8

const (
	// UnsupportedValue: the key held a TOML value that is neither a
	// string nor a table.
	UnsupportedValue KeyDiagnosticKind = iota
	// InterpolationErrors: the key's translation failed interpolation
	// scanning.
	InterpolationErrors
)

func (k KeyDiagnosticKind) String() string {
	switch k {
	case UnsupportedValue:
		return "unsupported-value"
	case InterpolationErrors:
		return "interpolation-errors"
	}
	return "unknown"
}

// KeyDiagnostic is one structural problem at a dotted key path.
// ValueType is set for UnsupportedValue; Source and Errors for
// InterpolationErrors. Source is the escaped translation the scanner
// ran over, so spans in Errors index into it directly — a renderer
// needs no further lookups.
type KeyDiagnostic struct {
	Kind      KeyDiagnosticKind
	ValueType string
	Source    string
	Errors    []interp.ParseError
}

// FileKey identifies the origin of a structural diagnostic. Namespace
// is empty for flat builds; it is an explicit field rather than a path
// prefix so identical inner paths in two namespaces stay apart.
type FileKey struct {
	Namespace string
	Locale    string
	File      string
}

// MismatchKey identifies one placeholder whose type disagrees between
// locales.
type MismatchKey struct {
	Namespace string
	Path      string
	Name      string
}

// LocaleType is one side of a type mismatch.
type LocaleType struct {
	Locale string
	Type   interp.Type
}
