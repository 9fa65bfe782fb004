package interp

import (
	"woof/internal/source"
)

// Type is the declared value type of an interpolation. A bare `{name}`
// carries TypeNone; `{name:string}` and `{name:number}` carry the
// respective type.
type Type uint8

const (
	TypeNone Type = iota
	TypeString
	TypeNumber
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	}
	return "unknown"
}

// ParseType resolves a type suffix against the fixed vocabulary.
func ParseType(s string) (Type, bool) {
	switch s {
	case "string":
		return TypeString, true
	case "number":
		return TypeNumber, true
	}
	return TypeNone, false
}

// Occurrence is one recognized placeholder in a translation string.
// Span covers the whole token, opening brace through closing brace.
type Occurrence struct {
	Name string
	Type Type
	Span source.Span
}

// ErrorKind classifies interpolation parse errors.
type ErrorKind uint8

const (
	// ErrEmpty: `{}` or `{:string}` — no name between the braces.
	ErrEmpty ErrorKind = iota
	// ErrInvalidIdentifier: the name violates the identifier rules,
	// including nested-brace blocks.
	ErrInvalidIdentifier
	// ErrUnclosed: end of string inside an open interpolation.
	ErrUnclosed
	// ErrInvalidType: type suffix outside the string/number vocabulary.
	ErrInvalidType
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEmpty:
		return "empty"
	case ErrInvalidIdentifier:
		return "invalid-identifier"
	case ErrUnclosed:
		return "unclosed"
	case ErrInvalidType:
		return "invalid-type"
	}
	return "unknown"
}

// ParseError is one recovered scan failure. Detail carries the offending
// text (the bad name or type suffix) when the kind has one.
type ParseError struct {
	Kind   ErrorKind
	Span   source.Span
	Detail string
}

func (e ParseError) Message() string {
	switch e.Kind {
	case ErrEmpty:
		return "empty interpolation name"
	case ErrInvalidIdentifier:
		return "invalid interpolation identifier: " + e.Detail
	case ErrUnclosed:
		return "unclosed interpolation"
	case ErrInvalidType:
		return "invalid interpolation type: " + e.Detail
	}
	return "unknown interpolation error"
}
