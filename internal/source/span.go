// Package source holds byte-offset spans over translation strings.
// Offsets are byte positions, not rune positions, so spans stay valid
// for multibyte text.
package source

import (
	"fmt"
)

type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover expands the span to include other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Text returns the slice of src the span covers. Out-of-range spans
// return the empty string instead of panicking.
func (s Span) Text(src string) string {
	if int(s.Start) > len(src) || int(s.End) > len(src) || s.Start > s.End {
		return ""
	}
	return src[s.Start:s.End]
}
