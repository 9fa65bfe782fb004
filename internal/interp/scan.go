// Package interp scans translation strings for interpolation
// placeholders: `{name}` or `{name:type}`, with `{{` escaping a literal
// brace. The scanner recovers from malformed input and reports every
// problem it finds in a single left-to-right pass.
package interp

import (
	"strings"

	"woof/internal/source"
)

// Parse scans one translation string and returns all recognized
// occurrences plus all recovered parse errors. It never fails: malformed
// blocks produce at most one error each and scanning continues after
// them.
func Parse(s string) ([]Occurrence, []ParseError) {
	// Fast path: nothing to interpolate.
	if !strings.Contains(s, "{") {
		return nil, nil
	}

	sc := scanner{cur: newCursor(s)}
	sc.run()
	return sc.occs, sc.errs
}

type scanner struct {
	cur  cursor
	occs []Occurrence
	errs []ParseError
}

func (sc *scanner) run() {
	for !sc.cur.eof() {
		if sc.cur.peek() != '{' {
			sc.cur.bump()
			continue
		}
		if _, b1, ok := sc.cur.peek2(); ok && b1 == '{' {
			// `{{` escapes a literal brace: not an occurrence, not an error.
			sc.cur.bump()
			sc.cur.bump()
			continue
		}
		sc.scanInterpolation()
	}
}

// scanInterpolation consumes one `{...}` block. The cursor sits on a
// lone opening brace. On any failure the block is reported once and the
// scanner resumes in the closed state, bounding error cascades to one
// diagnostic per malformed block.
func (sc *scanner) scanInterpolation() {
	start := sc.cur.mark()
	sc.cur.bump() // '{'
	nameStart := sc.cur.mark()

	var typeStart mark
	inType := false

	for !sc.cur.eof() {
		switch b := sc.cur.peek(); b {
		case '{':
			if _, b1, ok := sc.cur.peek2(); ok && b1 == '{' {
				// Escaped brace inside an open interpolation: consumed as
				// name/type text; validation rejects it below.
				sc.cur.bump()
				sc.cur.bump()
				continue
			}
			// Nested interpolation. Resynchronize past the next '}' so the
			// whole block costs exactly one diagnostic.
			for !sc.cur.eof() {
				if sc.cur.bump() == '}' {
					break
				}
			}
			sp := sc.cur.spanFrom(start)
			sc.errs = append(sc.errs, ParseError{
				Kind:   ErrInvalidIdentifier,
				Span:   sp,
				Detail: sp.Text(sc.cur.src),
			})
			return

		case ':':
			if !inType {
				name := sc.cur.spanFrom(nameStart)
				sc.cur.bump()
				if !sc.checkName(name, start) {
					return
				}
				typeStart = sc.cur.mark()
				inType = true
				continue
			}
			sc.cur.bump()

		case '}':
			if inType {
				typeSpan := sc.cur.spanFrom(typeStart)
				sc.cur.bump()
				// The name was already validated at the ':'.
				if !typeSpan.Empty() {
					text := typeSpan.Text(sc.cur.src)
					typ, ok := ParseType(text)
					if !ok {
						sc.errs = append(sc.errs, ParseError{
							Kind:   ErrInvalidType,
							Span:   typeSpan,
							Detail: text,
						})
						return
					}
					sc.occs = append(sc.occs, Occurrence{
						Name: sc.nameText(nameStart, typeSpan.Start-1),
						Type: typ,
						Span: sc.cur.spanFrom(start),
					})
					return
				}
				// An empty suffix (`{n:}`) counts as no suffix at all.
				sc.occs = append(sc.occs, Occurrence{
					Name: sc.nameText(nameStart, typeSpan.Start-1),
					Type: TypeNone,
					Span: sc.cur.spanFrom(start),
				})
				return
			}
			name := sc.cur.spanFrom(nameStart)
			sc.cur.bump()
			if !sc.checkName(name, start) {
				return
			}
			sc.occs = append(sc.occs, Occurrence{
				Name: name.Text(sc.cur.src),
				Type: TypeNone,
				Span: sc.cur.spanFrom(start),
			})
			return

		default:
			sc.cur.bump()
		}
	}

	// Ran off the end with the block still open.
	sc.errs = append(sc.errs, ParseError{
		Kind: ErrUnclosed,
		Span: sc.cur.spanFrom(start),
	})
}

func (sc *scanner) nameText(nameStart mark, colon uint32) string {
	return sc.cur.src[nameStart:colon]
}

// checkName validates the accumulated name region and reports a
// diagnostic on failure. Empty names span the token scanned so far;
// invalid names span exactly the offending text.
func (sc *scanner) checkName(name source.Span, start mark) bool {
	text := name.Text(sc.cur.src)
	if text == "" {
		sc.errs = append(sc.errs, ParseError{
			Kind: ErrEmpty,
			Span: sc.cur.spanFrom(start),
		})
		return false
	}
	if !isNameStartByte(text[0]) || !allNameBytes(text[1:]) {
		sc.errs = append(sc.errs, ParseError{
			Kind:   ErrInvalidIdentifier,
			Span:   name,
			Detail: text,
		})
		return false
	}
	return true
}

// Interpolation names are deliberately narrower than general
// identifiers: they must start with an ASCII letter (no underscore, no
// Unicode) and continue with ASCII letters, digits or underscores.
func isNameStartByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isNameByte(b byte) bool {
	return isNameStartByte(b) || b == '_' || (b >= '0' && b <= '9')
}

func allNameBytes(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isNameByte(s[i]) {
			return false
		}
	}
	return true
}
