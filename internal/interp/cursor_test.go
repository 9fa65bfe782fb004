package interp

import (
	"testing"
)

func TestCursorBasics(t *testing.T) {
	c := newCursor("ab")

	if c.eof() {
		t.Fatal("fresh cursor at EOF")
	}
	if got := c.peek(); got != 'a' {
		t.Errorf("peek = %q, want 'a'", got)
	}
	if got := c.bump(); got != 'a' {
		t.Errorf("bump = %q, want 'a'", got)
	}
	if got := c.bump(); got != 'b' {
		t.Errorf("bump = %q, want 'b'", got)
	}
	if !c.eof() {
		t.Error("cursor not at EOF after consuming everything")
	}
	if got := c.bump(); got != 0 {
		t.Errorf("bump at EOF = %q, want 0", got)
	}
}

func TestCursorPeek2(t *testing.T) {
	c := newCursor("xy")
	b0, b1, ok := c.peek2()
	if !ok || b0 != 'x' || b1 != 'y' {
		t.Errorf("peek2 = %q, %q, %v", b0, b1, ok)
	}

	c.bump()
	if _, _, ok := c.peek2(); ok {
		t.Error("peek2 near EOF reported ok")
	}
}

func TestCursorMarkAndSpan(t *testing.T) {
	c := newCursor("hello")
	c.bump()
	m := c.mark()
	c.bump()
	c.bump()

	sp := c.spanFrom(m)
	if sp.Start != 1 || sp.End != 3 {
		t.Errorf("span = %v, want 1-3", sp)
	}
	if got := sp.Text("hello"); got != "el" {
		t.Errorf("span text = %q, want %q", got, "el")
	}
}

func TestCursorEat(t *testing.T) {
	c := newCursor("{x")
	if !c.eat('{') {
		t.Error("eat('{') failed on matching byte")
	}
	if c.eat('{') {
		t.Error("eat('{') succeeded on non-matching byte")
	}
	if got := c.peek(); got != 'x' {
		t.Errorf("peek after eat = %q, want 'x'", got)
	}
}

func TestCursorEmptyInput(t *testing.T) {
	c := newCursor("")
	if !c.eof() {
		t.Error("empty cursor not at EOF")
	}
	if got := c.peek(); got != 0 {
		t.Errorf("peek on empty = %q, want 0", got)
	}
}
