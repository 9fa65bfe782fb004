package interp

import (
	"fmt"

	"fortio.org/safecast"

	"woof/internal/source"
)

// cursor is a byte position inside a single translation string.
type cursor struct {
	src string
	off uint32
}

func newCursor(src string) cursor {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		panic(fmt.Errorf("translation too large: %w", err))
	}
	return cursor{src: src, off: 0}
}

func (c *cursor) limit() uint32 {
	lim, err := safecast.Conv[uint32](len(c.src))
	if err != nil {
		panic(fmt.Errorf("translation too large: %w", err))
	}
	return lim
}

func (c *cursor) eof() bool {
	return c.off >= c.limit()
}

// peek читает текущий байт, если есть, иначе возвращает 0
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *cursor) peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.src[c.off], c.src[c.off+1], true
}

// bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// mark это метка, что бы быстро получать Span читаемого фрагмента
type mark uint32

func (c *cursor) mark() mark {
	return mark(c.off)
}

func (c *cursor) spanFrom(m mark) source.Span {
	return source.Span{Start: uint32(m), End: c.off}
}

// eat consumes the next byte if it matches the provided byte.
func (c *cursor) eat(b byte) bool {
	if !c.eof() && c.src[c.off] == b {
		c.off++
		return true
	}
	return false
}
