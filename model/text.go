package model

import (
	"strconv"
	"time"
)

// Buffer capacities for each label. A capacity counts one byte of terminator
// headroom, so a Text holds at most capacity-1 bytes of content.
const (
	TimeCapacity    = 8  // HH:MM
	DateCapacity    = 11 // YYYY-MM-DD
	DayCapacity     = 20 // WEDNESDAY-SEPTEMBER
	PercentCapacity = 4  // 0-100

	maxCapacity = DayCapacity
)

// Text is a fixed-capacity label buffer. Writes that do not fit are rejected
// with ErrTextOverflow and leave the previous content in place.
type Text struct {
	buf [maxCapacity]byte
	cap uint8
	n   uint8
}

// NewText returns an empty Text with the given capacity. Capacities larger
// than the largest label are truncated to it.
func NewText(capacity int) Text {
	if capacity > maxCapacity {
		capacity = maxCapacity
	}
	if capacity < 0 {
		capacity = 0
	}
	return Text{cap: uint8(capacity)}
}

// Cap returns the buffer capacity, terminator included.
func (t *Text) Cap() int { return int(t.cap) }

// Len returns the length of the content.
func (t *Text) Len() int { return int(t.n) }

func (t *Text) String() string { return string(t.buf[:t.n]) }

// Bytes returns the content. The slice aliases the buffer.
func (t *Text) Bytes() []byte { return t.buf[:t.n] }

// Set replaces the content with s.
func (t *Text) Set(s string) error {
	if !t.fits(len(s)) {
		return ErrTextOverflow
	}
	t.n = uint8(copy(t.buf[:], s))
	return nil
}

// SetTime replaces the content with tm formatted by layout.
func (t *Text) SetTime(tm time.Time, layout string) error {
	var scratch [2 * maxCapacity]byte
	return t.setBytes(tm.AppendFormat(scratch[:0], layout))
}

// SetInt replaces the content with the decimal form of v.
func (t *Text) SetInt(v int) error {
	var scratch [maxCapacity]byte
	return t.setBytes(strconv.AppendInt(scratch[:0], int64(v), 10))
}

// Upper converts ASCII lowercase letters in the first n bytes of the content
// to uppercase. n is bounded by the content length; bytes past the content are
// never touched.
func (t *Text) Upper(n int) {
	if n > int(t.n) {
		n = int(t.n)
	}
	for i := 0; i < n; i++ {
		if c := t.buf[i]; 'a' <= c && c <= 'z' {
			t.buf[i] = c - ('a' - 'A')
		}
	}
}

func (t *Text) setBytes(b []byte) error {
	if !t.fits(len(b)) {
		return ErrTextOverflow
	}
	t.n = uint8(copy(t.buf[:], b))
	return nil
}

func (t *Text) fits(n int) bool {
	return n < int(t.cap)
}
