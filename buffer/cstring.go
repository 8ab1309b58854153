package buffer

import (
	"bytes"
	"strings"
)

// The string builders store content followed by a single zero terminator
// element. Appends keep exactly one trailing terminator; the terminator is
// only forced into existence by CStr, so chains of concatenations never
// pay for repeated termination of intermediate states.

// FromCString returns a buffer holding the bytes of s plus a terminator.
func FromCString(s string) *Buffer {
	b := New()
	b.Concat(s)
	return b
}

// CStr guarantees the contents end with a terminator, appending one if
// the buffer is empty or ends with a non-zero byte, and returns the
// content before the first terminator as a Go string.
func (b *Buffer) CStr() string {
	if n := b.Len(); n == 0 || b.data[n-1] != 0 {
		Push[byte](b, 0)
	}
	i := bytes.IndexByte(b.data, 0)
	return string(b.data[:i])
}

// ShrinkToCStr resizes down to the terminated content, discarding
// anything beyond the first terminator, and releases spare capacity.
// Meant for use after truncating the string in place.
func (b *Buffer) ShrinkToCStr() {
	i := bytes.IndexByte(b.data, 0)
	if i < 0 {
		Push[byte](b, 0)
		i = b.Len() - 1
	}
	b.Resize(i + 1)
	b.ShrinkToFit()
}

// Concat appends s and a terminator, first dropping the existing trailing
// terminator if present. s is truncated at its first NUL byte, so
// concatenation never embeds interior terminators.
func (b *Buffer) Concat(s string) {
	b.dropCTerminator()
	b.AppendString(s[:cstrLen(s)])
	Push[byte](b, 0)
}

// ConcatN is Concat limited to the first n bytes of s.
func (b *Buffer) ConcatN(s string, n int) {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	if i := cstrLen(s); i < n {
		n = i
	}
	b.dropCTerminator()
	b.AppendString(s[:n])
	Push[byte](b, 0)
}

// ConcatByte appends a single character via the concat rule.
func (b *Buffer) ConcatByte(c byte) {
	b.Concat(string([]byte{c}))
}

func (b *Buffer) dropCTerminator() {
	if n := b.Len(); n > 0 && b.data[n-1] == 0 {
		b.Drop(1)
	}
}

// cstrLen returns the length of s up to its first NUL byte.
func cstrLen(s string) int {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}
