package buffer

import "unicode/utf16"

// Wide strings are stored as UTF-16 code units, one uint16 element per
// unit, with a zero-valued terminator element. Go string arguments are
// encoded at the boundary; lengths and truncation counts are in code
// units, not runes.

// FromWideString returns a buffer holding s as UTF-16 plus a terminator.
func FromWideString(s string) *Buffer {
	b := New()
	b.WideConcat(s)
	return b
}

// WideStr guarantees wide termination, appending a terminator element if
// the buffer is empty or ends with a non-zero unit, and returns the
// content before the first terminator decoded as a Go string.
func (b *Buffer) WideStr() string {
	v := ViewOf[uint16](b)
	if n := v.Len(); n == 0 || *v.At(n-1) != 0 {
		v.Push(0)
	}
	u := v.Slice()
	return string(utf16.Decode(u[:wcsLen(u)]))
}

// ShrinkToWideStr resizes down to the terminated wide content and
// releases spare capacity. The wide analog of ShrinkToCStr.
func (b *Buffer) ShrinkToWideStr() {
	v := ViewOf[uint16](b)
	i := wcsLen(v.Slice())
	if i == v.Len() {
		v.Push(0)
	}
	v.Resize(i + 1)
	b.ShrinkToFit()
}

// WideConcat appends s as UTF-16 and a terminator, first dropping the
// existing trailing terminator if present.
func (b *Buffer) WideConcat(s string) {
	u := utf16.Encode([]rune(s))
	b.dropWideTerminator()
	ViewOf[uint16](b).PushSlice(u[:wcsLen(u)])
	Push[uint16](b, 0)
}

// WideConcatN is WideConcat limited to the first n code units of s.
func (b *Buffer) WideConcatN(s string, n int) {
	u := utf16.Encode([]rune(s))
	if n < 0 {
		n = 0
	}
	if n > len(u) {
		n = len(u)
	}
	if i := wcsLen(u); i < n {
		n = i
	}
	b.dropWideTerminator()
	ViewOf[uint16](b).PushSlice(u[:n])
	Push[uint16](b, 0)
}

// WideConcatChar appends a single code unit via the concat rule.
func (b *Buffer) WideConcatChar(c uint16) {
	b.dropWideTerminator()
	if c != 0 {
		Push[uint16](b, c)
	}
	Push[uint16](b, 0)
}

func (b *Buffer) dropWideTerminator() {
	v := ViewOf[uint16](b)
	if n := v.Len(); n > 0 && *v.At(n-1) == 0 {
		v.Pop()
	}
}

// wcsLen returns the length of u up to its first zero unit.
func wcsLen(u []uint16) int {
	for i, c := range u {
		if c == 0 {
			return i
		}
	}
	return len(u)
}
