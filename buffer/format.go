package buffer

import "fmt"

// Format renders a fmt-style format into a fresh string buffer, shrunk to
// fit. The format mini-language is fmt's, passed through unmodified; this
// package owns only the destination buffer.
func Format(format string, args ...any) *Buffer {
	b := FromCString(fmt.Sprintf(format, args...))
	b.ShrinkToFit()
	return b
}

// SetFormat replaces b's contents with the rendered format.
func (b *Buffer) SetFormat(format string, args ...any) {
	b.MoveFrom(Format(format, args...))
}

// AppendFormat renders the format into a temporary buffer and
// concatenates it onto b.
func (b *Buffer) AppendFormat(format string, args ...any) {
	t := Format(format, args...)
	b.Concat(t.CStr())
	t.Release()
}

// WideFormat renders a fmt-style format into a fresh wide-string buffer,
// shrunk to fit.
func WideFormat(format string, args ...any) *Buffer {
	b := FromWideString(fmt.Sprintf(format, args...))
	b.ShrinkToFit()
	return b
}

// SetWideFormat replaces b's contents with the rendered wide format.
func (b *Buffer) SetWideFormat(format string, args ...any) {
	b.MoveFrom(WideFormat(format, args...))
}

// AppendWideFormat renders the wide format into a temporary buffer and
// concatenates it onto b.
func (b *Buffer) AppendWideFormat(format string, args ...any) {
	t := WideFormat(format, args...)
	b.WideConcat(t.WideStr())
	t.Release()
}
