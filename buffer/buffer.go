package buffer

import "fmt"

// DefaultCapacity is the capacity of the first allocation made by Reserve
// when a buffer has never allocated. Growth doubles from here.
const DefaultCapacity = 64

// Buffer is a growable byte vector backed by a single contiguous
// allocation. The zero value is an empty buffer with no allocation.
//
// A Buffer's allocation is exclusively owned: copy with CopyFrom, transfer
// with MoveFrom, exchange with Swap. Assigning or dereferencing a Buffer
// value directly aliases the allocation and breaks that ownership.
//
// Buffers are not safe for concurrent use.
type Buffer struct {
	data []byte // len = used length, cap = allocated capacity, nil iff never allocated
}

// New returns an empty buffer with no allocation.
func New() *Buffer {
	return &Buffer{}
}

// FromBytes returns a buffer holding a copy of p.
func FromBytes(p []byte) *Buffer {
	b := New()
	b.Append(p)
	return b
}

// FromBuffer returns a deep copy of src.
func FromBuffer(src *Buffer) *Buffer {
	b := New()
	b.AppendBuffer(src)
	return b
}

// Len returns the number of bytes in use.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the number of bytes allocated.
func (b *Buffer) Cap() int { return cap(b.data) }

// IsEmpty reports whether the buffer holds no bytes.
func (b *Buffer) IsEmpty() bool { return len(b.data) == 0 }

// Bytes returns the stored bytes. The slice aliases the buffer's storage
// and is valid only until the next mutating call.
func (b *Buffer) Bytes() []byte { return b.data }

// Reset empties the buffer but keeps the allocation.
func (b *Buffer) Reset() {
	fillBytes(b.data[:cap(b.data)])
	b.data = b.data[:0]
}

// Release empties the buffer and drops the allocation, returning it to
// the never-allocated state.
func (b *Buffer) Release() {
	fillBytes(b.data[:cap(b.data)])
	b.data = nil
}

// CopyFrom replaces b's contents with a deep copy of src.
// Copying a buffer onto itself is a no-op.
func (b *Buffer) CopyFrom(src *Buffer) {
	if b == src {
		return
	}
	b.Release()
	b.Append(src.data)
}

// MoveFrom transfers src's allocation to b and empties src.
// Moving a buffer onto itself is a no-op.
func (b *Buffer) MoveFrom(src *Buffer) {
	if b == src {
		return
	}
	b.Release()
	b.data = src.data
	src.data = nil
}

// Swap exchanges the allocations of b and other. Self-swap is safe.
func (b *Buffer) Swap(other *Buffer) {
	b.data, other.data = other.data, b.data
}

// Reserve guarantees capacity of at least n bytes without changing the
// length. A buffer that has never allocated starts at DefaultCapacity;
// otherwise the capacity doubles until it is large enough.
func (b *Buffer) Reserve(n int) {
	if n < 0 {
		fatalf("reserve: negative size %d", n)
	}
	old := cap(b.data)
	capacity := old
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	for capacity < n {
		doubled := capacity * 2
		if doubled <= capacity {
			fatalf("capacity overflow reserving %d bytes", n)
		}
		capacity = doubled
	}
	if capacity > old {
		b.realloc(capacity)
	}
}

// Resize sets the length to n bytes, reserving first when growing.
// Bytes exposed by growth hold unspecified values; callers that need
// zeroed memory must write it themselves. Shrinking never reallocates.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		fatalf("resize: negative size %d", n)
	}
	if n > len(b.data) {
		b.Reserve(n)
	}
	b.data = b.data[:n]
}

// ShrinkToFit halves the capacity while half still holds the contents,
// then reallocates down. Reclaiming memory is only ever done here, on
// explicit request.
func (b *Buffer) ShrinkToFit() {
	size := len(b.data)
	capacity := cap(b.data)
	for capacity > 0 && capacity/2 >= size {
		capacity /= 2
	}
	if capacity != cap(b.data) {
		b.realloc(capacity)
	}
}

// Append appends a copy of p.
func (b *Buffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	old := len(b.data)
	b.Resize(checkedAdd(old, len(p)))
	copy(b.data[old:], p)
}

// AppendString appends the bytes of s.
func (b *Buffer) AppendString(s string) {
	if len(s) == 0 {
		return
	}
	old := len(b.data)
	b.Resize(checkedAdd(old, len(s)))
	copy(b.data[old:], s)
}

// AppendBuffer appends a copy of src's contents.
func (b *Buffer) AppendBuffer(src *Buffer) {
	b.Append(src.data)
}

// Drop removes the last n bytes. Dropping more bytes than the buffer
// holds is fatal.
func (b *Buffer) Drop(n int) {
	if n == 0 {
		return
	}
	old := len(b.data)
	if n < 0 || n > old {
		fatalf("length underflow dropping %d of %d bytes", n, old)
	}
	b.data = b.data[:old-n]
}

// realloc moves the contents into a fresh allocation of exactly capacity
// bytes. capacity must be at least the current length; zero frees.
func (b *Buffer) realloc(capacity int) {
	assertf(capacity >= len(b.data), "realloc below length")
	if capacity == 0 {
		b.data = nil
		return
	}
	next := make([]byte, len(b.data), capacity)
	copy(next, b.data)
	fillBytes(next[len(next):capacity])
	b.data = next
}

func checkedAdd(a, n int) int {
	total := a + n
	if total < a {
		fatalf("length overflow adding %d to %d bytes", n, a)
	}
	return total
}

func checkedMul(count, stride int) int {
	if count < 0 {
		fatalf("negative element count %d", count)
	}
	if count == 0 || stride == 0 {
		return 0
	}
	total := count * stride
	if total/stride != count {
		fatalf("size overflow: %d elements of %d bytes", count, stride)
	}
	return total
}

// fatalf reports a corruption-class condition: a size computation that
// cannot be represented or a broken caller precondition. There is no
// recoverable path, so no error value is returned anywhere in the package.
func fatalf(format string, args ...any) {
	panic("buffer: " + fmt.Sprintf(format, args...))
}
