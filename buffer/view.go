package buffer

import "unsafe"

// View reinterprets a Buffer as a vector of fixed-size elements of type T.
// It carries no state of its own; element counts are derived from the
// buffer's byte length and T's size.
//
// T must be a fixed-size, pointer-free type (integers, floats, and structs
// and arrays of those) with alignment no larger than 8; elements are
// stored in the machine's native byte order. A buffer accessed through
// views of different strides is only consistent if the caller keeps it so.
type View[T any] struct {
	b *Buffer
}

// ViewOf returns a typed view over b.
func ViewOf[T any](b *Buffer) View[T] {
	return View[T]{b: b}
}

// Push appends x to b through a typed view. Shorthand for single values.
func Push[T any](b *Buffer, x T) {
	ViewOf[T](b).Push(x)
}

func sizeOf[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		fatalf("zero-size element type")
	}
	return size
}

// Len returns the number of whole elements stored.
func (v View[T]) Len() int { return v.b.Len() / sizeOf[T]() }

// Cap returns the number of elements the allocation can hold.
func (v View[T]) Cap() int { return v.b.Cap() / sizeOf[T]() }

// Slice returns the stored elements. Like Buffer.Bytes, the slice aliases
// the buffer's storage and is valid only until the next mutating call.
func (v View[T]) Slice() []T {
	n := v.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(v.b.data))), n)
}

// At returns a pointer to element i.
func (v View[T]) At(i int) *T {
	return &v.Slice()[i]
}

// Back returns a pointer to the last element. The view must be non-empty.
func (v View[T]) Back() *T {
	return v.At(v.Len() - 1)
}

// Push appends one element.
func (v View[T]) Push(x T) {
	old := v.b.Len()
	v.b.Resize(checkedAdd(old, sizeOf[T]()))
	*(*T)(unsafe.Pointer(&v.b.data[old])) = x
}

// PushSlice appends a copy of xs.
func (v View[T]) PushSlice(xs []T) {
	if len(xs) == 0 {
		return
	}
	old := v.b.Len()
	v.b.Resize(checkedAdd(old, checkedMul(len(xs), sizeOf[T]())))
	dst := unsafe.Slice((*T)(unsafe.Pointer(&v.b.data[old])), len(xs))
	copy(dst, xs)
}

// Pop removes the last element. Popping an empty view is fatal.
func (v View[T]) Pop() {
	v.b.Drop(sizeOf[T]())
}

// Resize sets the length to n elements.
func (v View[T]) Resize(n int) {
	v.b.Resize(checkedMul(n, sizeOf[T]()))
}

// Reserve guarantees capacity for at least n elements.
func (v View[T]) Reserve(n int) {
	v.b.Reserve(checkedMul(n, sizeOf[T]()))
}
