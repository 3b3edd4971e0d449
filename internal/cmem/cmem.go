// Package cmem converts between Go memory and the C memory native GL entry
// points read and write.
//
// Addresses handed to native code travel as uintptr, so the memory behind
// them must live on the heap: the Go heap does not move, goroutine stacks
// do. Alloc and CString always return heap memory.
package cmem

import "unsafe"

// Alloc returns a heap-allocated slice of n zero values.
//
//go:noinline
func Alloc[T any](n int) []T {
	return make([]T, n)
}

// CString returns s as a NUL-terminated byte slice on the heap.
//
//go:noinline
func CString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// Addr returns the address of the first element of s, or 0 for an empty
// slice. The caller keeps s alive until native code is done with it.
func Addr[T any](s []T) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[0]))
}

// Pointer converts the native address p. The conversion goes through
// memory rather than unsafe.Pointer(p), which checkptr rejects when p is a
// Go heap address handed back by native code.
func Pointer(p uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&p))
}

// Slice returns a slice over n values of type T at p without copying.
// A zero p yields nil.
func Slice[T any](p uintptr, n int) []T {
	if p == 0 || n <= 0 {
		return nil
	}
	return unsafe.Slice((*T)(Pointer(p)), n)
}

// GoString copies the NUL-terminated string at p. A zero p yields "".
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	start := Pointer(p)
	n := 0
	for *(*byte)(unsafe.Add(start, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(start), n))
}

// Bytes returns a slice over n bytes of native memory at p without copying.
// A zero p yields nil.
func Bytes(p uintptr, n int) []byte { return Slice[byte](p, n) }
