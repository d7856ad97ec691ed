// Package containers implements a growable, indexable array whose index
// accessors never panic, along with geometric variants that answer aggregate
// queries over points, lines and circles.
//
// Out-of-range access is resolved, not rejected:
//   - GetElement and At fall back to slot 0.
//   - SetElement ignores the write.
//
// At returns a pointer, so writing through an out-of-range At overwrites
// slot 0. Callers that prefer an error use Element and Put instead.
package containers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/slices"
)

// DefaultSize is the number of slots NewDefaultArray allocates.
const DefaultSize = 10

// Cloner is implemented by element types whose copies must not share storage
// with the original. Array.Clone calls it on every element.
type Cloner[V any] interface {
	Clone() *V
}

// Array owns a contiguous buffer of T. Its zero value is an empty array.
//
// Elements are stored by value. Clone returns an array that shares no
// storage with the receiver.
type Array[T any] struct {
	data []T
}

// NewArray returns an array of size zero-valued elements.
// A negative size yields an empty array.
func NewArray[T any](size int) *Array[T] {
	return &Array[T]{data: make([]T, max(size, 0))}
}

// NewDefaultArray returns NewArray(DefaultSize).
func NewDefaultArray[T any]() *Array[T] {
	return NewArray[T](DefaultSize)
}

// FromSlice returns an array holding a copy of s.
func FromSlice[T any](s []T) *Array[T] {
	return (&Array[T]{data: s}).Clone()
}

// Slice returns a copy of the elements.
func (a *Array[T]) Slice() []T {
	return a.Clone().data
}

// Size returns the number of elements.
func (a *Array[T]) Size() int {
	return len(a.data)
}

func (a *Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

func (a *Array[T]) inBounds(i int) bool {
	return i >= 0 && i < len(a.data)
}

// GetElement returns the element at i, or element 0 when i is out of range.
// An empty array returns the zero value.
func (a *Array[T]) GetElement(i int) T {
	if a.inBounds(i) {
		return a.data[i]
	}
	if len(a.data) == 0 {
		var zero T
		return zero
	}
	return a.data[0]
}

// SetElement writes v at i. Out-of-range writes are ignored.
func (a *Array[T]) SetElement(i int, v T) {
	if a.inBounds(i) {
		a.data[i] = v
	}
}

// At returns a pointer to slot i, or to slot 0 when i is out of range, so
// that *a.At(n) = v on an array of size n overwrites element 0.
//
// On an empty array At returns a pointer to a detached zero value; writes
// through it are lost.
func (a *Array[T]) At(i int) *T {
	if a.inBounds(i) {
		return &a.data[i]
	}
	if len(a.data) == 0 {
		return new(T)
	}
	return &a.data[0]
}

// Element is the strict counterpart of GetElement.
func (a *Array[T]) Element(i int) (T, error) {
	if !a.inBounds(i) {
		var zero T
		return zero, newIndexError(i, len(a.data), 1)
	}
	return a.data[i], nil
}

// Put is the strict counterpart of SetElement.
func (a *Array[T]) Put(i int, v T) error {
	if !a.inBounds(i) {
		return newIndexError(i, len(a.data), 1)
	}
	a.data[i] = v
	return nil
}

// Push appends v.
func (a *Array[T]) Push(v T) {
	a.data = append(a.data, v)
}

// Pop removes and returns the last element. ok is false when a is empty.
func (a *Array[T]) Pop() (v T, ok bool) {
	n := len(a.data)
	if n == 0 {
		return v, false
	}
	v = a.data[n-1]
	var zero T
	a.data[n-1] = zero
	a.data = a.data[:n-1]
	return v, true
}

// Resize grows the array with zero values or truncates it so that it holds
// exactly n elements. A negative n empties the array.
func (a *Array[T]) Resize(n int) {
	n = max(n, 0)
	size := len(a.data)
	switch {
	case n < size:
		clear(a.data[n:])
		a.data = a.data[:n]
	case n > size:
		a.data = slices.Grow(a.data, n-size)
		a.data = a.data[:n]
		clear(a.data[size:])
	}
}

// Clear removes every element and keeps the buffer for reuse.
func (a *Array[T]) Clear() {
	a.Resize(0)
}

// Each calls fn for every element in index order.
func (a *Array[T]) Each(fn func(i int, v T)) {
	for i := range a.data {
		fn(i, a.data[i])
	}
}

// EachMut calls fn with a pointer to every element in index order.
func (a *Array[T]) EachMut(fn func(i int, v *T)) {
	for i := range a.data {
		fn(i, &a.data[i])
	}
}

// Clone returns a deep copy of the array.
// If T implements Cloner, each element is cloned; otherwise it is copied by value.
func (a *Array[T]) Clone() *Array[T] {
	var t T
	if _, isClonable := any(&t).(Cloner[T]); !isClonable {
		return &Array[T]{data: slices.Clone(a.data)}
	}

	data := make([]T, len(a.data))
	for i := range a.data {
		data[i] = *any(&a.data[i]).(Cloner[T]).Clone()
	}
	return &Array[T]{data: data}
}

// elementEquality lets cmp descend into elements without an Equal method,
// including nested arrays, and treats nil and empty buffers alike.
var elementEquality = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
}

// Equal reports whether both arrays hold equal elements in the same order.
// Elements are compared with their Equal method when they have one.
// A nil other is equal to nothing.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if other == nil {
		return false
	}
	if len(a.data) != len(other.data) {
		return false
	}
	if len(a.data) == 0 {
		return true
	}
	return cmp.Equal(a.data, other.data, elementEquality...)
}

func (a *Array[T]) String() string {
	return render("elements", a.data)
}

func render[T any](label string, data []T) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Array[size: %d, %s: [", len(data), label)
	for i := range data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, data[i])
	}
	sb.WriteString("]]")
	return sb.String()
}
