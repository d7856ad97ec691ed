package containers

import (
	"cadgeom/src/cad/geometry"
)

// LineArray is an Array of line segments.
type LineArray struct {
	Array[geometry.Line]
}

// NewLineArray returns size degenerate lines at the origin.
func NewLineArray(size int) *LineArray {
	return &LineArray{Array: *NewArray[geometry.Line](size)}
}

func LineArrayFrom(lines []geometry.Line) *LineArray {
	return &LineArray{Array: *FromSlice(lines)}
}

func (a *LineArray) Clone() *LineArray {
	return &LineArray{Array: *a.Array.Clone()}
}

func (a *LineArray) Equal(other *LineArray) bool {
	if other == nil {
		return false
	}
	return a.Array.Equal(&other.Array)
}

// TotalLength sums the lengths of every segment.
func (a *LineArray) TotalLength() float64 {
	lengths := make([]float64, len(a.data))
	for i := range a.data {
		lengths[i] = a.data[i].Length()
	}
	return sum(lengths)
}

// Longest returns the first segment of greatest length. ok is false when the
// array is empty.
func (a *LineArray) Longest() (index int, l geometry.Line, ok bool) {
	if len(a.data) == 0 {
		return 0, geometry.Line{}, false
	}
	best := a.data[0].Length()
	for i := 1; i < len(a.data); i++ {
		if d := a.data[i].Length(); d > best {
			best, index = d, i
		}
	}
	return index, a.data[index], true
}

// Containing returns the indices of the segments p lies on.
func (a *LineArray) Containing(p geometry.Point) (indices []int) {
	for i := range a.data {
		if a.data[i].ContainsPoint(p) {
			indices = append(indices, i)
		}
	}
	return
}

func (a *LineArray) String() string {
	return render("lines", a.data)
}
