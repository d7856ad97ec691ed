package containers

import (
	"cadgeom/src/cad/geometry"
)

// CircleArray is an Array of circles.
type CircleArray struct {
	Array[geometry.Circle]
}

// NewCircleArray returns size zero-radius circles at the origin.
func NewCircleArray(size int) *CircleArray {
	return &CircleArray{Array: *NewArray[geometry.Circle](size)}
}

func CircleArrayFrom(circles []geometry.Circle) *CircleArray {
	return &CircleArray{Array: *FromSlice(circles)}
}

func (a *CircleArray) Clone() *CircleArray {
	return &CircleArray{Array: *a.Array.Clone()}
}

func (a *CircleArray) Equal(other *CircleArray) bool {
	if other == nil {
		return false
	}
	return a.Array.Equal(&other.Array)
}

// TotalArea sums the areas of the circles. Overlaps are counted once per circle.
func (a *CircleArray) TotalArea() float64 {
	areas := make([]float64, len(a.data))
	for i := range a.data {
		areas[i] = a.data[i].Area()
	}
	return sum(areas)
}

// Intersections returns every index pair {i, j}, i < j, whose circles
// intersect, ordered by i then j.
func (a *CircleArray) Intersections() (pairs [][2]int) {
	for i := 0; i < len(a.data); i++ {
		for j := i + 1; j < len(a.data); j++ {
			if a.data[i].Intersects(a.data[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return
}

// Containing returns the indices of the circles that contain p.
func (a *CircleArray) Containing(p geometry.Point) (indices []int) {
	for i := range a.data {
		if a.data[i].ContainsPoint(p) {
			indices = append(indices, i)
		}
	}
	return
}

func (a *CircleArray) String() string {
	return render("circles", a.data)
}
