package containers

import (
	"math"

	"cadgeom/src/cad/geometry"
)

// PointArray is an Array of points with path and centroid queries.
type PointArray struct {
	Array[geometry.Point]
}

// NewPointArray returns size points at the origin.
func NewPointArray(size int) *PointArray {
	return &PointArray{Array: *NewArray[geometry.Point](size)}
}

// NewDefaultPointArray returns DefaultSize points at the origin.
func NewDefaultPointArray() *PointArray {
	return NewPointArray(DefaultSize)
}

// PointArrayFrom returns an array holding a copy of pts.
func PointArrayFrom(pts []geometry.Point) *PointArray {
	return &PointArray{Array: *FromSlice(pts)}
}

func (a *PointArray) Clone() *PointArray {
	return &PointArray{Array: *a.Array.Clone()}
}

func (a *PointArray) Equal(other *PointArray) bool {
	if other == nil {
		return false
	}
	return a.Array.Equal(&other.Array)
}

// TotalPathDistance is the length of the polyline through the points in
// index order. Fewer than two points give 0.
func (a *PointArray) TotalPathDistance() (d float64) {
	for i := 1; i < len(a.data); i++ {
		d += a.data[i-1].Distance(a.data[i])
	}
	return
}

// Centroid returns the componentwise mean of the points, or the origin when
// the array is empty.
func (a *PointArray) Centroid() geometry.Point {
	if len(a.data) == 0 {
		return geometry.Origin()
	}
	xs := make([]float64, len(a.data))
	ys := make([]float64, len(a.data))
	for i, p := range a.data {
		xs[i], ys[i] = p.X(), p.Y()
	}
	return geometry.NewPoint(mean(xs), mean(ys))
}

// FarthestFromOrigin returns the index and value of the point with the
// greatest distance to the origin. Ties go to the highest index. Points at a
// NaN distance are skipped; if every distance is NaN, index 0 is returned.
// ok is false when the array is empty.
func (a *PointArray) FarthestFromOrigin() (index int, p geometry.Point, ok bool) {
	if len(a.data) == 0 {
		return 0, geometry.Point{}, false
	}
	best := math.NaN()
	for i := range a.data {
		d := a.data[i].DistanceToOrigin()
		if math.IsNaN(d) {
			continue
		}
		if math.IsNaN(best) || d >= best {
			best, index = d, i
		}
	}
	return index, a.data[index], true
}

// Path returns the consecutive segments through the points.
func (a *PointArray) Path() *LineArray {
	lines := NewLineArray(0)
	for i := 1; i < len(a.data); i++ {
		lines.Push(geometry.NewLine(a.data[i-1], a.data[i]))
	}
	return lines
}

func (a *PointArray) String() string {
	return render("points", a.data)
}
