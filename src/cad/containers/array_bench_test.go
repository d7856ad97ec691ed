package containers

import (
	"testing"

	"cadgeom/src/cad/geometry"
)

var (
	benchPoint  geometry.Point
	benchFloat  float64
	benchPoints = PointArrayFrom(samplePoints(1024))
)

func BenchmarkArrayGetElement(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchPoint = benchPoints.GetElement(i & 2047)
	}
}

func BenchmarkArrayPush(b *testing.B) {
	a := NewPointArray(0)
	p := pt(1, 2)
	for i := 0; i < b.N; i++ {
		a.Push(p)
	}
}

func BenchmarkArrayClone(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchPoint = benchPoints.Clone().GetElement(0)
	}
}

func BenchmarkPointArrayTotalPathDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFloat = benchPoints.TotalPathDistance()
	}
}

func BenchmarkPointArrayCentroid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchPoint = benchPoints.Centroid()
	}
}
