package geometry

import (
	"fmt"
	"math"
)

// Line is a segment between two points. Degenerate segments, where start and
// end coincide, are valid values.
type Line struct {
	start Point
	end   Point
}

func NewLine(start, end Point) Line {
	return Line{start: start, end: end}
}

// HorizontalLine returns the segment from the origin to (length, 0).
func HorizontalLine(length float64) Line {
	return NewLine(Origin(), NewPoint(length, 0))
}

// VerticalLine returns the segment from the origin to (0, length).
func VerticalLine(length float64) Line {
	return NewLine(Origin(), NewPoint(0, length))
}

func (l Line) Start() Point {
	return l.start
}

func (l Line) End() Point {
	return l.end
}

func (l *Line) SetStart(p Point) {
	l.start = p
}

func (l *Line) SetEnd(p Point) {
	l.end = p
}

// Length is recomputed from the endpoints on every call.
func (l Line) Length() float64 {
	return l.start.Distance(l.end)
}

func (l Line) Midpoint() Point {
	return l.start.Add(l.end).Scale(0.5)
}

// Slope returns dy/dx. ok is false for a vertical line, where |dx| < Epsilon.
func (l Line) Slope() (slope float64, ok bool) {
	d := l.end.Sub(l.start)
	if math.Abs(d.x) < Epsilon {
		return 0, false
	}
	return d.y / d.x, true
}

func (l Line) IsHorizontal() bool {
	return math.Abs(l.start.y-l.end.y) < Epsilon
}

func (l Line) IsVertical() bool {
	return math.Abs(l.start.x-l.end.x) < Epsilon
}

// Angle returns the direction of the segment in radians, in (-Pi, Pi].
func (l Line) Angle() float64 {
	d := l.end.Sub(l.start)
	return math.Atan2(d.y, d.x)
}

// ContainsPoint reports whether p lies on the segment: the distances from p
// to both ends must add up to the length, within Tolerance.
func (l Line) ContainsPoint(p Point) bool {
	sum := l.start.Distance(p) + p.Distance(l.end)
	return math.Abs(sum-l.Length()) < Tolerance
}

func (l Line) Translate(dx, dy float64) Line {
	return NewLine(l.start.Translate(dx, dy), l.end.Translate(dx, dy))
}

// Parallel returns the segment offset by distance along the left-hand normal
// of its direction. A negative distance offsets to the right.
func (l Line) Parallel(distance float64) Line {
	sin, cos := math.Sincos(l.Angle() + math.Pi/2)
	return l.Translate(distance*cos, distance*sin)
}

func (l Line) Equal(other Line) bool {
	return l.start.Equal(other.start) && l.end.Equal(other.end)
}

func (l Line) String() string {
	return fmt.Sprintf("Line[%s -> %s]", l.start, l.end)
}
