// Package geometry implements the 2D value types used by the CAD containers:
// points, line segments, circles and named shapes.
//
// Every type here is a value type. Methods that derive a new value return it
// instead of mutating the receiver; only the explicit setters and ScaleAssign
// write through a pointer.
package geometry

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. The zero value is the origin.
type Point struct {
	x, y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

// Origin returns (0, 0).
func Origin() Point {
	return Point{}
}

// PointFromScalar returns (v, v).
func PointFromScalar(v float64) Point {
	return Point{x: v, y: v}
}

// PointFromPair returns the point for an (x, y) pair.
func PointFromPair(xy [2]float64) Point {
	return Point{x: xy[0], y: xy[1]}
}

func (p Point) X() float64 {
	return p.x
}

func (p Point) Y() float64 {
	return p.y
}

func (p *Point) SetX(x float64) {
	p.x = x
}

func (p *Point) SetY(y float64) {
	p.y = y
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.x - q.x
	dy := p.y - q.y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceToOrigin returns the distance between p and (0, 0).
func (p Point) DistanceToOrigin() float64 {
	return p.Distance(Origin())
}

// Magnitude is the length of p seen as a vector.
func (p Point) Magnitude() float64 {
	return p.DistanceToOrigin()
}

// Negate returns (-x, -y).
func (p Point) Negate() Point {
	return Point{x: -p.x, y: -p.y}
}

// Scale returns (k*x, k*y).
func (p Point) Scale(k float64) Point {
	return Point{x: p.x * k, y: p.y * k}
}

// ScaleAssign multiplies both coordinates of p by k in place.
func (p *Point) ScaleAssign(k float64) {
	p.x *= k
	p.y *= k
}

// ScalePoint returns k*p. Scalar multiplication commutes, so this is p.Scale(k).
func ScalePoint(k float64, p Point) Point {
	return p.Scale(k)
}

func (p Point) Add(q Point) Point {
	return Point{
		x: p.x + q.x,
		y: p.y + q.y,
	}
}

func (p Point) Sub(q Point) Point {
	return Point{
		x: p.x - q.x,
		y: p.y - q.y,
	}
}

// Translate returns p moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{x: p.x + dx, y: p.y + dy}
}

// Rotate returns p rotated by theta radians around the origin.
func (p Point) Rotate(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		x: p.x*cos - p.y*sin,
		y: p.x*sin + p.y*cos,
	}
}

// Equal compares coordinates exactly. Callers that need a tolerance must
// compare Distance against one themselves.
func (p Point) Equal(q Point) bool {
	return (p.x == q.x) && (p.y == q.y)
}

// EqualScalar reports whether both coordinates equal v.
func (p Point) EqualScalar(v float64) bool {
	return (p.x == v) && (p.y == v)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%.2f, %.2f)", p.x, p.y)
}
