package geometry

import (
	"fmt"
	"math"
)

// Circle is a center and a radius. A negative radius is stored as given; see
// the containment methods for how it behaves.
type Circle struct {
	center Point
	radius float64
}

func NewCircle(center Point, radius float64) Circle {
	return Circle{center: center, radius: radius}
}

// UnitCircle returns the circle of radius 1 centered on the origin.
func UnitCircle() Circle {
	return NewCircle(Origin(), 1)
}

func CircleAtOrigin(radius float64) Circle {
	return NewCircle(Origin(), radius)
}

func (c Circle) Center() Point {
	return c.center
}

func (c Circle) Radius() float64 {
	return c.radius
}

func (c *Circle) SetCenter(p Point) {
	c.center = p
}

func (c *Circle) SetRadius(r float64) {
	c.radius = r
}

func (c Circle) Diameter() float64 {
	return 2 * c.radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

// ContainsPoint reports whether p lies inside or on the circle.
// A circle with a negative radius contains nothing.
func (c Circle) ContainsPoint(p Point) bool {
	return c.center.Distance(p) <= c.radius
}

// PointOnBoundary reports whether p is within Tolerance of the circumference.
func (c Circle) PointOnBoundary(p Point) bool {
	return math.Abs(c.center.Distance(p)-c.radius) < Tolerance
}

// PointAtAngle returns the point at theta radians, counterclockwise from the
// positive x axis.
func (c Circle) PointAtAngle(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return c.center.Add(NewPoint(c.radius*cos, c.radius*sin))
}

// Translate returns the circle with its center moved by offset.
func (c Circle) Translate(offset Point) Circle {
	return NewCircle(c.center.Add(offset), c.radius)
}

// Scale returns the circle with its radius multiplied by factor, same center.
func (c Circle) Scale(factor float64) Circle {
	return NewCircle(c.center, c.radius*factor)
}

// BoundingBox returns the lower-left and upper-right corners of the
// axis-aligned square enclosing c.
func (c Circle) BoundingBox() (lo, hi Point) {
	lo = c.center.Translate(-c.radius, -c.radius)
	hi = c.center.Translate(c.radius, c.radius)
	return
}

// Intersects reports whether the circumferences of c and other meet.
// Tangent circles, internal or external, intersect.
func (c Circle) Intersects(other Circle) bool {
	d := c.center.Distance(other.center)
	return d >= math.Abs(c.radius-other.radius) && d <= c.radius+other.radius
}

func (c Circle) Equal(other Circle) bool {
	return c.center.Equal(other.center) && c.radius == other.radius
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle[center: %s, radius: %.2f]", c.center, c.radius)
}
