package geometry

func RectangleArea(width, height float64) float64 {
	return width * height
}

func DistanceBetween(p, q Point) float64 {
	return p.Distance(q)
}

// UnitSquare returns the corners of the unit square, counterclockwise from
// the origin.
func UnitSquare() [4]Point {
	return [4]Point{
		NewPoint(0, 0),
		NewPoint(1, 0),
		NewPoint(1, 1),
		NewPoint(0, 1),
	}
}

// PointsInsideCircle returns the points of pts that c contains, in order.
func PointsInsideCircle(c Circle, pts []Point) []Point {
	var inside []Point
	for i := 0; i < len(pts); i++ {
		if c.ContainsPoint(pts[i]) {
			inside = append(inside, pts[i])
		}
	}
	return inside
}
