package geometry

const (
	// Epsilon is the float64 machine epsilon, math.Nextafter(1.0, 2.0) - 1.0.
	// Slope and orientation checks treat |dx| below it as zero.
	Epsilon = 2.220446049250313e-16

	// Tolerance bounds the error allowed by the on-segment and on-boundary
	// checks, which sum or subtract square roots.
	Tolerance = 1e-10
)
