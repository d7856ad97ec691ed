package main

import (
	"errors"
	"log/slog"
	"math"
	"os"

	"cadgeom/src/cad/containers"
	"cadgeom/src/cad/geometry"
	"cadgeom/src/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ids := newIDAllocator(cfg.IDScheme)

	runPoints(cfg.ArraySize)
	runLines()
	runCircles()
	runShapes(ids)
}

func newIDAllocator(scheme string) geometry.IDAllocator {
	switch scheme {
	case config.IDSchemeTypeID:
		return geometry.NewTypeIDs()
	case config.IDSchemeUUID:
		return geometry.UUIDs{}
	default:
		return geometry.NewCounter()
	}
}

func runPoints(size int) {
	pts := containers.NewPointArray(size)
	pts.EachMut(func(i int, p *geometry.Point) {
		*p = geometry.NewPoint(float64(i), float64(i*i)/2)
	})
	slog.Info("point array", "array", pts.String())

	copied := pts.Clone()
	pts.SetElement(0, geometry.NewPoint(-1, -1))
	slog.Info("deep copy", "original", pts.GetElement(0), "copy", copied.GetElement(0))

	slog.Debug("out of range read", "index", size+3, "value", pts.GetElement(size+3))
	if _, err := pts.Element(size + 3); err != nil {
		index, n, _ := containers.IsIndexError(err)
		slog.Warn("strict read rejected", "index", index, "size", n, "error", err)
	}
	if err := pts.Put(-1, geometry.Origin()); errors.Is(err, containers.ErrIndexOutOfRange) {
		slog.Debug("strict write rejected", "error", err)
	}

	slog.Info("path", "distance", pts.TotalPathDistance(), "segments", pts.Path().Size())
	slog.Info("centroid", "point", pts.Centroid())
	if i, p, ok := pts.FarthestFromOrigin(); ok {
		slog.Info("farthest from origin", "index", i, "point", p, "distance", p.DistanceToOrigin())
	}

	pts.Resize(size / 2)
	last, _ := pts.Pop()
	slog.Info("after resize and pop", "size", pts.Size(), "popped", last)
}

func runLines() {
	l := geometry.NewLine(geometry.Origin(), geometry.NewPoint(4, 0))
	slope, ok := l.Slope()
	slog.Info("line",
		"line", l,
		"length", l.Length(),
		"midpoint", l.Midpoint(),
		"slope", slope,
		"slope_defined", ok,
		"contains_mid", l.ContainsPoint(geometry.NewPoint(2, 0)),
	)

	if _, ok := geometry.VerticalLine(3).Slope(); !ok {
		slog.Info("vertical line has no slope")
	}

	lines := containers.LineArrayFrom([]geometry.Line{l, l.Parallel(1), geometry.VerticalLine(5)})
	i, longest, _ := lines.Longest()
	slog.Info("lines", "total_length", lines.TotalLength(), "longest_index", i, "longest", longest)
}

func runCircles() {
	c := geometry.NewCircle(geometry.Origin(), 5)
	lo, hi := c.BoundingBox()
	slog.Info("circle",
		"circle", c,
		"area", c.Area(),
		"circumference", c.Circumference(),
		"on_boundary", c.PointOnBoundary(geometry.NewPoint(3, 4)),
		"at_quarter_turn", c.PointAtAngle(math.Pi/2),
		"bbox_min", lo,
		"bbox_max", hi,
	)

	circles := containers.CircleArrayFrom([]geometry.Circle{
		c,
		c.Translate(geometry.NewPoint(8, 0)),
		c.Scale(0.2),
		geometry.UnitCircle().Translate(geometry.NewPoint(20, 20)),
	})
	slog.Info("circles",
		"total_area", circles.TotalArea(),
		"intersections", circles.Intersections(),
		"containing_origin", circles.Containing(geometry.Origin()),
	)
}

func runShapes(ids geometry.IDAllocator) {
	s := geometry.NewShape(ids, "outline")
	d := geometry.NewDefaultShape(ids)
	d.Hide()
	renamed := s.CopyWithName("outline copy")
	slog.Info("shapes", "first", s, "second", d, "renamed", renamed.Description())
}
