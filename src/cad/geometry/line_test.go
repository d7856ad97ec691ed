package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineConstructors(t *testing.T) {
	require.True(t, Line{}.Start().Equal(Origin()))
	require.True(t, Line{}.End().Equal(Origin()))
	require.Equal(t, 0.0, Line{}.Length())

	h := HorizontalLine(3)
	require.True(t, h.End().Equal(pt(3, 0)))
	require.True(t, h.IsHorizontal())

	v := VerticalLine(2)
	require.True(t, v.End().Equal(pt(0, 2)))
	require.True(t, v.IsVertical())
}

func TestLineLengthTracksEndpoints(t *testing.T) {
	l := NewLine(pt(0, 0), pt(3, 4))
	require.Equal(t, 5.0, l.Length())

	l.SetEnd(pt(6, 8))
	require.Equal(t, 10.0, l.Length())

	l.SetStart(pt(6, 0))
	require.Equal(t, 8.0, l.Length())
	require.True(t, l.Start().Equal(pt(6, 0)))
}

func TestLineMidpoint(t *testing.T) {
	require.True(t, NewLine(pt(0, 0), pt(4, 2)).Midpoint().Equal(pt(2, 1)))
	require.True(t, NewLine(pt(-2, 5), pt(2, -5)).Midpoint().Equal(Origin()))
}

func TestLineSlope(t *testing.T) {
	for idx, tc := range []struct {
		l     Line
		slope float64
		ok    bool
	}{
		{NewLine(pt(0, 0), pt(2, 4)), 2, true},
		{NewLine(pt(0, 0), pt(4, -2)), -0.5, true},
		{HorizontalLine(7), 0, true},
		{VerticalLine(7), 0, false},
		{Line{}, 0, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.l), func(t *testing.T) {
			slope, ok := tc.l.Slope()
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.slope, slope)
		})
	}
}

func TestLineAngle(t *testing.T) {
	require.Equal(t, 0.0, HorizontalLine(1).Angle())
	require.Equal(t, math.Pi/2, VerticalLine(1).Angle())
	require.InDelta(t, math.Pi/4, NewLine(pt(1, 1), pt(2, 2)).Angle(), 1e-15)
}

func TestLineContainsPoint(t *testing.T) {
	l := NewLine(pt(0, 0), pt(4, 0))
	require.True(t, l.ContainsPoint(pt(2, 0)))
	require.True(t, l.ContainsPoint(pt(0, 0)))
	require.True(t, l.ContainsPoint(pt(4, 0)))
	require.False(t, l.ContainsPoint(pt(2, 1)))
	require.False(t, l.ContainsPoint(pt(5, 0)), "collinear but outside the segment")

	d := NewLine(pt(1, 1), pt(4, 5))
	require.True(t, d.ContainsPoint(d.Midpoint()))

	require.True(t, Line{}.ContainsPoint(Origin()))
}

func TestLineTranslateAndParallel(t *testing.T) {
	l := HorizontalLine(4).Translate(1, 2)
	require.True(t, l.Equal(NewLine(pt(1, 2), pt(5, 2))))

	p := HorizontalLine(4).Parallel(3)
	require.InDelta(t, 0, p.Start().X(), 1e-12)
	require.InDelta(t, 3, p.Start().Y(), 1e-12)
	require.InDelta(t, 4, p.End().X(), 1e-12)
	require.InDelta(t, 3, p.End().Y(), 1e-12)
	require.InDelta(t, 4, p.Length(), 1e-12)
}

func TestLineString(t *testing.T) {
	require.Equal(t, "Line[Point(0.00, 0.00) -> Point(4.00, 0.00)]", HorizontalLine(4).String())
}
