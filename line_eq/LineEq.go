package line_eq

import (
	"math"

	"lineq_go/shared"
)

// Point is a point in 2D space.
type Point struct {
	X float64
	Y float64
}

// LineEq is a line equation in 2D space with output limits.
// The zero value is inert: it evaluates to 0 until Configure is called.
//
// For vertical lines the slope is undefined; the intercept field is
// repurposed to hold the shared x-coordinate of the two points.
type LineEq struct {
	slope      float64
	intercept  float64
	minOutput  float64
	maxOutput  float64
	isVertical bool
}

// NewLineEq creates a line equation through p1 and p2 with the given
// output limits.
func NewLineEq(p1 Point, p2 Point, minOutput float64, maxOutput float64) *LineEq {
	l := &LineEq{}
	l.Configure(p1, p2, minOutput, maxOutput)
	return l
}

func CopyLineEq(l *LineEq) *LineEq {
	c := *l
	return &c
}

// Configure derives the line passing through p1 and p2 and stores the output
// limits verbatim. A second call fully replaces the previous configuration.
// Degenerate input is accepted: coincident points classify as vertical.
func (l *LineEq) Configure(p1 Point, p2 Point, minOutput float64, maxOutput float64) {
	l.minOutput = minOutput
	l.maxOutput = maxOutput

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	if math.Abs(dx) < shared.Epsilon {
		// Slope undefined, keep the x-coordinate instead
		l.isVertical = true
		l.slope = 0.0
		l.intercept = p1.X
	} else {
		l.isVertical = false
		l.slope = dy / dx
		l.intercept = p1.Y - l.slope*p1.X
	}
}

// Evaluate returns the y-value of the line at x, clamped to the output
// limits. A vertical line yields its stored x-coordinate for every input.
// Non-finite inputs propagate through the arithmetic unguarded.
func (l *LineEq) Evaluate(x float64) float64 {
	y := l.intercept
	if !l.isVertical {
		y = l.slope*x + l.intercept
	}
	return shared.Clamp(y, l.minOutput, l.maxOutput)
}

func (l *LineEq) Slope() float64 {
	return l.slope
}

func (l *LineEq) Intercept() float64 {
	return l.intercept
}

func (l *LineEq) IsVertical() bool {
	return l.isVertical
}

func (l *LineEq) MinOutput() float64 {
	return l.minOutput
}

func (l *LineEq) MaxOutput() float64 {
	return l.maxOutput
}
