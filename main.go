package main

import (
	"fmt"

	"lineq_go/line_eq"
)

func main() {
	// Map a 4-20 mA sensor loop onto a -40..85 degree range, saturating
	// outside the calibrated span.
	sensor := line_eq.NewLineEq(
		line_eq.Point{X: 4, Y: -40},
		line_eq.Point{X: 20, Y: 85},
		-40, 85,
	)

	for _, current := range []float64{3.0, 4.0, 12.0, 20.0, 25.0} {
		fmt.Printf("%.1f mA -> %.2f°\n", current, sensor.Evaluate(current))
	}
}
