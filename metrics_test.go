package fontdata

import (
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/math/fixed"
)

func TestMetricsTuple(t *testing.T) {
	m := MetricsFromTuple([5]int16{460, 10, 450, 37, 446})
	test.T(t, m, Metrics{Height: 460, Depth: 10, Width: 450, Left: 37, Right: 446})
	test.T(t, m.Tuple(), [5]int16{460, 10, 450, 37, 446})
	test.T(t, m.String(), "[460,10,450,37,446]")

	xmin, ymin, xmax, ymax := m.Bounds()
	test.T(t, xmin, int16(37))
	test.T(t, ymin, int16(-10))
	test.T(t, xmax, int16(446))
	test.T(t, ymax, int16(460))
}

func TestMetricsFixed(t *testing.T) {
	m := Metrics{Height: 500, Depth: 250, Width: 1000, Left: -100, Right: 750}
	bounds, advance := m.Fixed(fixed.I(16))
	test.T(t, advance, fixed.I(16))
	test.T(t, bounds.Min, fixed.Point26_6{X: -fixed.Int26_6(102), Y: -fixed.I(8)})
	test.T(t, bounds.Max, fixed.Point26_6{X: fixed.I(12), Y: fixed.I(4)})
}
