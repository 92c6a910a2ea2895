package fontdata

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// UnitsPerEm is the number of metric units in one em.
const UnitsPerEm = 1000

// Metrics are the dimensions of a single glyph in units of 1/1000 em. Depth is positive below the baseline.
type Metrics struct {
	Height int16 // ascent above the baseline
	Depth  int16 // descent below the baseline
	Width  int16 // advance width
	Left   int16 // left bound of the ink extent
	Right  int16 // right bound of the ink extent
}

// MetricsFromTuple returns the metrics for a (height, depth, width, left, right) tuple.
func MetricsFromTuple(v [5]int16) Metrics {
	return Metrics{v[0], v[1], v[2], v[3], v[4]}
}

// Tuple returns the metrics as a (height, depth, width, left, right) tuple.
func (m Metrics) Tuple() [5]int16 {
	return [5]int16{m.Height, m.Depth, m.Width, m.Left, m.Right}
}

// Bounds returns the ink rectangle (xmin,ymin,xmax,ymax) with y pointing upwards.
func (m Metrics) Bounds() (int16, int16, int16, int16) {
	return m.Left, -m.Depth, m.Right, m.Height
}

// Fixed returns the ink rectangle and advance width scaled to size pixels per em. Following golang.org/x/image/font, y points downwards.
func (m Metrics) Fixed(size fixed.Int26_6) (fixed.Rectangle26_6, fixed.Int26_6) {
	bounds := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: scaleUnits(m.Left, size), Y: -scaleUnits(m.Height, size)},
		Max: fixed.Point26_6{X: scaleUnits(m.Right, size), Y: scaleUnits(m.Depth, size)},
	}
	return bounds, scaleUnits(m.Width, size)
}

func (m Metrics) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d,%d]", m.Height, m.Depth, m.Width, m.Left, m.Right)
}

func scaleUnits(v int16, size fixed.Int26_6) fixed.Int26_6 {
	x := int64(v) * int64(size)
	if x < 0 {
		return -fixed.Int26_6((-x + UnitsPerEm/2) / UnitsPerEm)
	}
	return fixed.Int26_6((x + UnitsPerEm/2) / UnitsPerEm)
}
