package fontdata

import (
	"fmt"
	"unicode"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FromTrueType extracts the metrics of all characters in filter that the font has a glyph for. Values are scaled to UnitsPerEm and glyphs are loaded without hinting.
func FromTrueType(f *truetype.Font, filter *unicode.RangeTable) (*Table, error) {
	if filter == nil {
		return nil, fmt.Errorf("truetype: range table not set")
	}

	scale := fixed.I(UnitsPerEm)
	glyph := &truetype.GlyphBuf{}
	metrics := map[rune]Metrics{}
	var err error
	eachRune(filter, func(r rune) bool {
		index := f.Index(r)
		if index == 0 {
			return true
		}
		if err = glyph.Load(f, scale, index, font.HintingNone); err != nil {
			err = fmt.Errorf("truetype: glyph %U: %w", r, err)
			return false
		}

		// glyph bounds have y pointing upwards
		bounds := glyph.Bounds
		if len(glyph.Points) == 0 {
			bounds = fixed.Rectangle26_6{}
		}
		metrics[r] = Metrics{
			Height: int16(bounds.Max.Y.Round()),
			Depth:  int16(-bounds.Min.Y.Round()),
			Width:  int16(f.HMetric(scale, index).AdvanceWidth.Round()),
			Left:   int16(bounds.Min.X.Round()),
			Right:  int16(bounds.Max.X.Round()),
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return NewTable(metrics)
}

// eachRune calls f for every rune in the range table in ascending order until f returns false.
func eachRune(table *unicode.RangeTable, f func(rune) bool) {
	for _, r16 := range table.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			if !f(r) {
				return
			}
		}
	}
	for _, r32 := range table.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			if !f(r) {
				return
			}
		}
	}
}
