package fontdata

import (
	"fmt"
	"math"
	"unicode"

	"github.com/tdewolff/font"
)

// IsSFNT returns true if b starts with an OpenType, TrueType or font collection header.
func IsSFNT(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	switch string(b[:4]) {
	case "OTTO", "true", "ttcf", "\x00\x01\x00\x00":
		return true
	}
	return false
}

// FromSFNT extracts the metrics of all characters in filter that the font has a glyph for. Both TrueType and CFF outlines are supported and values are scaled to UnitsPerEm.
func FromSFNT(sfnt *font.SFNT, filter *unicode.RangeTable) (*Table, error) {
	if filter == nil {
		return nil, fmt.Errorf("sfnt: range table not set")
	} else if sfnt.Head == nil || sfnt.Head.UnitsPerEm == 0 {
		return nil, fmt.Errorf("sfnt: units per em not set")
	}

	f := float64(UnitsPerEm) / float64(sfnt.Head.UnitsPerEm)
	scale := func(v float64) int16 {
		return int16(math.Round(v * f))
	}

	metrics := map[rune]Metrics{}
	var err error
	eachRune(filter, func(r rune) bool {
		glyphID := sfnt.GlyphIndex(r)
		if glyphID == 0 {
			return true
		}
		var xmin, ymin, xmax, ymax int16
		if xmin, ymin, xmax, ymax, err = sfnt.GlyphBounds(glyphID); err != nil {
			err = fmt.Errorf("sfnt: glyph %U: %w", r, err)
			return false
		}
		metrics[r] = Metrics{
			Height: scale(float64(ymax)),
			Depth:  -scale(float64(ymin)),
			Width:  scale(float64(sfnt.GlyphAdvance(glyphID))),
			Left:   scale(float64(xmin)),
			Right:  scale(float64(xmax)),
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return NewTable(metrics)
}
