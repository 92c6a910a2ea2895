package fontdata

import (
	"testing"
	"unicode"

	"github.com/golang/freetype/truetype"
	"github.com/tdewolff/test"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFromTrueType(t *testing.T) {
	f, err := truetype.Parse(goregular.TTF)
	test.Error(t, err)

	table, err := FromTrueType(f, unicode.Cyrillic)
	test.Error(t, err)
	test.That(t, 0 < table.Len(), "Go Regular covers Cyrillic")

	m, ok := table.Lookup(0x430)
	test.That(t, ok)
	test.That(t, 0 < m.Width && m.Width < UnitsPerEm, "advance width within one em:", m)
	test.That(t, 0 < m.Height && m.Height < UnitsPerEm, "height within one em:", m)
	test.That(t, m.Left < m.Right, "non-empty ink extent:", m)

	table.Each(func(r rune, _ Metrics) bool {
		test.That(t, unicode.Is(unicode.Cyrillic, r), "rune outside filter:", r)
		return true
	})

	_, err = FromTrueType(f, nil)
	test.That(t, err != nil)
}
