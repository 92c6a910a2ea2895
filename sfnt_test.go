package fontdata

import (
	"testing"
	"unicode"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/font"
	"github.com/tdewolff/test"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFromSFNTCFF(t *testing.T) {
	test.That(t, IsSFNT(lmroman10regular.TTF), "OTTO header")

	sfnt, err := font.ParseSFNT(lmroman10regular.TTF, 0)
	test.Error(t, err)
	test.That(t, sfnt.IsCFF, "Latin Modern uses CFF outlines")

	table, err := FromSFNT(sfnt, unicode.Latin)
	test.Error(t, err)

	m, ok := table.Lookup('x')
	test.That(t, ok)
	test.That(t, 0 < m.Width && m.Width < UnitsPerEm, "advance width within one em:", m)
	test.That(t, 0 < m.Height && m.Height < UnitsPerEm, "height within one em:", m)
	test.That(t, m.Left < m.Right, "non-empty ink extent:", m)

	p, ok := table.Lookup('p')
	test.That(t, ok)
	test.That(t, 0 < p.Depth, "descender below the baseline:", p)
}

func TestFromSFNTTrueType(t *testing.T) {
	test.That(t, IsSFNT(goregular.TTF))
	test.That(t, !IsSFNT([]byte("StartFontMetrics 4.1")))

	sfnt, err := font.ParseSFNT(goregular.TTF, 0)
	test.Error(t, err)

	table, err := FromSFNT(sfnt, unicode.Cyrillic)
	test.Error(t, err)
	m, ok := table.Lookup(0x430)
	test.That(t, ok)
	test.That(t, 0 < m.Width && m.Left < m.Right, "metrics of U+0430:", m)

	_, err = FromSFNT(sfnt, nil)
	test.That(t, err != nil)
}
