package fontdata

import (
	"fmt"
	"testing"
	"unicode"

	"github.com/tdewolff/test"
)

const testAFM = `StartFontMetrics 4.1
FontName STIXGeneral-Regular
FamilyName STIXGeneral
Weight Regular
FontBBox -1020 -349 1613 1154
CapHeight 662
XHeight 450
Ascender 683
Descender -217
ItalicAngle 0
StartCharMetrics 5
C 32 ; WX 250 ; N space ; B 0 0 0 0 ;
C 65 ; WX 722 ; N A ; B 15 0 707 674 ;
C -1 ; WX 450 ; N afii10065 ; B 37 -10 446 460 ;
C -1 ; WX 394 ; N uni0491 ; B 17 0 387 558 ;
C -1 ; WX 500 ; N f_f ; B 10 0 490 683 ;
EndCharMetrics
StartKernData
StartKernPairs 1
KPX A afii10065 -15
EndKernPairs
EndKernData
EndFontMetrics
`

func TestParseAFM(t *testing.T) {
	afm, err := ParseAFM([]byte(testAFM))
	test.Error(t, err)
	test.T(t, afm.FontName, "STIXGeneral-Regular")
	test.T(t, afm.FontBBox, [4]int16{-1020, -349, 1613, 1154})
	test.T(t, afm.Descender, int16(-217))
	test.T(t, afm.NumGlyphs(), uint16(5))

	glyphID, ok := afm.GlyphIndex(0x430)
	test.That(t, ok)
	test.T(t, glyphID, uint16(2))
	test.T(t, afm.Metrics(glyphID), Metrics{460, 10, 450, 37, 446})

	a, ok := afm.FindGlyphName("A")
	test.That(t, ok)
	test.T(t, afm.Kerning(a, glyphID), int16(-15))

	_, ok = afm.FindGlyphName("f_f")
	test.That(t, ok, "unmapped glyphs keep their name")
}

func TestAFMTable(t *testing.T) {
	afm, err := ParseAFM([]byte(testAFM))
	test.Error(t, err)

	table, err := afm.Table(unicode.Cyrillic)
	test.Error(t, err)
	test.T(t, table.Len(), 2)
	m, ok := table.Lookup(0x491)
	test.That(t, ok)
	test.T(t, m, Metrics{558, 0, 394, 17, 387})

	table, err = afm.Table(nil)
	test.Error(t, err)
	test.T(t, table.Len(), 4)
}

func TestParseAFMErrors(t *testing.T) {
	_, err := ParseAFM([]byte("FontName X\n"))
	test.That(t, err != nil, "missing header")

	_, err = ParseAFM([]byte("StartFontMetrics 4.1\nStartCharMetrics 2\nC 65 ; WX 722 ; N A ;\nEndCharMetrics\n"))
	test.That(t, err != nil, "too few char metrics")

	_, err = ParseAFM([]byte("StartFontMetrics 4.1\nStartCharMetrics 1\nC 65 ; WX 722 ; B 0 0 1 1 ;\nEndCharMetrics\n"))
	test.That(t, err != nil, "missing character name")
}

func TestGlyphListCoversSTIX(t *testing.T) {
	names := map[rune]bool{}
	for _, r := range glyphList {
		names[r] = true
	}
	STIXGeneralCyrillic.Table.Each(func(r rune, _ Metrics) bool {
		if r == 0x046A || r == 0x046B {
			// no AGL name, fonts use uni046A and uni046B
			r2, ok := glyphRune(fmt.Sprintf("uni%04X", r))
			test.That(t, ok && r2 == r, "uni name for", string(r))
		} else {
			test.That(t, names[r], "no glyph name for", string(r))
		}
		return true
	})
}

func TestGlyphRune(t *testing.T) {
	var tests = []struct {
		name string
		r    rune
		ok   bool
	}{
		{"a", 'a', true},
		{"space", ' ', true},
		{"afii10017", 0x0410, true},
		{"afii10023", 0x0401, true},
		{"afii10049", 0x042F, true},
		{"afii10097", 0x044F, true},
		{"afii10145", 0x040F, true},
		{"afii10146", 0x0462, true},
		{"afii10194", 0x0463, true},
		{"afii10147", 0x0472, true},
		{"afii10195", 0x0473, true},
		{"afii10148", 0x0474, true},
		{"afii10196", 0x0475, true},
		{"uni0430", 0x0430, true},
		{"u1D400", 0x1D400, true},
		{"uniD800", 0, false},
		{"union", 0, false},
		{"f_f", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := glyphRune(tt.name)
			test.T(t, ok, tt.ok)
			test.T(t, r, tt.r)
		})
	}
}
