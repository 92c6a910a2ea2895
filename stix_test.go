package fontdata

import (
	"errors"
	"testing"
	"unicode"

	"github.com/tdewolff/test"
)

func TestSTIXGeneralCyrillic(t *testing.T) {
	reg := NewRegistry()
	loader := NewLoader()
	test.Error(t, LoadSTIX(reg, loader))
	test.That(t, loader.IsComplete(STIXFontDir+"/General/Regular/Cyrillic.js"))

	var tests = []struct {
		r  rune
		m  Metrics
		ok bool
	}{
		{1072, Metrics{460, 10, 450, 37, 446}, true},
		{1169, Metrics{558, 0, 394, 17, 387}, true},
		{1117, Metrics{}, false},
		{'a', Metrics{}, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			m, ok := reg.Lookup("HTML-CSS", "STIXGeneral", "Cyrillic", tt.r)
			test.T(t, ok, tt.ok)
			test.T(t, m, tt.m)
		})
	}
}

func TestSTIXGeneralCyrillicEntries(t *testing.T) {
	table := STIXGeneralCyrillic.Table
	test.T(t, table.Len(), len(stixGeneralCyrillic))
	table.Each(func(r rune, m Metrics) bool {
		test.That(t, 0 <= r && unicode.Is(unicode.Cyrillic, r), "code point outside the Cyrillic script:", r)
		test.That(t, m.Left <= m.Right, "ink extent of", r)
		test.That(t, 0 < m.Width, "advance width of", r)
		return true
	})
}

func TestLoadUnknownFamily(t *testing.T) {
	reg := NewRegistry()
	loader := NewLoader()

	err := Load(reg, loader, STIXGeneralCyrillic)
	test.That(t, errors.Is(err, ErrUnknownFamily))
	test.That(t, !loader.IsComplete(STIXGeneralCyrillic.Path), "completion must not be signaled for a failed merge")
}

func TestLoadCompletesAfterMerge(t *testing.T) {
	reg := NewRegistry()
	reg.AddFamily(FormatHTMLCSS, FamilySTIXGeneral)
	loader := NewLoader()

	merged := false
	loader.OnComplete(STIXGeneralCyrillic.Path, func() {
		_, merged = reg.Lookup(FormatHTMLCSS, FamilySTIXGeneral, "Cyrillic", 0x430)
	})
	test.Error(t, Load(reg, loader, STIXGeneralCyrillic))
	test.That(t, merged, "data must be merged before completion is signaled")

	err := Load(reg, loader, STIXGeneralCyrillic)
	test.That(t, errors.Is(err, ErrAlreadyComplete))
}
