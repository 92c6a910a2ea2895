package fontdata

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tdewolff/test"
)

func TestRegistryMerge(t *testing.T) {
	reg := NewRegistry()
	table := mustTable(map[rune]Metrics{0x430: {460, 10, 450, 37, 446}})

	err := reg.Merge(FormatHTMLCSS, FamilySTIXGeneral, "Cyrillic", table)
	test.That(t, errors.Is(err, ErrUnknownFamily))
	test.That(t, !reg.HasFamily(FormatHTMLCSS, FamilySTIXGeneral))

	reg.AddFamily(FormatHTMLCSS, FamilySTIXGeneral)
	test.Error(t, reg.Merge(FormatHTMLCSS, FamilySTIXGeneral, "Cyrillic", table))

	m, ok := reg.Lookup(FormatHTMLCSS, FamilySTIXGeneral, "Cyrillic", 0x430)
	test.That(t, ok)
	test.T(t, m, Metrics{460, 10, 450, 37, 446})

	_, ok = reg.Lookup(FormatHTMLCSS, FamilySTIXGeneral, "Latin", 0x430)
	test.That(t, !ok)
	_, ok = reg.Lookup("SVG", FamilySTIXGeneral, "Cyrillic", 0x430)
	test.That(t, !ok)
}

func TestRegistryMergeExisting(t *testing.T) {
	reg := NewRegistry()
	reg.AddFamily(FormatHTMLCSS, FamilySTIXGeneral)
	reg.AddFamily(FormatHTMLCSS, FamilySTIXGeneral) // no-op

	a := mustTable(map[rune]Metrics{1: {1, 1, 1, 1, 1}})
	b := mustTable(map[rune]Metrics{2: {2, 2, 2, 2, 2}})
	test.Error(t, reg.Merge(FormatHTMLCSS, FamilySTIXGeneral, "Misc", a))
	test.Error(t, reg.Merge(FormatHTMLCSS, FamilySTIXGeneral, "Misc", b))

	table, ok := reg.Table(FormatHTMLCSS, FamilySTIXGeneral, "Misc")
	test.That(t, ok)
	test.T(t, table.Len(), 2, "merge must add to the existing table")
	test.T(t, a.Len(), 1, "merge must not modify the given table")
}

func TestRegistryIdempotent(t *testing.T) {
	once := NewRegistry()
	test.Error(t, LoadSTIX(once, NewLoader()))

	twice := NewRegistry()
	twice.AddFamily(FormatHTMLCSS, FamilySTIXGeneral)
	for i := 0; i < 2; i++ {
		res := STIXGeneralCyrillic
		test.Error(t, twice.Merge(res.Format, res.Family, res.Category, res.Table))
	}

	a, _ := once.Table(FormatHTMLCSS, FamilySTIXGeneral, "Cyrillic")
	b, _ := twice.Table(FormatHTMLCSS, FamilySTIXGeneral, "Cyrillic")
	test.That(t, a.Equal(b), "merging twice must equal merging once")
	test.That(t, a.Equal(STIXGeneralCyrillic.Table))
}

func TestRegistryListing(t *testing.T) {
	reg := NewRegistry()
	reg.AddFamily(FormatHTMLCSS, FamilySTIXGeneral)
	reg.AddFamily(FormatHTMLCSS, "STIXSizeOneSym")
	reg.AddFamily("SVG", "STIXGeneral")
	test.Error(t, reg.Merge(FormatHTMLCSS, FamilySTIXGeneral, "Latin", mustTable(map[rune]Metrics{'a': {460, 10, 444, 37, 442}})))
	test.Error(t, reg.Merge(FormatHTMLCSS, FamilySTIXGeneral, "Cyrillic", mustTable(map[rune]Metrics{'a': {1, 1, 1, 1, 1}, 0x430: {460, 10, 450, 37, 446}})))

	if diff := cmp.Diff([]string{"HTML-CSS", "SVG"}, reg.Formats()); diff != "" {
		t.Errorf("Formats() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"STIXGeneral", "STIXSizeOneSym"}, reg.Families(FormatHTMLCSS)); diff != "" {
		t.Errorf("Families() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Cyrillic", "Latin"}, reg.Categories(FormatHTMLCSS, FamilySTIXGeneral)); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}
	test.T(t, len(reg.Categories("SVG", "STIXGeneral")), 0)

	m, category, ok := reg.LookupFamily(FormatHTMLCSS, FamilySTIXGeneral, 'a')
	test.That(t, ok)
	test.T(t, category, "Cyrillic")
	test.T(t, m, Metrics{1, 1, 1, 1, 1})

	_, _, ok = reg.LookupFamily(FormatHTMLCSS, FamilySTIXGeneral, 0x45D)
	test.That(t, !ok)
}

func TestRegistryConcurrent(t *testing.T) {
	reg := NewRegistry()
	reg.AddFamily(FormatHTMLCSS, FamilySTIXGeneral)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			table := mustTable(map[rune]Metrics{rune(i): {int16(i), 0, 0, 0, 0}})
			if err := reg.Merge(FormatHTMLCSS, FamilySTIXGeneral, "Misc", table); err != nil {
				t.Error(err)
			}
		}(i)
		go func() {
			defer wg.Done()
			reg.LookupFamily(FormatHTMLCSS, FamilySTIXGeneral, 0)
		}()
	}
	wg.Wait()

	table, _ := reg.Table(FormatHTMLCSS, FamilySTIXGeneral, "Misc")
	test.T(t, table.Len(), 8)
}
