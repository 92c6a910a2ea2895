package fontdata

import (
	"fmt"
	"unicode"

	"golang.org/x/exp/slices"
)

type tableEntry struct {
	Code rune
	Metrics
}

func compareEntry(a, b tableEntry) int {
	return int(a.Code) - int(b.Code)
}

// Table is an immutable mapping from code points to glyph metrics.
type Table struct {
	entries []tableEntry // sorted by code point, unique
}

// NewTable returns a table holding a copy of the given metrics. It returns ErrInvalidCodePoint for code points outside the Unicode range.
func NewTable(metrics map[rune]Metrics) (*Table, error) {
	entries := make([]tableEntry, 0, len(metrics))
	for r, m := range metrics {
		if r < 0 || unicode.MaxRune < r {
			return nil, fmt.Errorf("%w: %d", ErrInvalidCodePoint, r)
		}
		entries = append(entries, tableEntry{r, m})
	}
	slices.SortFunc(entries, compareEntry)
	return &Table{entries}, nil
}

// mustTable is used for the built-in tables, which are known to be valid.
func mustTable(metrics map[rune]Metrics) *Table {
	t, err := NewTable(metrics)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup returns the metrics of code point r. The boolean is false when the table has no entry for r.
func (t *Table) Lookup(r rune) (Metrics, bool) {
	if t == nil {
		return Metrics{}, false
	}
	i, ok := slices.BinarySearchFunc(t.entries, r, func(e tableEntry, r rune) int {
		return int(e.Code) - int(r)
	})
	if !ok {
		return Metrics{}, false
	}
	return t.entries[i].Metrics, true
}

// Runes returns all code points in ascending order.
func (t *Table) Runes() []rune {
	runes := make([]rune, t.Len())
	for i := range runes {
		runes[i] = t.entries[i].Code
	}
	return runes
}

// Each calls f for every entry in ascending order of code point until f returns false.
func (t *Table) Each(f func(rune, Metrics) bool) {
	if t == nil {
		return
	}
	for _, e := range t.entries {
		if !f(e.Code, e.Metrics) {
			return
		}
	}
}

// Map returns a copy of the table as a map.
func (t *Table) Map() map[rune]Metrics {
	m := make(map[rune]Metrics, t.Len())
	t.Each(func(r rune, metrics Metrics) bool {
		m[r] = metrics
		return true
	})
	return m
}

// Merge returns a new table with the entries of both tables. Entries of other take precedence.
func (t *Table) Merge(other *Table) *Table {
	a, b := t.entriesOrNil(), other.entriesOrNil()
	entries := make([]tableEntry, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Code < b[j].Code {
			entries = append(entries, a[i])
			i++
		} else if b[j].Code < a[i].Code {
			entries = append(entries, b[j])
			j++
		} else {
			entries = append(entries, b[j])
			i++
			j++
		}
	}
	entries = append(entries, a[i:]...)
	entries = append(entries, b[j:]...)
	return &Table{entries}
}

// Equal returns true if both tables hold exactly the same entries.
func (t *Table) Equal(other *Table) bool {
	return slices.Equal(t.entriesOrNil(), other.entriesOrNil())
}

// Bounds returns the union (xmin,ymin,xmax,ymax) of all ink rectangles, or all zeros for an empty table.
func (t *Table) Bounds() (int16, int16, int16, int16) {
	if t.Len() == 0 {
		return 0, 0, 0, 0
	}
	xmin, ymin, xmax, ymax := t.entries[0].Bounds()
	for _, e := range t.entries[1:] {
		x0, y0, x1, y1 := e.Bounds()
		xmin, ymin = min(xmin, x0), min(ymin, y0)
		xmax, ymax = max(xmax, x1), max(ymax, y1)
	}
	return xmin, ymin, xmax, ymax
}

func (t *Table) entriesOrNil() []tableEntry {
	if t == nil {
		return nil
	}
	return t.entries
}
