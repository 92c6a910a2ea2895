package fontdata

import (
	"fmt"
	"sort"
	"sync"
)

// A Registry holds metric tables indexed by output format, font family and category, such as "HTML-CSS", "STIXGeneral" and "Cyrillic".
// Families must be declared with AddFamily before tables can be merged into them.
//
// It is safe to use a Registry concurrently from multiple goroutines.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]map[string]map[string]*Table
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: map[string]map[string]map[string]*Table{},
	}
}

// AddFamily declares a font family for the given output format. Declaring an existing family is a no-op.
func (reg *Registry) AddFamily(format, family string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	families, ok := reg.formats[format]
	if !ok {
		families = map[string]map[string]*Table{}
		reg.formats[format] = families
	}
	if _, ok := families[family]; !ok {
		families[family] = map[string]*Table{}
	}
}

// Merge adds the entries of t to the category table of the given family, overwriting entries with the same code point.
// Merging the same table twice leaves the registry as merging it once.
func (reg *Registry) Merge(format, family, category string, t *Table) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	categories, ok := reg.formats[format][family]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrUnknownFamily, format, family)
	}
	if prev, ok := categories[category]; ok {
		categories[category] = prev.Merge(t)
	} else {
		categories[category] = t.Merge(nil)
	}
	return nil
}

// Table returns the metric table of a category.
func (reg *Registry) Table(format, family, category string) (*Table, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	t, ok := reg.formats[format][family][category]
	return t, ok
}

// Lookup returns the metrics of code point r in a category.
func (reg *Registry) Lookup(format, family, category string, r rune) (Metrics, bool) {
	t, ok := reg.Table(format, family, category)
	if !ok {
		return Metrics{}, false
	}
	return t.Lookup(r)
}

// LookupFamily returns the metrics of code point r in any category of the family, trying categories in sorted order. It also returns the category in which r was found.
func (reg *Registry) LookupFamily(format, family string, r rune) (Metrics, string, bool) {
	for _, category := range reg.Categories(format, family) {
		if m, ok := reg.Lookup(format, family, category, r); ok {
			return m, category, true
		}
	}
	return Metrics{}, "", false
}

// HasFamily returns true if the family has been declared.
func (reg *Registry) HasFamily(format, family string) bool {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	_, ok := reg.formats[format][family]
	return ok
}

// Formats returns the sorted output formats.
func (reg *Registry) Formats() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return sortedKeys(reg.formats)
}

// Families returns the sorted font families of an output format.
func (reg *Registry) Families(format string) []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return sortedKeys(reg.formats[format])
}

// Categories returns the sorted categories of a font family.
func (reg *Registry) Categories(format, family string) []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return sortedKeys(reg.formats[format][family])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
