package fontdata

import "fmt"

// Resource is a metric table together with the place it is registered under and the path used to signal its completion.
type Resource struct {
	Path     string
	Format   string
	Family   string
	Category string
	Table    *Table
}

// Load merges the resource's table into the registry and then marks its path complete in the loader.
// The family must have been declared in the registry, otherwise nothing is merged and no completion is signaled.
func Load(reg *Registry, loader *Loader, res Resource) error {
	if err := reg.Merge(res.Format, res.Family, res.Category, res.Table); err != nil {
		return fmt.Errorf("%s: %w", res.Path, err)
	}
	return loader.Complete(res.Path)
}
