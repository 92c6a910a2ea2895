package fontdata

// Output format and font family names used by the STIX tables.
const (
	FormatHTMLCSS     = "HTML-CSS"
	FamilySTIXGeneral = "STIXGeneral"
)

// STIXFontDir is the directory the STIX data files are loaded from.
const STIXFontDir = "[MathJax]/jax/output/HTML-CSS/fonts/STIX"

// STIXResources lists all built-in STIX resources.
var STIXResources = []Resource{
	STIXGeneralCyrillic,
}

// LoadSTIX declares the STIX families in the registry and loads all built-in STIX resources.
func LoadSTIX(reg *Registry, loader *Loader) error {
	reg.AddFamily(FormatHTMLCSS, FamilySTIXGeneral)
	for _, res := range STIXResources {
		if err := Load(reg, loader, res); err != nil {
			return err
		}
	}
	return nil
}
