package trip

// Options represents the configuration options for the trip tools.
type Options struct {
	// CatalogPath is the path to a YAML region catalog merged over the
	// built-in regions.
	CatalogPath string
	// Regions are extra region -> city-list entries merged over the
	// built-in regions.
	Regions map[string][]string
}

// Option is a function that configures Options.
type Option func(*Options)

// WithCatalogPath sets the region catalog file path.
func WithCatalogPath(path string) Option {
	return func(o *Options) {
		o.CatalogPath = path
	}
}

// WithRegions adds region catalog entries.
func WithRegions(regions map[string][]string) Option {
	return func(o *Options) {
		o.Regions = regions
	}
}
