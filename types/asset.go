package types

import "slices"

// DefaultAssetKind is the asset kind used when a configuration names none.
const DefaultAssetKind = "Asset"

// RegexConfig is the pattern and positional group names used to derive partition definitions.
type RegexConfig struct {
	// Pattern is an RE2 regular expression applied to each data reference.
	Pattern string `yaml:"pattern" mapstructure:"pattern"`

	// GroupNames binds capture groups positionally. When empty, the pattern's own
	// named groups are used.
	GroupNames []string `yaml:"groupNames" mapstructure:"groupNames"`
}

// Clone returns a deep copy so later mutation cannot leak into the original.
func (c RegexConfig) Clone() RegexConfig {
	return RegexConfig{
		Pattern:    c.Pattern,
		GroupNames: slices.Clone(c.GroupNames),
	}
}

// Asset is a named grouping of data references sharing one pattern override.
//
// Assets are built once at connector construction and never mutated afterwards.
type Asset struct {
	// Name is the data asset name.
	Name string

	// Kind is the registered kind the asset was built from.
	Kind string

	// BaseDirectory is the location handed to the listing service. Empty means the asset name.
	BaseDirectory string

	// Pattern overrides the connector default pattern when non-empty.
	Pattern string

	// GroupNames overrides the connector default group names when non-empty.
	GroupNames []string
}

// Location returns the base location listed for this asset.
func (a Asset) Location() string {
	if a.BaseDirectory != "" {
		return a.BaseDirectory
	}

	return a.Name
}

// Clone returns a deep copy of the asset.
func (a Asset) Clone() Asset {
	a.GroupNames = slices.Clone(a.GroupNames)

	return a
}
