package dataconn

import (
	"fmt"

	"github.com/arloliu/dataconn/internal/registry"
	"github.com/arloliu/dataconn/types"
)

// AssetModuleName is the registry namespace of asset kinds.
const AssetModuleName = "dataconn/asset"

// AssetFactory builds an asset named name from its configuration.
//
// The runtime environment carries the owning connector's names and execution engine.
type AssetFactory func(name string, cfg ComponentConfig, env RuntimeEnvironment) (Asset, error)

var assetKinds = registry.New[types.Asset](AssetModuleName, types.DefaultAssetKind)

// RegisterAssetKind adds an asset kind buildable from connector configuration.
//
// Panics if kind is empty or already registered.
//
// Parameters:
//   - kind: ClassName that selects the factory
//   - factory: Asset constructor
func RegisterAssetKind(kind string, factory AssetFactory) {
	assetKinds.Register(kind, func(cfg types.ComponentConfig, env types.RuntimeEnvironment) (types.Asset, error) {
		return factory(cfg.Name, cfg, env)
	})
}

// AssetKinds returns the registered asset kinds in lexicographic order.
func AssetKinds() []string {
	return assetKinds.Kinds()
}

// BuildAsset constructs the asset called name.
//
// A nil cfg builds the default kind with no overrides. The configuration is not modified.
//
// Parameters:
//   - name: Asset name
//   - cfg: Asset configuration (nil allowed)
//   - env: Runtime environment forwarded to the factory
//
// Returns:
//   - Asset: Constructed asset
//   - error: *ClassInstantiationError when the kind is unknown or its parameters are invalid
func BuildAsset(name string, cfg *ComponentConfig, env RuntimeEnvironment) (Asset, error) {
	var ac ComponentConfig
	if cfg != nil {
		ac = cfg.Clone()
	}
	ac.Name = name

	return assetKinds.Build(ac, env)
}

// assetParams are the parameters understood by the default asset kind.
type assetParams struct {
	BaseDirectory string   `mapstructure:"baseDirectory"`
	Pattern       string   `mapstructure:"pattern"`
	GroupNames    []string `mapstructure:"groupNames"`
}

func newDefaultAsset(name string, cfg ComponentConfig, _ RuntimeEnvironment) (Asset, error) {
	var p assetParams
	if err := registry.DecodeParams(cfg.Params, &p); err != nil {
		return Asset{}, fmt.Errorf("asset %q: %w", name, err)
	}
	if err := validateGroupNames(p.GroupNames); err != nil {
		return Asset{}, fmt.Errorf("%w: asset %q: %w", ErrConfiguration, name, err)
	}

	return Asset{
		Name:          name,
		Kind:          cfg.ClassName,
		BaseDirectory: p.BaseDirectory,
		Pattern:       p.Pattern,
		GroupNames:    p.GroupNames,
	}, nil
}

func init() {
	RegisterAssetKind(types.DefaultAssetKind, newDefaultAsset)
}
