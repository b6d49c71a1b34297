package dataconn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// prefixedAssetKind places every asset below the execution environment name.
const prefixedAssetKind = "EnvironmentPrefixedAsset"

func init() {
	RegisterAssetKind(prefixedAssetKind, func(name string, cfg ComponentConfig, env RuntimeEnvironment) (Asset, error) {
		asset, err := newDefaultAsset(name, cfg, env)
		if err != nil {
			return Asset{}, err
		}
		asset.BaseDirectory = fmt.Sprintf("%s/%s", env.ExecutionEnvironmentName, asset.Location())

		return asset, nil
	})
}

func TestBuildAsset(t *testing.T) {
	t.Parallel()

	env := RuntimeEnvironment{ConnectorName: "c", ExecutionEnvironmentName: "warehouse"}

	t.Run("nil config builds default kind", func(t *testing.T) {
		asset, err := BuildAsset("A", nil, env)
		require.NoError(t, err)
		require.Equal(t, Asset{Name: "A", Kind: DefaultAssetKind}, asset)
		require.Equal(t, "A", asset.Location())
	})

	t.Run("overrides decoded from params", func(t *testing.T) {
		cfg := &ComponentConfig{Params: map[string]any{
			"baseDirectory": "landing/a",
			"pattern":       `(\d+)\.csv`,
			"groupNames":    []any{"num"},
		}}

		asset, err := BuildAsset("A", cfg, env)
		require.NoError(t, err)
		require.Equal(t, "landing/a", asset.Location())
		require.Equal(t, `(\d+)\.csv`, asset.Pattern)
		require.Equal(t, []string{"num"}, asset.GroupNames)
		require.Empty(t, cfg.Name, "configuration must not be modified")
	})

	t.Run("unknown parameter", func(t *testing.T) {
		_, err := BuildAsset("A", &ComponentConfig{Params: map[string]any{"patern": "x"}}, env)
		require.ErrorIs(t, err, ErrClassInstantiation)
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("duplicate group names", func(t *testing.T) {
		_, err := BuildAsset("A", &ComponentConfig{Params: map[string]any{"groupNames": []any{"a", "a"}}}, env)
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := BuildAsset("A", &ComponentConfig{ClassName: "NoSuchAsset"}, env)

		var cie *ClassInstantiationError
		require.ErrorAs(t, err, &cie)
		require.Equal(t, "NoSuchAsset", cie.ClassName)
		require.Equal(t, AssetModuleName, cie.ModuleName)
	})

	t.Run("foreign module", func(t *testing.T) {
		_, err := BuildAsset("A", &ComponentConfig{ModuleName: "other/module"}, env)
		require.ErrorIs(t, err, ErrClassInstantiation)
	})

	t.Run("custom kind receives runtime environment", func(t *testing.T) {
		asset, err := BuildAsset("A", &ComponentConfig{ClassName: prefixedAssetKind}, env)
		require.NoError(t, err)
		require.Equal(t, prefixedAssetKind, asset.Kind)
		require.Equal(t, "warehouse/A", asset.Location())
	})
}

func TestAssetKinds(t *testing.T) {
	t.Parallel()

	kinds := AssetKinds()
	require.Contains(t, kinds, DefaultAssetKind)
	require.Contains(t, kinds, prefixedAssetKind)

	require.Panics(t, func() {
		RegisterAssetKind(DefaultAssetKind, newDefaultAsset)
	})
}
