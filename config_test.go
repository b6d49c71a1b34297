package dataconn

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/dataconn/sorter"
)

const sampleConfigYAML = `
name: landing
executionEnvironmentName: warehouse
defaultRegex:
  pattern: 'file_(\d+)\.csv'
  groupNames: [num]
assets:
  A:
  B:
    baseDirectory: landing/b
    pattern: 'other_(\d+)\.csv'
    groupNames: [id]
sorters:
  - name: num
    className: NumericSorter
    orderBy: desc
`

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg.Assets)
	require.Empty(t, cfg.Assets)
	require.Empty(t, cfg.Sorters)
	require.Empty(t, cfg.DefaultRegex.Pattern)
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills nil assets and module names", func(t *testing.T) {
		cfg := Config{
			Name:    "c",
			Assets:  map[string]*ComponentConfig{"A": nil, "B": {ClassName: "Custom"}},
			Sorters: []ComponentConfig{{Name: "num", ClassName: "NumericSorter"}},
		}
		SetDefaults(&cfg)

		require.Equal(t, DefaultAssetKind, cfg.Assets["A"].ClassName)
		require.Equal(t, AssetModuleName, cfg.Assets["A"].ModuleName)
		require.Equal(t, "Custom", cfg.Assets["B"].ClassName)
		require.Equal(t, AssetModuleName, cfg.Assets["B"].ModuleName)
		require.Equal(t, sorter.ModuleName, cfg.Sorters[0].ModuleName)
	})

	t.Run("nil asset map", func(t *testing.T) {
		cfg := Config{Name: "c"}
		SetDefaults(&cfg)
		require.NotNil(t, cfg.Assets)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Name:    "c",
			Assets:  map[string]*ComponentConfig{"A": {ClassName: "Asset", ModuleName: "custom/module"}},
			Sorters: []ComponentConfig{{Name: "num", ModuleName: "custom/sorters"}},
		}
		SetDefaults(&cfg)

		require.Equal(t, "custom/module", cfg.Assets["A"].ModuleName)
		require.Equal(t, "custom/sorters", cfg.Sorters[0].ModuleName)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Name:         "c",
			DefaultRegex: RegexConfig{Pattern: `(\d+)`, GroupNames: []string{"n"}},
			Assets:       map[string]*ComponentConfig{"A": nil},
			Sorters:      []ComponentConfig{{Name: "n", ClassName: "NumericSorter"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing name", func(cfg *Config) { cfg.Name = "" }, true},
		{"duplicate default group", func(cfg *Config) { cfg.DefaultRegex.GroupNames = []string{"n", "n"} }, true},
		{"empty default group", func(cfg *Config) { cfg.DefaultRegex.GroupNames = []string{""} }, true},
		{"empty asset name", func(cfg *Config) { cfg.Assets[""] = nil }, true},
		{"unnamed sorter", func(cfg *Config) { cfg.Sorters = append(cfg.Sorters, ComponentConfig{}) }, true},
		{"duplicate sorter", func(cfg *Config) { cfg.Sorters = append(cfg.Sorters, cfg.Sorters[0]) }, true},
		// Pattern problems surface at refresh time
		{"bad pattern passes", func(cfg *Config) { cfg.DefaultRegex.Pattern = "(" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrConfiguration)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	orig := Config{
		Name:         "c",
		DefaultRegex: RegexConfig{Pattern: "p", GroupNames: []string{"a"}},
		Assets: map[string]*ComponentConfig{
			"A": nil,
			"B": {Params: map[string]any{"pattern": "x"}},
		},
		Sorters: []ComponentConfig{{Name: "a", Params: map[string]any{"orderBy": "asc"}}},
	}

	clone := orig.Clone()
	clone.DefaultRegex.GroupNames[0] = "changed"
	clone.Assets["B"].Params["pattern"] = "changed"
	clone.Assets["C"] = nil
	clone.Sorters[0].Params["orderBy"] = "desc"

	require.Equal(t, "a", orig.DefaultRegex.GroupNames[0])
	require.Equal(t, "x", orig.Assets["B"].Params["pattern"])
	require.NotContains(t, orig.Assets, "C")
	require.Equal(t, "asc", orig.Sorters[0].Params["orderBy"])
	require.Nil(t, clone.Assets["A"])
}

func TestParseConfig(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(sampleConfigYAML))
		require.NoError(t, err)

		require.Equal(t, "landing", cfg.Name)
		require.Equal(t, "warehouse", cfg.ExecutionEnvironmentName)
		require.Equal(t, `file_(\d+)\.csv`, cfg.DefaultRegex.Pattern)
		require.Equal(t, []string{"num"}, cfg.DefaultRegex.GroupNames)

		require.Len(t, cfg.Assets, 2)
		require.Equal(t, DefaultAssetKind, cfg.Assets["A"].ClassName)
		require.Equal(t, "landing/b", cfg.Assets["B"].Params["baseDirectory"])

		require.Len(t, cfg.Sorters, 1)
		require.Equal(t, "num", cfg.Sorters[0].Name)
		require.Equal(t, "NumericSorter", cfg.Sorters[0].ClassName)
		require.Equal(t, "desc", cfg.Sorters[0].Params["orderBy"])
	})

	t.Run("unknown top-level key", func(t *testing.T) {
		_, err := ParseConfig([]byte("name: c\nassetz: {}\n"))
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := ParseConfig([]byte("name: [unterminated"))
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("validation failure", func(t *testing.T) {
		_, err := ParseConfig([]byte("executionEnvironmentName: warehouse\n"))
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := ParseConfig(nil)
		require.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfigYAML))
	require.NoError(t, err)

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	again, err := ParseConfig(data)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestLoadConfigFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/dataconn/landing.yaml", []byte(sampleConfigYAML), 0o644))

	cfg, err := LoadConfigFs(fs, "/etc/dataconn/landing.yaml")
	require.NoError(t, err)
	require.Equal(t, "landing", cfg.Name)

	_, err = LoadConfigFs(fs, "/etc/dataconn/missing.yaml")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrConfiguration)

	require.NoError(t, afero.WriteFile(fs, "/etc/dataconn/bad.yaml", []byte("name: \"\"\n"), 0o644))
	_, err = LoadConfigFs(fs, "/etc/dataconn/bad.yaml")
	require.ErrorIs(t, err, ErrConfiguration)
}
