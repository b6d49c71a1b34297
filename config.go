package dataconn

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/dataconn/sorter"
)

// Config is the declarative configuration of a ConfiguredAssetConnector.
//
// YAML example:
//
//	name: landing
//	executionEnvironmentName: warehouse
//	defaultRegex:
//	  pattern: '(\w+)_(\d{8})\.csv$'
//	  groupNames: [name, date]
//	assets:
//	  orders:
//	    baseDirectory: landing/orders
//	  refunds:
//	    pattern: 'refund_(\d{8})\.csv$'
//	    groupNames: [date]
//	  events:
//	sorters:
//	  - name: date
//	    className: DateTimeSorter
//	    datetimeFormat: "20060102"
//	    orderBy: desc
type Config struct {
	// Name is the connector name recorded on every batch definition.
	Name string `yaml:"name"`

	// ExecutionEnvironmentName is recorded on every batch definition.
	ExecutionEnvironmentName string `yaml:"executionEnvironmentName"`

	// DefaultRegex applies to every asset that does not override it.
	// Assets override Pattern and GroupNames independently.
	DefaultRegex RegexConfig `yaml:"defaultRegex"`

	// Assets maps asset name to asset configuration. A nil entry builds the
	// default asset kind with no overrides.
	Assets map[string]*ComponentConfig `yaml:"assets"`

	// Sorters orders batch definitions returned by GetBatchDefinitionList.
	// The first declared sorter is the primary key.
	Sorters []ComponentConfig `yaml:"sorters"`
}

// DefaultConfig returns a Config with no assets and no sorters.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Assets: map[string]*ComponentConfig{},
	}
}

// SetDefaults fills in missing configuration values.
//
// Nil asset entries are replaced by the default asset kind, and missing class and
// module names on assets and sorters are filled from their registries.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	if cfg.Assets == nil {
		cfg.Assets = map[string]*ComponentConfig{}
	}

	for name, asset := range cfg.Assets {
		var ac ComponentConfig
		if asset != nil {
			ac = *asset
		}
		ac = assetKinds.ApplyDefaults(ac)
		cfg.Assets[name] = &ac
	}

	for i := range cfg.Sorters {
		if cfg.Sorters[i].ModuleName == "" {
			cfg.Sorters[i].ModuleName = sorter.ModuleName
		}
	}
}

// Validate checks configuration constraints that do not require listing data.
//
// Pattern compilation and group-count checks run at refresh time so that a
// connector can be built before its patterns are final.
//
// Returns:
//   - error: Wrapped ErrConfiguration describing the first violation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Name == "" {
		return fmt.Errorf("%w: connector name is required", ErrConfiguration)
	}

	if err := validateGroupNames(cfg.DefaultRegex.GroupNames); err != nil {
		return fmt.Errorf("%w: defaultRegex: %w", ErrConfiguration, err)
	}

	for name := range cfg.Assets {
		if name == "" {
			return fmt.Errorf("%w: asset name must not be empty", ErrConfiguration)
		}
	}

	seen := make(map[string]struct{}, len(cfg.Sorters))
	for i, s := range cfg.Sorters {
		if s.Name == "" {
			return fmt.Errorf("%w: sorter %d has no name", ErrConfiguration, i)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: duplicate sorter name %q", ErrConfiguration, s.Name)
		}
		seen[s.Name] = struct{}{}
	}

	return nil
}

// Clone returns a deep copy whose maps and slices can be mutated independently.
func (cfg Config) Clone() Config {
	out := cfg
	out.DefaultRegex = cfg.DefaultRegex.Clone()

	if cfg.Assets != nil {
		out.Assets = make(map[string]*ComponentConfig, len(cfg.Assets))
		for name, asset := range cfg.Assets {
			if asset == nil {
				out.Assets[name] = nil
				continue
			}
			ac := asset.Clone()
			out.Assets[name] = &ac
		}
	}

	if cfg.Sorters != nil {
		out.Sorters = make([]ComponentConfig, len(cfg.Sorters))
		for i, s := range cfg.Sorters {
			out.Sorters[i] = s.Clone()
		}
	}

	return out
}

func validateGroupNames(names []string) error {
	for i, n := range names {
		if n == "" {
			return fmt.Errorf("group name %d is empty", i)
		}
		if slices.Contains(names[:i], n) {
			return fmt.Errorf("duplicate group name %q", n)
		}
	}

	return nil
}

// ParseConfig decodes a YAML connector configuration.
//
// Unknown top-level keys are rejected. Defaults are applied and the result is validated.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Parsed configuration
//   - error: Wrapped ErrConfiguration on decode or validation failure
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := decodeStrict(data, &cfg); err != nil {
		return Config{}, err
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML connector configuration from the OS filesystem.
func LoadConfig(path string) (Config, error) {
	return LoadConfigFs(afero.NewOsFs(), path)
}

// LoadConfigFs reads and parses a YAML connector configuration from fsys.
//
// Parameters:
//   - fsys: Filesystem to read from
//   - path: Path of the YAML file
//
// Returns:
//   - Config: Parsed configuration
//   - error: Read error or wrapped ErrConfiguration
func LoadConfigFs(fsys afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return nil
}
