package sorter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/dataconn/internal/registry"
	"github.com/arloliu/dataconn/types"
)

// ModuleName is the registry namespace of sorter kinds.
const ModuleName = "dataconn/sorter"

// Option configures a built-in sorter.
type Option func(*base)

// WithDescending reverses the sort direction.
//
// Partitions lacking the key still go last.
//
// Returns:
//   - Option: Configuration option
func WithDescending() Option {
	return func(b *base) {
		b.descending = true
	}
}

// base holds the state shared by every built-in sorter.
type base struct {
	name       string
	descending bool
}

func newBase(name string, opts []Option) base {
	b := base{name: name}
	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// Name returns the sorter name, which is the partition definition key it sorts by.
func (b base) Name() string {
	return b.name
}

// Descending reports whether the sorter orders keys from largest to smallest.
func (b base) Descending() bool {
	return b.descending
}

type keyedPartition[K any] struct {
	partition types.Partition
	key       K
	ok        bool
}

// sortByKey stably orders partitions by the parsed value of their name key.
func sortByKey[K any](
	b base,
	partitions []types.Partition,
	parse func(raw string) (K, error),
	compare func(a, c K) int,
) ([]types.Partition, error) {
	items := make([]keyedPartition[K], len(partitions))
	for i, p := range partitions {
		items[i].partition = p

		raw, ok := p.Definition[b.name]
		if !ok {
			continue
		}

		key, err := parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: sorter %q cannot order value %q of partition %q: %w",
				types.ErrInvalidSortKey, b.name, raw, p.Name, err)
		}
		items[i].key = key
		items[i].ok = true
	}

	slices.SortStableFunc(items, func(x, y keyedPartition[K]) int {
		switch {
		case !x.ok && !y.ok:
			return 0
		case !x.ok:
			return 1
		case !y.ok:
			return -1
		}

		c := compare(x.key, y.key)
		if b.descending {
			return -c
		}

		return c
	})

	sorted := make([]types.Partition, len(items))
	for i := range items {
		sorted[i] = items[i].partition
	}

	return sorted, nil
}

// Factory builds a sorter from configuration.
type Factory func(cfg types.ComponentConfig, env types.RuntimeEnvironment) (types.Sorter, error)

var sorters = registry.New[types.Sorter](ModuleName, "")

// Register adds a sorter kind buildable through Build.
//
// Panics if kind is empty or already registered.
//
// Parameters:
//   - kind: ClassName that selects the factory
//   - factory: Sorter constructor
func Register(kind string, factory Factory) {
	sorters.Register(kind, registry.Factory[types.Sorter](factory))
}

// Kinds returns the registered sorter kinds in lexicographic order.
func Kinds() []string {
	return sorters.Kinds()
}

// Build constructs a sorter from its declarative configuration.
//
// Parameters:
//   - cfg: Sorter configuration; Name and ClassName are required
//
// Returns:
//   - types.Sorter: Constructed sorter
//   - error: *types.ClassInstantiationError when the kind is unknown or the parameters are invalid
func Build(cfg types.ComponentConfig) (types.Sorter, error) {
	return sorters.Build(cfg, types.RuntimeEnvironment{})
}

// commonOptions are the parameters shared by every built-in sorter.
type commonOptions struct {
	OrderBy string `mapstructure:"orderBy"`
}

func (o commonOptions) toOptions() ([]Option, error) {
	switch strings.ToLower(o.OrderBy) {
	case "", types.SortAscending:
		return nil, nil
	case types.SortDescending:
		return []Option{WithDescending()}, nil
	default:
		return nil, fmt.Errorf("%w: orderBy must be %q or %q, got %q",
			types.ErrConfiguration, types.SortAscending, types.SortDescending, o.OrderBy)
	}
}

func requireName(cfg types.ComponentConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("%w: sorter name is required", types.ErrConfiguration)
	}

	return nil
}

func init() {
	Register("LexicographicSorter", func(cfg types.ComponentConfig, _ types.RuntimeEnvironment) (types.Sorter, error) {
		if err := requireName(cfg); err != nil {
			return nil, err
		}
		var opts commonOptions
		if err := registry.DecodeParams(cfg.Params, &opts); err != nil {
			return nil, err
		}
		o, err := opts.toOptions()
		if err != nil {
			return nil, err
		}

		return NewLexicographic(cfg.Name, o...), nil
	})

	Register("NumericSorter", func(cfg types.ComponentConfig, _ types.RuntimeEnvironment) (types.Sorter, error) {
		if err := requireName(cfg); err != nil {
			return nil, err
		}
		var opts commonOptions
		if err := registry.DecodeParams(cfg.Params, &opts); err != nil {
			return nil, err
		}
		o, err := opts.toOptions()
		if err != nil {
			return nil, err
		}

		return NewNumeric(cfg.Name, o...), nil
	})

	Register("DateTimeSorter", func(cfg types.ComponentConfig, _ types.RuntimeEnvironment) (types.Sorter, error) {
		if err := requireName(cfg); err != nil {
			return nil, err
		}
		var opts struct {
			commonOptions  `mapstructure:",squash"`
			DatetimeFormat string `mapstructure:"datetimeFormat"`
		}
		if err := registry.DecodeParams(cfg.Params, &opts); err != nil {
			return nil, err
		}
		o, err := opts.toOptions()
		if err != nil {
			return nil, err
		}

		return NewDateTime(cfg.Name, opts.DatetimeFormat, o...), nil
	})

	Register("CustomListSorter", func(cfg types.ComponentConfig, _ types.RuntimeEnvironment) (types.Sorter, error) {
		if err := requireName(cfg); err != nil {
			return nil, err
		}
		var opts struct {
			commonOptions `mapstructure:",squash"`
			ReferenceList []string `mapstructure:"referenceList"`
		}
		if err := registry.DecodeParams(cfg.Params, &opts); err != nil {
			return nil, err
		}
		o, err := opts.toOptions()
		if err != nil {
			return nil, err
		}

		return NewCustomList(cfg.Name, opts.ReferenceList, o...)
	})
}
