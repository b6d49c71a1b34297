package partitioner

import (
	"errors"
	"fmt"
	"slices"

	"github.com/arloliu/dataconn/internal/logger"
	"github.com/arloliu/dataconn/sorter"
	"github.com/arloliu/dataconn/types"
)

// SorterBuilder constructs a sorter from its declarative configuration.
type SorterBuilder func(cfg types.ComponentConfig) (types.Sorter, error)

// Option configures a Partitioner.
type Option func(*Partitioner)

// WithLogger sets the logger.
//
// Parameters:
//   - l: Logger implementation (nil keeps the no-op logger)
//
// Returns:
//   - Option: Configuration option
func WithLogger(l types.Logger) Option {
	return func(p *Partitioner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithExecutionEngine attaches the opaque execution engine handle.
func WithExecutionEngine(engine types.ExecutionEngine) Option {
	return func(p *Partitioner) {
		p.engine = engine
	}
}

// WithSorterBuilder replaces the sorter builder (default: sorter.Build).
//
// Parameters:
//   - b: Builder invoked at most once per declared sorter name
//
// Returns:
//   - Option: Configuration option
func WithSorterBuilder(b SorterBuilder) Option {
	return func(p *Partitioner) {
		if b != nil {
			p.build = b
		}
	}
}

// WithLister sets the reference lister used for partition discovery.
func WithLister(l types.ReferenceLister) Option {
	return func(p *Partitioner) {
		p.lister = l
	}
}

// Partitioner holds the declared sorters of one partitioning scheme.
//
// Not safe for concurrent use.
type Partitioner struct {
	name    string
	configs []types.ComponentConfig
	sorters map[string]types.Sorter

	engine types.ExecutionEngine
	lister types.ReferenceLister
	build  SorterBuilder
	logger types.Logger
}

// New creates a Partitioner.
//
// Parameters:
//   - name: Partitioner name
//   - sorterConfigs: Sorter configurations in declaration order; names must be unique and non-empty
//   - opts: Optional configuration
//
// Returns:
//   - *Partitioner: Partitioner with no sorter built yet
//   - error: Wrapped types.ErrConfiguration for a missing or duplicate sorter name
func New(name string, sorterConfigs []types.ComponentConfig, opts ...Option) (*Partitioner, error) {
	configs := make([]types.ComponentConfig, 0, len(sorterConfigs))
	seen := make(map[string]struct{}, len(sorterConfigs))
	for i, cfg := range sorterConfigs {
		if cfg.Name == "" {
			return nil, fmt.Errorf("%w: partitioner %q: sorter %d has no name", types.ErrConfiguration, name, i)
		}
		if _, dup := seen[cfg.Name]; dup {
			return nil, fmt.Errorf("%w: partitioner %q: duplicate sorter name %q", types.ErrConfiguration, name, cfg.Name)
		}
		seen[cfg.Name] = struct{}{}
		configs = append(configs, cfg.Clone())
	}

	p := &Partitioner{
		name:    name,
		configs: configs,
		sorters: make(map[string]types.Sorter, len(configs)),
		build:   sorter.Build,
		logger:  logger.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Name returns the partitioner name.
func (p *Partitioner) Name() string {
	return p.name
}

// ExecutionEngine returns the execution engine handle given at construction.
func (p *Partitioner) ExecutionEngine() types.ExecutionEngine {
	return p.engine
}

// SorterNames returns the declared sorter names in declaration order.
func (p *Partitioner) SorterNames() []string {
	names := make([]string, len(p.configs))
	for i, cfg := range p.configs {
		names[i] = cfg.Name
	}

	return names
}

// GetSorter returns the sorter declared under name.
//
// The first call builds the sorter; later calls return the same instance.
//
// Parameters:
//   - name: Declared sorter name
//
// Returns:
//   - types.Sorter: Memoized sorter
//   - error: types.ErrConfiguration (wrapping types.ErrSorterNotFound) for an
//     undeclared name, *types.ClassInstantiationError when construction fails
func (p *Partitioner) GetSorter(name string) (types.Sorter, error) {
	if s, ok := p.sorters[name]; ok {
		return s, nil
	}

	idx := slices.IndexFunc(p.configs, func(cfg types.ComponentConfig) bool { return cfg.Name == name })
	if idx < 0 {
		return nil, fmt.Errorf("%w: partitioner %q: %w: %q", types.ErrConfiguration, p.name, types.ErrSorterNotFound, name)
	}

	s, err := p.build(p.configs[idx])
	if err != nil {
		var cie *types.ClassInstantiationError
		if !errors.As(err, &cie) {
			err = &types.ClassInstantiationError{
				ModuleName: p.configs[idx].ModuleName,
				ClassName:  p.configs[idx].ClassName,
				Err:        err,
			}
		}

		return nil, fmt.Errorf("partitioner %q: sorter %q: %w", p.name, name, err)
	}

	p.logger.Debug("sorter built", "partitioner", p.name, "sorter", name, "kind", p.configs[idx].ClassName)
	p.sorters[name] = s

	return s, nil
}

// Sorters returns every declared sorter in declaration order, building any not yet built.
func (p *Partitioner) Sorters() ([]types.Sorter, error) {
	sorters := make([]types.Sorter, 0, len(p.configs))
	for _, cfg := range p.configs {
		s, err := p.GetSorter(cfg.Name)
		if err != nil {
			return nil, err
		}
		sorters = append(sorters, s)
	}

	return sorters, nil
}

// GetSortedPartitions orders partitions by the declared sorters.
//
// Sorters run in reverse declaration order and each pass is stable, so the first
// declared sorter is the primary key and later ones break its ties. Without
// sorters the input order is kept.
//
// Parameters:
//   - partitions: Partitions to order (not modified)
//
// Returns:
//   - []types.Partition: Reordered copy with exactly the input elements
//   - error: Sorter resolution or types.ErrInvalidSortKey failure
func (p *Partitioner) GetSortedPartitions(partitions []types.Partition) ([]types.Partition, error) {
	sorters, err := p.Sorters()
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(partitions)
	for i := len(sorters) - 1; i >= 0; i-- {
		sorted, err = sorters[i].SortPartitions(sorted)
		if err != nil {
			return nil, fmt.Errorf("partitioner %q: %w", p.name, err)
		}
	}

	return sorted, nil
}
