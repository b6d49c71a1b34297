package dataconn

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/arloliu/dataconn/internal/hooks"
	"github.com/arloliu/dataconn/internal/logger"
	"github.com/arloliu/dataconn/internal/metrics"
	"github.com/arloliu/dataconn/partitioner"
)

// Placeholder names recorded on batch requests built by DictConnector.
const (
	FakeExecutionEnvironmentName = "FAKE_EXECUTION_ENVIRONMENT_NAME"
	FakeDataAssetName            = "FAKE_DATA_ASSET_NAME"
)

// PartitionerConfig declares one regex partitioner of a DictConnector.
type PartitionerConfig struct {
	Regex   RegexConfig       `yaml:"regex"`
	Sorters []ComponentConfig `yaml:"sorters"`
}

// DictConfig is the configuration of a DictConnector.
type DictConfig struct {
	// Name is the connector name.
	Name string `yaml:"name"`

	// Partitioners maps partitioner name to its declaration.
	Partitioners map[string]PartitionerConfig `yaml:"partitioners"`

	// DefaultPartitioner names the partitioner used to map data objects.
	// Empty leaves every data object unmapped.
	DefaultPartitioner string `yaml:"defaultPartitioner"`
}

// DictConnector catalogs the keys of an in-memory table of data objects.
//
// It mirrors the file path connectors without touching storage: keys play the
// role of data references and the default partitioner maps each key to a batch
// request. It also serves its keys as a ReferenceLister, so its partitioners can
// discover partitions directly.
//
// Not safe for concurrent use.
type DictConnector struct {
	name               string
	objects            map[string]any
	partitioners       map[string]*partitioner.RegexPartitioner
	defaultPartitioner string

	state cacheState
	cache map[string]*BatchRequest

	logger  Logger
	metrics MetricsCollector
	hooks   Hooks
}

// NewDictConnector creates a connector over data.
//
// The table is copied shallowly; later changes to data are not seen.
//
// Parameters:
//   - cfg: Connector configuration
//   - data: Data objects keyed by pretend path
//   - opts: Optional configuration (WithLogger, WithMetrics, WithHooks, WithExecutionEngine);
//     WithPathResolver and WithReferenceMapper do not apply and are ignored
//
// Returns:
//   - *DictConnector: Connector with an uninitialized cache
//   - error: Wrapped ErrConfiguration for a missing name or invalid partitioner
func NewDictConnector(cfg DictConfig, data map[string]any, opts ...Option) (*DictConnector, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: connector name is required", ErrConfiguration)
	}

	o := applyOptions(opts)
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	c := &DictConnector{
		name:               cfg.Name,
		objects:            maps.Clone(data),
		partitioners:       make(map[string]*partitioner.RegexPartitioner, len(cfg.Partitioners)),
		defaultPartitioner: cfg.DefaultPartitioner,
		logger:             o.logger,
		metrics:            o.metrics,
		hooks:              hooks.WithDefaults(o.hooks),
	}
	if c.objects == nil {
		c.objects = map[string]any{}
	}

	for name, pc := range cfg.Partitioners {
		p, err := partitioner.NewRegex(name, pc.Regex, pc.Sorters,
			partitioner.WithLogger(c.logger),
			partitioner.WithExecutionEngine(o.engine),
			partitioner.WithLister(c),
		)
		if err != nil {
			return nil, fmt.Errorf("connector %q: %w", c.name, err)
		}
		c.partitioners[name] = p
	}

	c.logger.Debug("dict connector constructed",
		"connector", c.name,
		"objects", len(c.objects),
		"partitioners", len(c.partitioners),
	)

	return c, nil
}

// Name returns the connector name.
func (c *DictConnector) Name() string {
	return c.name
}

// Partitioner returns the partitioner declared under name.
func (c *DictConnector) Partitioner(name string) (*partitioner.RegexPartitioner, bool) {
	p, ok := c.partitioners[name]
	return p, ok
}

// DefaultPartitioner returns the partitioner used to map data objects.
//
// Returns:
//   - *partitioner.RegexPartitioner: Default partitioner
//   - error: ErrNoDefaultPartitioner when unset or not declared
func (c *DictConnector) DefaultPartitioner() (*partitioner.RegexPartitioner, error) {
	if c.defaultPartitioner == "" {
		return nil, fmt.Errorf("connector %q: %w", c.name, ErrNoDefaultPartitioner)
	}

	p, ok := c.partitioners[c.defaultPartitioner]
	if !ok {
		return nil, fmt.Errorf("connector %q: %w: %q is not declared", c.name, ErrNoDefaultPartitioner, c.defaultPartitioner)
	}

	return p, nil
}

// DataObjectKeys returns the keys of the data table in lexicographic order.
func (c *DictConnector) DataObjectKeys() []string {
	return slices.Sorted(maps.Keys(c.objects))
}

// GetDataObject returns the data object stored under key.
func (c *DictConnector) GetDataObject(key string) (any, bool) {
	obj, ok := c.objects[key]
	return obj, ok
}

// ListReferences returns the keys under location, relative to it.
//
// An empty location lists every key.
func (c *DictConnector) ListReferences(_ context.Context, location string) ([]string, error) {
	keys := c.DataObjectKeys()
	if location == "" {
		return keys, nil
	}

	prefix := strings.TrimSuffix(location, "/") + "/"
	refs := make([]string, 0, len(keys))
	for _, k := range keys {
		if rel, ok := strings.CutPrefix(k, prefix); ok && rel != "" {
			refs = append(refs, rel)
		}
	}

	return refs, nil
}

// RefreshDataObjectCache maps every key through the default partitioner.
//
// Without a usable default partitioner every key is cached as unmatched; this is
// not an error. The OnCacheRefreshed hook runs with a background context and its
// error is only logged.
func (c *DictConnector) RefreshDataObjectCache() {
	start := time.Now()

	p, err := c.DefaultPartitioner()
	if err != nil {
		c.logger.Debug("no default partitioner; data objects stay unmapped", "connector", c.name, "error", err)
	}

	keys := c.DataObjectKeys()
	next := make(map[string]*BatchRequest, len(keys))
	matched := 0
	for _, key := range keys {
		next[key] = nil
		if p == nil {
			continue
		}

		part, ok := p.FindPartitionForPath(key)
		if !ok {
			continue
		}
		next[key] = &BatchRequest{
			ExecutionEnvironmentName: FakeExecutionEnvironmentName,
			DataConnectorName:        c.name,
			DataAssetName:            FakeDataAssetName,
			PartitionRequest:         part.Definition,
		}
		matched++
	}

	c.cache = next
	c.state = cacheReady

	c.metrics.RecordRefresh(c.name, time.Since(start).Seconds(), true)
	c.metrics.RecordReferenceCounts(c.name, FakeDataAssetName, matched, len(keys)-matched)
	c.logger.Info("data object cache refreshed",
		"connector", c.name,
		"objects", len(keys),
		"unmatched", len(keys)-matched,
	)

	summary := RefreshSummary{
		ConnectorName:  c.name,
		ReferenceCount: len(keys),
		UnmatchedCount: len(keys) - matched,
	}
	if hookErr := c.hooks.OnCacheRefreshed(context.Background(), summary); hookErr != nil {
		c.logger.Warn("OnCacheRefreshed hook failed", "connector", c.name, "error", hookErr)
	}
}

// GetUnmatchedDataObjects returns the keys the default partitioner did not map.
//
// Returns:
//   - []string: Unmatched keys in lexicographic order
//   - error: ErrNotRefreshed before the first refresh
func (c *DictConnector) GetUnmatchedDataObjects() ([]string, error) {
	if c.state != cacheReady {
		return nil, fmt.Errorf("connector %q: %w", c.name, ErrNotRefreshed)
	}

	out := []string{}
	for _, key := range slices.Sorted(maps.Keys(c.cache)) {
		if c.cache[key] == nil {
			out = append(out, key)
		}
	}

	return out, nil
}

// GetCachedBatchRequest returns the batch request cached for key.
//
// Returns:
//   - *BatchRequest: Cached request, nil when key was unmatched
//   - bool: false when key is not cached
//   - error: ErrNotRefreshed before the first refresh
func (c *DictConnector) GetCachedBatchRequest(key string) (*BatchRequest, bool, error) {
	if c.state != cacheReady {
		return nil, false, fmt.Errorf("connector %q: %w", c.name, ErrNotRefreshed)
	}

	req, ok := c.cache[key]
	if !ok || req == nil {
		return nil, ok, nil
	}

	out := *req
	out.PartitionRequest = req.PartitionRequest.Clone()

	return &out, true, nil
}
