package dataconn

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/arloliu/dataconn/internal/hooks"
	"github.com/arloliu/dataconn/internal/logger"
	"github.com/arloliu/dataconn/internal/matcher"
	"github.com/arloliu/dataconn/internal/metrics"
	"github.com/arloliu/dataconn/partitioner"
)

// MapFunc maps one data reference of an asset to its batch definitions.
//
// A nil result marks the reference as unmatched. A non-nil empty result marks it
// as matched without batch definitions: it is neither reported as unmatched nor
// returned from the cache.
type MapFunc func(asset Asset, reference string) ([]BatchDefinition, error)

// ConfiguredAssetConnector catalogs data references for a fixed set of configured assets.
//
// Each asset lists its own location through the ReferenceLister and maps every
// reference with its resolved regex configuration. The resulting cache is
// replaced only by a refresh that completes without error.
//
// Not safe for concurrent use: callers must serialize RefreshDataReferencesCache
// against every other method.
type ConfiguredAssetConnector struct {
	name         string
	envName      string
	engine       ExecutionEngine
	defaultRegex RegexConfig
	assets       map[string]Asset
	assetNames   []string

	lister      ReferenceLister
	resolver    PathResolver
	partitioner *partitioner.Partitioner
	mappers     []func(next MapFunc) MapFunc

	cache *referenceCache

	logger  Logger
	metrics MetricsCollector
	hooks   Hooks
}

// Compile-time assertion that ConfiguredAssetConnector implements DataConnector.
var _ DataConnector = (*ConfiguredAssetConnector)(nil)

// NewConfiguredAssetConnector creates a connector from its configuration.
//
// Every asset is built immediately through the asset kind registry, so an unknown
// kind fails construction. Patterns are compiled at refresh time.
//
// Parameters:
//   - cfg: Connector configuration (copied; later changes have no effect)
//   - lister: Listing service queried once per asset on every refresh
//   - opts: Optional configuration (WithLogger, WithMetrics, WithHooks, ...)
//
// Returns:
//   - *ConfiguredAssetConnector: Connector with an uninitialized cache
//   - error: ErrListerRequired, wrapped ErrConfiguration or *ClassInstantiationError
//
// Example:
//
//	cfg := dataconn.Config{
//	    Name:                     "landing",
//	    ExecutionEnvironmentName: "warehouse",
//	    DefaultRegex:             dataconn.RegexConfig{Pattern: `file_(\d+)\.csv`, GroupNames: []string{"num"}},
//	    Assets:                   map[string]*dataconn.ComponentConfig{"A": nil},
//	}
//	conn, err := dataconn.NewConfiguredAssetConnector(cfg, source.NewStatic(refs))
//	if err != nil {
//	    return err
//	}
//	if err := conn.RefreshDataReferencesCache(ctx); err != nil {
//	    return err
//	}
func NewConfiguredAssetConnector(cfg Config, lister ReferenceLister, opts ...Option) (*ConfiguredAssetConnector, error) {
	if lister == nil {
		return nil, ErrListerRequired
	}

	cfg = cfg.Clone()
	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	c := &ConfiguredAssetConnector{
		name:         cfg.Name,
		envName:      cfg.ExecutionEnvironmentName,
		engine:       o.engine,
		defaultRegex: cfg.DefaultRegex.Clone(),
		assets:       make(map[string]Asset, len(cfg.Assets)),
		assetNames:   slices.Sorted(maps.Keys(cfg.Assets)),
		lister:       lister,
		resolver:     o.resolver,
		mappers:      o.mappers,
		cache:        &referenceCache{state: cacheUninitialized},
		logger:       o.logger,
		metrics:      o.metrics,
		hooks:        hooks.WithDefaults(o.hooks),
	}
	if c.resolver == nil {
		if r, ok := lister.(PathResolver); ok {
			c.resolver = r
		}
	}

	env := RuntimeEnvironment{
		ConnectorName:            c.name,
		ExecutionEnvironmentName: c.envName,
		ExecutionEngine:          c.engine,
	}
	for _, name := range c.assetNames {
		asset, err := BuildAsset(name, cfg.Assets[name], env)
		if err != nil {
			return nil, fmt.Errorf("connector %q: %w", c.name, err)
		}
		c.assets[name] = asset
	}

	p, err := partitioner.New(c.name, cfg.Sorters,
		partitioner.WithLogger(c.logger),
		partitioner.WithExecutionEngine(c.engine),
	)
	if err != nil {
		return nil, err
	}
	c.partitioner = p

	c.logger.Debug("connector constructed",
		"connector", c.name,
		"assets", len(c.assetNames),
		"sorters", len(cfg.Sorters),
	)

	return c, nil
}

// Name returns the connector name.
func (c *ConfiguredAssetConnector) Name() string {
	return c.name
}

// ExecutionEnvironmentName returns the execution environment recorded on batch definitions.
func (c *ConfiguredAssetConnector) ExecutionEnvironmentName() string {
	return c.envName
}

// ExecutionEngine returns the opaque execution engine handle.
func (c *ConfiguredAssetConnector) ExecutionEngine() ExecutionEngine {
	return c.engine
}

// Partitioner returns the partitioner that holds the connector's sorters.
func (c *ConfiguredAssetConnector) Partitioner() *partitioner.Partitioner {
	return c.partitioner
}

// Assets returns a copy of the name to asset mapping.
func (c *ConfiguredAssetConnector) Assets() map[string]Asset {
	out := make(map[string]Asset, len(c.assets))
	for name, asset := range c.assets {
		out[name] = asset.Clone()
	}

	return out
}

// GetAvailableDataAssetNames returns the configured asset names in lexicographic order.
func (c *ConfiguredAssetConnector) GetAvailableDataAssetNames() []string {
	return slices.Clone(c.assetNames)
}

// RegexConfig resolves the regex configuration of an asset.
//
// The connector default is deep-copied, then the asset's pattern and group names
// override it independently when non-empty.
//
// Parameters:
//   - assetName: Configured asset name
//
// Returns:
//   - RegexConfig: Resolved configuration (safe to mutate)
//   - error: ErrAssetNotFound for an unknown asset
func (c *ConfiguredAssetConnector) RegexConfig(assetName string) (RegexConfig, error) {
	asset, err := c.asset(assetName)
	if err != nil {
		return RegexConfig{}, err
	}

	return c.regexConfig(asset), nil
}

func (c *ConfiguredAssetConnector) regexConfig(asset Asset) RegexConfig {
	cfg := c.defaultRegex.Clone()
	if asset.Pattern != "" {
		cfg.Pattern = asset.Pattern
	}
	if len(asset.GroupNames) > 0 {
		cfg.GroupNames = slices.Clone(asset.GroupNames)
	}

	return cfg
}

func (c *ConfiguredAssetConnector) asset(name string) (Asset, error) {
	asset, ok := c.assets[name]
	if !ok {
		return Asset{}, fmt.Errorf("connector %q: %w: %q", c.name, ErrAssetNotFound, name)
	}

	return asset, nil
}

// RefreshDataReferencesCache lists every asset and rebuilds the reference cache.
//
// The refresh is all-or-nothing: on any listing or configuration error the
// previous cache, if any, stays in place and the error is returned unchanged
// in kind. Nothing is retried.
//
// Parameters:
//   - ctx: Context forwarded to the listing service
//
// Returns:
//   - error: Wrapped ErrListingFailed or ErrConfiguration
func (c *ConfiguredAssetConnector) RefreshDataReferencesCache(ctx context.Context) error {
	start := time.Now()

	next, err := c.buildCache(ctx)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		c.metrics.RecordRefresh(c.name, elapsed, false)
		c.logger.Error("data references cache refresh failed", "connector", c.name, "error", err)
		if hookErr := c.hooks.OnError(ctx, err); hookErr != nil {
			c.logger.Warn("OnError hook failed", "connector", c.name, "error", hookErr)
		}

		return err
	}

	c.cache = next
	summary := next.summary(c.name)

	c.metrics.RecordRefresh(c.name, elapsed, true)
	for _, name := range next.names {
		matched, unmatched := next.assetCounts(name)
		c.metrics.RecordReferenceCounts(c.name, name, matched, unmatched)
	}
	c.metrics.RecordAmbiguousReferences(c.name, summary.AmbiguousCount)
	c.logger.Info("data references cache refreshed",
		"connector", c.name,
		"references", summary.ReferenceCount,
		"unmatched", summary.UnmatchedCount,
		"durationSeconds", elapsed,
	)
	if summary.AmbiguousCount > 0 {
		c.logger.Warn("references map to several batch definitions; only the first is returned from cache",
			"connector", c.name,
			"ambiguous", summary.AmbiguousCount,
		)
	}

	if hookErr := c.hooks.OnCacheRefreshed(ctx, summary); hookErr != nil {
		c.logger.Warn("OnCacheRefreshed hook failed", "connector", c.name, "error", hookErr)
	}

	return nil
}

func (c *ConfiguredAssetConnector) buildCache(ctx context.Context) (*referenceCache, error) {
	next := newReferenceCache(len(c.assetNames))

	for _, name := range c.assetNames {
		asset := c.assets[name]

		mapFn, err := c.mapFunc(asset)
		if err != nil {
			return nil, err
		}

		refs, err := c.dataReferenceListForAsset(ctx, asset)
		if err != nil {
			return nil, err
		}

		entries := make([]referenceEntry, len(refs))
		for i, ref := range refs {
			defs, err := mapFn(asset, ref)
			if err != nil {
				return nil, fmt.Errorf("connector %q asset %q reference %q: %w", c.name, name, ref, err)
			}
			entries[i] = referenceEntry{reference: ref, definitions: defs}
		}

		next.put(name, entries)
	}

	return next, nil
}

// dataReferenceListForAsset lists the asset location and returns the references
// sorted lexicographically without duplicates.
func (c *ConfiguredAssetConnector) dataReferenceListForAsset(ctx context.Context, asset Asset) ([]string, error) {
	start := time.Now()
	refs, err := c.lister.ListReferences(ctx, asset.Location())
	c.metrics.RecordListingDuration(asset.Name, time.Since(start).Seconds(), err == nil)
	if err != nil {
		return nil, fmt.Errorf("%w: connector %q asset %q location %q: %w",
			ErrListingFailed, c.name, asset.Name, asset.Location(), err)
	}

	refs = slices.Clone(refs)
	slices.Sort(refs)

	return slices.Compact(refs), nil
}

// mapFunc compiles the asset's regex configuration and wraps it with the configured mappers.
func (c *ConfiguredAssetConnector) mapFunc(asset Asset) (MapFunc, error) {
	regex := c.regexConfig(asset)
	m, err := matcher.New(regex)
	if err != nil {
		return nil, fmt.Errorf("connector %q asset %q: %w", c.name, asset.Name, err)
	}

	var fn MapFunc = func(a Asset, reference string) ([]BatchDefinition, error) {
		def, ok := m.Match(reference)
		if !ok {
			return nil, nil
		}

		return []BatchDefinition{{
			ExecutionEnvironmentName: c.envName,
			DataConnectorName:        c.name,
			DataAssetName:            a.Name,
			PartitionDefinition:      def,
		}}, nil
	}

	for i := len(c.mappers) - 1; i >= 0; i-- {
		fn = c.mappers[i](fn)
	}

	return fn, nil
}

// MapDataReferenceToBatchDefinitionList maps one reference with the asset's resolved pattern.
//
// The cache is neither read nor modified.
//
// Parameters:
//   - assetName: Configured asset name
//   - reference: Data reference relative to the asset location
//
// Returns:
//   - []BatchDefinition: Batch definitions (nil when the pattern does not match)
//   - error: ErrAssetNotFound or wrapped ErrConfiguration
func (c *ConfiguredAssetConnector) MapDataReferenceToBatchDefinitionList(assetName, reference string) ([]BatchDefinition, error) {
	asset, err := c.asset(assetName)
	if err != nil {
		return nil, err
	}

	fn, err := c.mapFunc(asset)
	if err != nil {
		return nil, err
	}

	defs, err := fn(asset, reference)
	if err != nil {
		return nil, err
	}

	return defs, nil
}

// GetDataReferenceListCount returns the number of cached references across all assets,
// matched or not.
//
// Returns:
//   - int: Total reference count
//   - error: ErrNotRefreshed before the first successful refresh
func (c *ConfiguredAssetConnector) GetDataReferenceListCount() (int, error) {
	if err := c.cache.ready(c.name); err != nil {
		return 0, err
	}

	return c.cache.count(), nil
}

// GetDataReferenceListCountForAsset returns the number of cached references of one asset.
func (c *ConfiguredAssetConnector) GetDataReferenceListCountForAsset(assetName string) (int, error) {
	refs, err := c.GetCachedDataReferences(assetName)
	if err != nil {
		return 0, err
	}

	return len(refs), nil
}

// GetCachedDataReferences returns the cached references of one asset in lexicographic order.
//
// Returns:
//   - []string: References relative to the asset location
//   - error: ErrNotRefreshed or ErrAssetNotFound
func (c *ConfiguredAssetConnector) GetCachedDataReferences(assetName string) ([]string, error) {
	if err := c.cache.ready(c.name); err != nil {
		return nil, err
	}
	if _, err := c.asset(assetName); err != nil {
		return nil, err
	}

	refs, _ := c.cache.references(assetName)

	return refs, nil
}

// GetUnmatchedDataReferences returns the references that matched no pattern.
//
// References are grouped by asset in lexicographic asset order.
//
// Returns:
//   - []string: Unmatched references (empty, never nil, when all matched)
//   - error: ErrNotRefreshed before the first successful refresh
func (c *ConfiguredAssetConnector) GetUnmatchedDataReferences() ([]string, error) {
	if err := c.cache.ready(c.name); err != nil {
		return nil, err
	}

	return c.cache.unmatched(), nil
}

// GetBatchDefinitionListFromCache returns one batch definition per matched reference.
//
// A reference mapped to several batch definitions contributes only its first one;
// use GetAmbiguousDataReferences to find such references.
//
// Returns:
//   - []BatchDefinition: Definitions in asset then reference order
//   - error: ErrNotRefreshed before the first successful refresh
func (c *ConfiguredAssetConnector) GetBatchDefinitionListFromCache() ([]BatchDefinition, error) {
	if err := c.cache.ready(c.name); err != nil {
		return nil, err
	}

	return c.cache.firstDefinitions(), nil
}

// GetAmbiguousDataReferences returns every reference mapped to more than one batch definition.
//
// Returns:
//   - map[string]map[string][]BatchDefinition: Asset name to reference to all of its definitions
//   - error: ErrNotRefreshed before the first successful refresh
func (c *ConfiguredAssetConnector) GetAmbiguousDataReferences() (map[string]map[string][]BatchDefinition, error) {
	if err := c.cache.ready(c.name); err != nil {
		return nil, err
	}

	return c.cache.ambiguous(), nil
}

// GetBatchDefinitionList returns the cached batch definitions satisfying req,
// ordered by the connector's sorters.
//
// Empty request fields match anything and PartitionRequest must be a subset of
// a definition's partition definition.
//
// Parameters:
//   - req: Batch request used as a filter
//
// Returns:
//   - []BatchDefinition: Matching definitions, sorted
//   - error: ErrNotRefreshed, ErrAssetNotFound, ErrConfiguration for a foreign
//     connector name, or a sorter failure
func (c *ConfiguredAssetConnector) GetBatchDefinitionList(req BatchRequest) ([]BatchDefinition, error) {
	if err := c.cache.ready(c.name); err != nil {
		return nil, err
	}
	if req.DataConnectorName != "" && req.DataConnectorName != c.name {
		return nil, fmt.Errorf("%w: batch request for connector %q sent to %q",
			ErrConfiguration, req.DataConnectorName, c.name)
	}
	if req.DataAssetName != "" {
		if _, err := c.asset(req.DataAssetName); err != nil {
			return nil, err
		}
	}

	var partitions []Partition
	for _, name := range c.cache.names {
		for _, e := range c.cache.assets[name] {
			if len(e.definitions) == 0 || !req.Matches(e.definitions[0]) {
				continue
			}
			partitions = append(partitions, e.definitions[0].Partition(e.reference))
		}
	}

	sorted, err := c.partitioner.GetSortedPartitions(partitions)
	if err != nil {
		return nil, fmt.Errorf("connector %q: %w", c.name, err)
	}

	defs := make([]BatchDefinition, len(sorted))
	for i, p := range sorted {
		defs[i] = BatchDefinition{
			ExecutionEnvironmentName: c.envName,
			DataConnectorName:        c.name,
			DataAssetName:            p.DataAssetName,
			PartitionDefinition:      p.Definition.Clone(),
		}
	}

	return defs, nil
}

// GetFullPath resolves a cached reference of an asset to a fully-qualified location.
//
// Returns:
//   - string: Location understood by the storage backend
//   - error: ErrAssetNotFound or ErrPathResolverRequired
func (c *ConfiguredAssetConnector) GetFullPath(reference, assetName string) (string, error) {
	asset, err := c.asset(assetName)
	if err != nil {
		return "", err
	}
	if c.resolver == nil {
		return "", fmt.Errorf("connector %q: %w", c.name, ErrPathResolverRequired)
	}

	return c.resolver.ResolveFullPath(reference, asset), nil
}
