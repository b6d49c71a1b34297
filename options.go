package dataconn

// Option configures a connector with optional dependencies.
type Option func(*connectorOptions)

// connectorOptions holds optional connector configuration.
type connectorOptions struct {
	hooks    *Hooks
	metrics  MetricsCollector
	logger   Logger
	engine   ExecutionEngine
	resolver PathResolver
	mappers  []func(next MapFunc) MapFunc
}

func applyOptions(opts []Option) connectorOptions {
	var o connectorOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for connector constructors
//
// Example:
//
//	hooks := &dataconn.Hooks{
//	    OnCacheRefreshed: func(ctx context.Context, s dataconn.RefreshSummary) error {
//	        log.Printf("%s: %d references, %d unmatched", s.ConnectorName, s.ReferenceCount, s.UnmatchedCount)
//	        return nil
//	    },
//	}
//	conn, err := dataconn.NewConfiguredAssetConnector(cfg, src, dataconn.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *connectorOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for connector constructors
//
// Example:
//
//	collector := dataconn.NewPrometheusMetrics(prometheus.DefaultRegisterer, "dataconn")
//	conn, err := dataconn.NewConfiguredAssetConnector(cfg, src, dataconn.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *connectorOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for connector constructors
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	conn, err := dataconn.NewConfiguredAssetConnector(cfg, src, dataconn.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *connectorOptions) {
		o.logger = logger
	}
}

// WithExecutionEngine sets the opaque execution engine handle.
//
// The handle is forwarded to asset kinds and partitioners through the runtime
// environment and never inspected by the connector.
func WithExecutionEngine(engine ExecutionEngine) Option {
	return func(o *connectorOptions) {
		o.engine = engine
	}
}

// WithPathResolver sets the resolver used by GetFullPath.
//
// Without this option a lister that also implements PathResolver is used.
func WithPathResolver(resolver PathResolver) Option {
	return func(o *connectorOptions) {
		o.resolver = resolver
	}
}

// WithReferenceMapper wraps the function that maps data references to batch definitions.
//
// Mappers apply in the order given; the first one is outermost. A wrapper may
// call next and then add, drop or rewrite definitions, for example to let one
// reference yield several batch definitions.
//
// Parameters:
//   - mw: Middleware receiving the next mapping function
//
// Returns:
//   - Option: Functional option for NewConfiguredAssetConnector
//
// Example:
//
//	conn, err := dataconn.NewConfiguredAssetConnector(cfg, src,
//	    dataconn.WithReferenceMapper(func(next dataconn.MapFunc) dataconn.MapFunc {
//	        return func(asset dataconn.Asset, ref string) ([]dataconn.BatchDefinition, error) {
//	            defs, err := next(asset, ref)
//	            // ...
//	            return defs, err
//	        }
//	    }))
func WithReferenceMapper(mw func(next MapFunc) MapFunc) Option {
	return func(o *connectorOptions) {
		if mw != nil {
			o.mappers = append(o.mappers, mw)
		}
	}
}
