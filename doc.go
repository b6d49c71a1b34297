// Package dataconn catalogs raw data references and resolves them into batch definitions.
//
// A data connector asks a listing service for the references stored under each
// configured asset, matches every reference against the asset's regular
// expression, and caches the resulting batch definitions. Callers then query the
// cache for counts, unmatched references and batch definitions.
//
// # Quick Start
//
//	import (
//	    "github.com/arloliu/dataconn"
//	    "github.com/arloliu/dataconn/source"
//	)
//
//	cfg := dataconn.Config{
//	    Name:                     "landing",
//	    ExecutionEnvironmentName: "warehouse",
//	    DefaultRegex: dataconn.RegexConfig{
//	        Pattern:    `file_(\d+)\.csv`,
//	        GroupNames: []string{"num"},
//	    },
//	    Assets: map[string]*dataconn.ComponentConfig{"A": nil},
//	}
//
//	src := source.NewStatic([]string{"A/file_1.csv", "A/file_2.csv", "A/badname.csv"})
//	conn, err := dataconn.NewConfiguredAssetConnector(cfg, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := conn.RefreshDataReferencesCache(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	defs, _ := conn.GetBatchDefinitionListFromCache()   // {"num": "1"}, {"num": "2"}
//	unmatched, _ := conn.GetUnmatchedDataReferences()   // ["badname.csv"]
//
// # Key Features
//
//   - Atomic refresh: a failed refresh keeps the previous cache
//   - Per-asset overrides of the default pattern and group names
//   - Declarative sorters applied as a stable multi-key sort
//   - Listing services for static lists, filesystems, S3 and NATS KV buckets
//   - Registries for custom asset and sorter kinds
//
// # Configuration
//
// Connectors can be described in YAML and loaded with LoadConfig:
//
//	name: landing
//	executionEnvironmentName: warehouse
//	defaultRegex:
//	  pattern: 'file_(\d+)\.csv'
//	  groupNames: [num]
//	assets:
//	  A:
//	  B:
//	    pattern: 'other_(\d+)\.csv'
//	sorters:
//	  - name: num
//	    className: NumericSorter
//	    orderBy: desc
//
// # Observability
//
// Use WithLogger, WithMetrics and WithHooks to observe refreshes.
// NewSlogLogger and NewPrometheusMetrics provide ready-made implementations.
//
// # Concurrency
//
// Connectors are not safe for concurrent use. A caller owns a connector and
// serializes refreshes against queries; the kind registries are safe for
// concurrent use.
package dataconn
