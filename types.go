package dataconn

import "github.com/arloliu/dataconn/types"

// Re-export types from the types package.
//
// Internal packages depend on types without depending on the root package, while
// users get dataconn.Asset, dataconn.BatchDefinition and friends from one import.
type (
	PartitionDefinition     = types.PartitionDefinition
	Partition               = types.Partition
	BatchDefinition         = types.BatchDefinition
	BatchRequest            = types.BatchRequest
	RegexConfig             = types.RegexConfig
	Asset                   = types.Asset
	ComponentConfig         = types.ComponentConfig
	ExecutionEngine         = types.ExecutionEngine
	RuntimeEnvironment      = types.RuntimeEnvironment
	RefreshSummary          = types.RefreshSummary
	ClassInstantiationError = types.ClassInstantiationError
)

// Re-export interfaces from the types package for convenience.
type (
	DataConnector    = types.DataConnector
	ReferenceLister  = types.ReferenceLister
	PathResolver     = types.PathResolver
	Sorter           = types.Sorter
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export constants from the types package.
const (
	DefaultAssetKind = types.DefaultAssetKind
	SortAscending    = types.SortAscending
	SortDescending   = types.SortDescending
)
