package types

import "strings"

// BatchDefinition identifies one concrete unit of data that can be requested for validation.
//
// One batch definition is produced per (asset, data reference) pair whose reference
// matches the asset's resolved pattern.
type BatchDefinition struct {
	ExecutionEnvironmentName string              `json:"executionEnvironmentName"`
	DataConnectorName        string              `json:"dataConnectorName"`
	DataAssetName            string              `json:"dataAssetName"`
	PartitionDefinition      PartitionDefinition `json:"partitionDefinition"`
}

// Equal reports structural equality of two batch definitions.
func (b BatchDefinition) Equal(other BatchDefinition) bool {
	return b.ExecutionEnvironmentName == other.ExecutionEnvironmentName &&
		b.DataConnectorName == other.DataConnectorName &&
		b.DataAssetName == other.DataAssetName &&
		b.PartitionDefinition.Equal(other.PartitionDefinition)
}

// ID returns a human-readable identifier joining the names and the canonical partition definition.
//
// Returns:
//   - string: "env/connector/asset/k1=v1,k2=v2"
func (b BatchDefinition) ID() string {
	return strings.Join([]string{
		b.ExecutionEnvironmentName,
		b.DataConnectorName,
		b.DataAssetName,
		b.PartitionDefinition.String(),
	}, "/")
}

// Partition converts the definition into a sortable partition for the given reference.
func (b BatchDefinition) Partition(dataReference string) Partition {
	return Partition{
		Name:          b.PartitionDefinition.String(),
		DataAssetName: b.DataAssetName,
		DataReference: dataReference,
		Definition:    b.PartitionDefinition,
	}
}

// BatchRequest is the looser, request-shaped counterpart of BatchDefinition.
//
// Empty name fields act as wildcards when a request is used as a filter, and
// PartitionRequest matches every definition it is a subset of.
type BatchRequest struct {
	ExecutionEnvironmentName string              `json:"executionEnvironmentName"`
	DataConnectorName        string              `json:"dataConnectorName"`
	DataAssetName            string              `json:"dataAssetName"`
	PartitionRequest         PartitionDefinition `json:"partitionRequest"`
}

// Matches reports whether the batch definition satisfies the request.
func (r BatchRequest) Matches(def BatchDefinition) bool {
	if r.ExecutionEnvironmentName != "" && r.ExecutionEnvironmentName != def.ExecutionEnvironmentName {
		return false
	}
	if r.DataConnectorName != "" && r.DataConnectorName != def.DataConnectorName {
		return false
	}
	if r.DataAssetName != "" && r.DataAssetName != def.DataAssetName {
		return false
	}

	return r.PartitionRequest.IsSubsetOf(def.PartitionDefinition)
}
