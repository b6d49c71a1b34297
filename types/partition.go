package types

import (
	"slices"
	"strings"

	"github.com/zeebo/xxh3"
)

// PartitionDefinition is the structured key-value decomposition of a data reference.
//
// A definition is produced by binding regex capture groups to group names. Equality
// and hashing are structural: two definitions with the same pairs are equal regardless
// of how the underlying maps were populated.
type PartitionDefinition map[string]string

// Keys returns the definition keys in lexicographic order.
//
// Returns:
//   - []string: Sorted keys (empty slice for an empty definition)
func (d PartitionDefinition) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Equal reports whether both definitions hold exactly the same key-value pairs.
func (d PartitionDefinition) Equal(other PartitionDefinition) bool {
	if len(d) != len(other) {
		return false
	}
	for k, v := range d {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}

	return true
}

// IsSubsetOf reports whether every pair of d is also present in other.
//
// An empty definition is a subset of every definition, which makes an empty
// partition request match all batches.
func (d PartitionDefinition) IsSubsetOf(other PartitionDefinition) bool {
	for k, v := range d {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}

	return true
}

// Clone returns a copy that shares no storage with d.
func (d PartitionDefinition) Clone() PartitionDefinition {
	if d == nil {
		return nil
	}
	out := make(PartitionDefinition, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}

// String returns the canonical form "k1=v1,k2=v2" with keys sorted.
//
// Returns:
//   - string: Canonical representation ("" for an empty definition)
func (d PartitionDefinition) String() string {
	if len(d) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, k := range d.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(d[k])
	}

	return sb.String()
}

// HashID returns a stable 64-bit hash of the definition.
//
// Pairs are hashed in sorted key order and every key and value is length-prefixed,
// so {"ab": "c"} and {"a": "bc"} never collide by concatenation.
//
// Returns:
//   - uint64: Hash value (0 for an empty definition)
func (d PartitionDefinition) HashID() uint64 {
	return d.HashIDSeed(0)
}

// HashIDSeed is HashID with an explicit xxh3 seed. A zero seed equals HashID.
func (d PartitionDefinition) HashIDSeed(seed uint64) uint64 {
	if len(d) == 0 {
		return 0
	}

	buf := make([]byte, 0, 64)
	for _, k := range d.Keys() {
		buf = appendLenPrefixed(buf, k)
		buf = appendLenPrefixed(buf, d[k])
	}

	if seed == 0 {
		return xxh3.Hash(buf)
	}

	return xxh3.HashSeed(buf, seed)
}

func appendLenPrefixed(buf []byte, s string) []byte {
	n := uint32(len(s)) //nolint:gosec // partition keys and values are short strings
	buf = append(buf, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))

	return append(buf, s...)
}

// Partition is one named decomposition of a data reference.
//
// Sorters order partitions by looking up their own name in Definition.
type Partition struct {
	// Name identifies the partition; by default the canonical definition string.
	Name string `json:"name"`

	// DataAssetName is the asset that owns the source reference.
	DataAssetName string `json:"dataAssetName"`

	// DataReference is the raw reference the partition was derived from.
	DataReference string `json:"dataReference"`

	// Definition holds the captured group values keyed by group name.
	Definition PartitionDefinition `json:"definition"`
}

// Compare orders partitions by asset name, then by canonical definition, then by reference.
//
// Used as a deterministic fallback order; sorters never rely on it.
//
// Returns:
//   - int: -1 if p < q, 0 if equal, +1 if p > q
func (p Partition) Compare(q Partition) int {
	if c := strings.Compare(p.DataAssetName, q.DataAssetName); c != 0 {
		return c
	}
	if c := strings.Compare(p.Definition.String(), q.Definition.String()); c != 0 {
		return c
	}

	return strings.Compare(p.DataReference, q.DataReference)
}
