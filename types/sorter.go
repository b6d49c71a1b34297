package types

// Sort directions accepted by built-in sorters.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// Sorter orders partitions by a single key.
//
// The key is the partition definition value stored under the sorter's name.
// Sorter implementations should:
//   - Be stateless (same input → same output)
//   - Return a permutation of the input (no additions, no removals)
//   - Sort stably so that chained sorters compose into a multi-key order
type Sorter interface {
	// Name returns the sorter name, which is also the partition definition key it sorts by.
	Name() string

	// SortPartitions returns the partitions ordered by this sorter's key.
	//
	// Parameters:
	//   - partitions: Partitions to order (not modified)
	//
	// Returns:
	//   - []Partition: Reordered copy of partitions
	//   - error: ErrInvalidSortKey when a key value cannot be interpreted
	SortPartitions(partitions []Partition) ([]Partition, error)
}
