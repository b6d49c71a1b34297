package sorter

import (
	"cmp"
	"strconv"

	"github.com/arloliu/dataconn/types"
)

// Numeric orders partitions by the numeric value of their key.
//
// Values are parsed as float64, so "2" sorts before "10" and "1e3" equals "1000".
type Numeric struct {
	base
}

var _ types.Sorter = (*Numeric)(nil)

// NewNumeric creates a numeric sorter.
//
// Parameters:
//   - name: Partition definition key to sort by
//   - opts: Optional configuration (WithDescending)
//
// Returns:
//   - *Numeric: Initialized sorter
func NewNumeric(name string, opts ...Option) *Numeric {
	return &Numeric{base: newBase(name, opts)}
}

// SortPartitions returns partitions ordered by their numeric key.
//
// Returns:
//   - []types.Partition: Reordered copy
//   - error: types.ErrInvalidSortKey when a value is not a number
func (s *Numeric) SortPartitions(partitions []types.Partition) ([]types.Partition, error) {
	return sortByKey(s.base, partitions,
		func(raw string) (float64, error) { return strconv.ParseFloat(raw, 64) },
		cmp.Compare[float64],
	)
}
