package sorter

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/arloliu/dataconn/types"
)

var errNotInReferenceList = errors.New("value not in reference list")

// CustomList orders partitions by the position of their key in a reference list.
type CustomList struct {
	base
	positions map[string]int
}

var _ types.Sorter = (*CustomList)(nil)

// NewCustomList creates a reference-list sorter.
//
// Parameters:
//   - name: Partition definition key to sort by
//   - referenceList: Allowed key values in ascending order
//   - opts: Optional configuration (WithDescending)
//
// Returns:
//   - *CustomList: Initialized sorter
//   - error: types.ErrConfiguration when the list is empty or has duplicates
//
// Example:
//
//	s, err := sorter.NewCustomList("env", []string{"dev", "staging", "prod"})
func NewCustomList(name string, referenceList []string, opts ...Option) (*CustomList, error) {
	if len(referenceList) == 0 {
		return nil, fmt.Errorf("%w: sorter %q requires a non-empty reference list", types.ErrConfiguration, name)
	}

	positions := make(map[string]int, len(referenceList))
	for i, v := range referenceList {
		if _, dup := positions[v]; dup {
			return nil, fmt.Errorf("%w: sorter %q reference list has duplicate value %q", types.ErrConfiguration, name, v)
		}
		positions[v] = i
	}

	return &CustomList{base: newBase(name, opts), positions: positions}, nil
}

// SortPartitions returns partitions ordered by reference-list position.
//
// Returns:
//   - []types.Partition: Reordered copy
//   - error: types.ErrInvalidSortKey when a value is not in the reference list
func (s *CustomList) SortPartitions(partitions []types.Partition) ([]types.Partition, error) {
	return sortByKey(s.base, partitions,
		func(raw string) (int, error) {
			pos, ok := s.positions[raw]
			if !ok {
				return 0, errNotInReferenceList
			}

			return pos, nil
		},
		cmp.Compare[int],
	)
}
