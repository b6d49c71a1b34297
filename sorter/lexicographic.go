package sorter

import (
	"strings"

	"github.com/arloliu/dataconn/types"
)

// Lexicographic orders partitions by the string value of their key.
type Lexicographic struct {
	base
}

var _ types.Sorter = (*Lexicographic)(nil)

// NewLexicographic creates a lexicographic sorter.
//
// Parameters:
//   - name: Partition definition key to sort by
//   - opts: Optional configuration (WithDescending)
//
// Returns:
//   - *Lexicographic: Initialized sorter
//
// Example:
//
//	s := sorter.NewLexicographic("name", sorter.WithDescending())
//	sorted, err := s.SortPartitions(partitions)
func NewLexicographic(name string, opts ...Option) *Lexicographic {
	return &Lexicographic{base: newBase(name, opts)}
}

// SortPartitions returns partitions ordered by their key string. It never fails.
func (s *Lexicographic) SortPartitions(partitions []types.Partition) ([]types.Partition, error) {
	return sortByKey(s.base, partitions,
		func(raw string) (string, error) { return raw, nil },
		strings.Compare,
	)
}
