package sorter

import (
	"time"

	"github.com/arloliu/dataconn/types"
)

// DefaultDateTimeFormat is the layout used when none is configured (e.g. "20200115").
const DefaultDateTimeFormat = "20060102"

// DateTime orders partitions chronologically by their key.
type DateTime struct {
	base
	layout string
}

var _ types.Sorter = (*DateTime)(nil)

// NewDateTime creates a date-time sorter.
//
// Parameters:
//   - name: Partition definition key to sort by
//   - layout: Go time layout used to parse key values ("" means DefaultDateTimeFormat)
//   - opts: Optional configuration (WithDescending)
//
// Returns:
//   - *DateTime: Initialized sorter
//
// Example:
//
//	s := sorter.NewDateTime("timestamp", "2006-01-02")
func NewDateTime(name, layout string, opts ...Option) *DateTime {
	if layout == "" {
		layout = DefaultDateTimeFormat
	}

	return &DateTime{base: newBase(name, opts), layout: layout}
}

// Layout returns the time layout used to parse key values.
func (s *DateTime) Layout() string {
	return s.layout
}

// SortPartitions returns partitions ordered by their parsed time key.
//
// Returns:
//   - []types.Partition: Reordered copy
//   - error: types.ErrInvalidSortKey when a value does not match the layout
func (s *DateTime) SortPartitions(partitions []types.Partition) ([]types.Partition, error) {
	return sortByKey(s.base, partitions,
		func(raw string) (time.Time, error) { return time.Parse(s.layout, raw) },
		func(a, b time.Time) int { return a.Compare(b) },
	)
}
