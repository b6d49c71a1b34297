package partitioner

import (
	"context"
	"fmt"
	"slices"

	"github.com/arloliu/dataconn/internal/matcher"
	"github.com/arloliu/dataconn/types"
)

// Finder enumerates the partitions of a named asset.
type Finder interface {
	// GetAvailablePartitions returns the sorted partitions found under location.
	GetAvailablePartitions(ctx context.Context, assetName, location string) ([]types.Partition, error)
}

// RegexPartitioner derives partitions from references with a regex configuration.
type RegexPartitioner struct {
	*Partitioner

	regex   types.RegexConfig
	matcher *matcher.Matcher
}

// Compile-time assertion that RegexPartitioner implements Finder.
var _ Finder = (*RegexPartitioner)(nil)

// NewRegex creates a RegexPartitioner.
//
// Parameters:
//   - name: Partitioner name
//   - regex: Pattern and group names applied to every reference
//   - sorterConfigs: Sorter configurations in declaration order
//   - opts: Optional configuration; WithLister enables GetAvailablePartitions
//
// Returns:
//   - *RegexPartitioner: Ready partitioner
//   - error: Wrapped types.ErrConfiguration for an invalid regex or sorter declaration
func NewRegex(name string, regex types.RegexConfig, sorterConfigs []types.ComponentConfig, opts ...Option) (*RegexPartitioner, error) {
	base, err := New(name, sorterConfigs, opts...)
	if err != nil {
		return nil, err
	}

	m, err := matcher.New(regex)
	if err != nil {
		return nil, fmt.Errorf("partitioner %q: %w", name, err)
	}

	return &RegexPartitioner{Partitioner: base, regex: regex.Clone(), matcher: m}, nil
}

// Regex returns a copy of the regex configuration.
func (p *RegexPartitioner) Regex() types.RegexConfig {
	return p.regex.Clone()
}

// FindPartitionForPath matches a single reference.
//
// Returns:
//   - types.Partition: Partition named by its canonical definition
//   - bool: false when the pattern does not match
func (p *RegexPartitioner) FindPartitionForPath(reference string) (types.Partition, bool) {
	def, ok := p.matcher.Match(reference)
	if !ok {
		return types.Partition{}, false
	}

	return types.Partition{
		Name:          def.String(),
		DataReference: reference,
		Definition:    def,
	}, true
}

// GetAvailablePartitions lists location and returns the matching partitions in sorted order.
//
// References are visited in lexicographic order and unmatched ones are skipped.
//
// Parameters:
//   - ctx: Context for the listing call
//   - assetName: Asset recorded on every returned partition
//   - location: Location passed to the lister
//
// Returns:
//   - []types.Partition: Sorted partitions
//   - error: types.ErrListerRequired without a lister, wrapped types.ErrListingFailed, or a sort failure
func (p *RegexPartitioner) GetAvailablePartitions(ctx context.Context, assetName, location string) ([]types.Partition, error) {
	if p.lister == nil {
		return nil, fmt.Errorf("partitioner %q: %w", p.name, types.ErrListerRequired)
	}

	refs, err := p.lister.ListReferences(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%w: partitioner %q location %q: %w", types.ErrListingFailed, p.name, location, err)
	}

	refs = slices.Clone(refs)
	slices.Sort(refs)

	partitions := make([]types.Partition, 0, len(refs))
	unmatched := 0
	for _, ref := range refs {
		part, ok := p.FindPartitionForPath(ref)
		if !ok {
			unmatched++
			continue
		}
		part.DataAssetName = assetName
		partitions = append(partitions, part)
	}

	if unmatched > 0 {
		p.logger.Debug("references skipped by partitioner", "partitioner", p.name, "asset", assetName, "unmatched", unmatched)
	}

	return p.GetSortedPartitions(partitions)
}
