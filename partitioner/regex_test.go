package partitioner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dataconn/types"
)

type listerFunc func(ctx context.Context, location string) ([]string, error)

func (f listerFunc) ListReferences(ctx context.Context, location string) ([]string, error) {
	return f(ctx, location)
}

func staticLister(refs ...string) listerFunc {
	return func(context.Context, string) ([]string, error) {
		return refs, nil
	}
}

var dateRegex = types.RegexConfig{
	Pattern:    `^(\w+)_(\d{4})(\d{2})\.csv$`,
	GroupNames: []string{"name", "year", "month"},
}

func TestNewRegex_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := NewRegex("p", types.RegexConfig{Pattern: `(\d+)`, GroupNames: []string{"a", "b"}}, nil)
	require.ErrorIs(t, err, types.ErrConfiguration)

	_, err = NewRegex("p", types.RegexConfig{Pattern: `(`}, nil)
	require.ErrorIs(t, err, types.ErrConfiguration)
}

func TestFindPartitionForPath(t *testing.T) {
	t.Parallel()

	p, err := NewRegex("p", dateRegex, nil)
	require.NoError(t, err)

	part, ok := p.FindPartitionForPath("sales_202001.csv")
	require.True(t, ok)
	require.Equal(t, "sales_202001.csv", part.DataReference)
	require.Equal(t, types.PartitionDefinition{"name": "sales", "year": "2020", "month": "01"}, part.Definition)
	require.Equal(t, "month=01,name=sales,year=2020", part.Name)

	_, ok = p.FindPartitionForPath("readme.md")
	require.False(t, ok)

	require.Equal(t, dateRegex, p.Regex())
}

func TestGetAvailablePartitions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("sorted and filtered", func(t *testing.T) {
		var gotLocation string
		lister := listerFunc(func(_ context.Context, location string) ([]string, error) {
			gotLocation = location
			return []string{"sales_202002.csv", "readme.md", "sales_201912.csv", "costs_202001.csv"}, nil
		})

		p, err := NewRegex("p", dateRegex, []types.ComponentConfig{
			{Name: "year", ClassName: "NumericSorter", Params: map[string]any{"orderBy": "desc"}},
			{Name: "month", ClassName: "NumericSorter"},
		}, WithLister(lister))
		require.NoError(t, err)

		parts, err := p.GetAvailablePartitions(ctx, "A", "data/A")
		require.NoError(t, err)
		require.Equal(t, "data/A", gotLocation)

		refs := make([]string, len(parts))
		for i, part := range parts {
			refs[i] = part.DataReference
			require.Equal(t, "A", part.DataAssetName)
		}
		require.Equal(t, []string{"costs_202001.csv", "sales_202002.csv", "sales_201912.csv"}, refs)
	})

	t.Run("deterministic without sorters", func(t *testing.T) {
		p, err := NewRegex("p", dateRegex, nil, WithLister(staticLister("b_202001.csv", "a_202001.csv")))
		require.NoError(t, err)

		first, err := p.GetAvailablePartitions(ctx, "A", "")
		require.NoError(t, err)
		second, err := p.GetAvailablePartitions(ctx, "A", "")
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.Equal(t, "a_202001.csv", first[0].DataReference)
	})

	t.Run("lister required", func(t *testing.T) {
		p, err := NewRegex("p", dateRegex, nil)
		require.NoError(t, err)

		_, err = p.GetAvailablePartitions(ctx, "A", "")
		require.ErrorIs(t, err, types.ErrListerRequired)
	})

	t.Run("listing failure", func(t *testing.T) {
		boom := errors.New("unreachable")
		p, err := NewRegex("p", dateRegex, nil, WithLister(listerFunc(func(context.Context, string) ([]string, error) {
			return nil, boom
		})))
		require.NoError(t, err)

		_, err = p.GetAvailablePartitions(ctx, "A", "")
		require.ErrorIs(t, err, types.ErrListingFailed)
		require.ErrorIs(t, err, boom)
	})
}
