package sorter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dataconn/types"
)

func part(name string, def types.PartitionDefinition) types.Partition {
	return types.Partition{Name: name, DataAssetName: "A", Definition: def}
}

func names(parts []types.Partition) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Name
	}

	return out
}

func TestLexicographic_SortPartitions(t *testing.T) {
	t.Parallel()

	input := []types.Partition{
		part("p1", types.PartitionDefinition{"name": "charlie"}),
		part("p2", types.PartitionDefinition{"name": "alpha"}),
		part("p3", types.PartitionDefinition{"name": "bravo"}),
	}

	t.Run("ascending", func(t *testing.T) {
		sorted, err := NewLexicographic("name").SortPartitions(input)
		require.NoError(t, err)
		require.Equal(t, []string{"p2", "p3", "p1"}, names(sorted))
	})

	t.Run("descending", func(t *testing.T) {
		s := NewLexicographic("name", WithDescending())
		require.True(t, s.Descending())

		sorted, err := s.SortPartitions(input)
		require.NoError(t, err)
		require.Equal(t, []string{"p1", "p3", "p2"}, names(sorted))
	})

	t.Run("input is not modified", func(t *testing.T) {
		_, err := NewLexicographic("name").SortPartitions(input)
		require.NoError(t, err)
		require.Equal(t, []string{"p1", "p2", "p3"}, names(input))
	})

	t.Run("empty input", func(t *testing.T) {
		sorted, err := NewLexicographic("name").SortPartitions(nil)
		require.NoError(t, err)
		require.Empty(t, sorted)
	})
}

func TestSortByKey_MissingAndEqualKeys(t *testing.T) {
	t.Parallel()

	input := []types.Partition{
		part("missing-1", types.PartitionDefinition{"other": "x"}),
		part("b-first", types.PartitionDefinition{"k": "b"}),
		part("a", types.PartitionDefinition{"k": "a"}),
		part("missing-2", nil),
		part("b-second", types.PartitionDefinition{"k": "b"}),
	}

	sorted, err := NewLexicographic("k").SortPartitions(input)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b-first", "b-second", "missing-1", "missing-2"}, names(sorted))

	// Missing keys go last in descending order too, equal keys keep input order
	sorted, err = NewLexicographic("k", WithDescending()).SortPartitions(input)
	require.NoError(t, err)
	require.Equal(t, []string{"b-first", "b-second", "a", "missing-1", "missing-2"}, names(sorted))
}

func TestNumeric_SortPartitions(t *testing.T) {
	t.Parallel()

	input := []types.Partition{
		part("ten", types.PartitionDefinition{"num": "10"}),
		part("two", types.PartitionDefinition{"num": "2"}),
		part("neg", types.PartitionDefinition{"num": "-1.5"}),
	}

	sorted, err := NewNumeric("num").SortPartitions(input)
	require.NoError(t, err)
	require.Equal(t, []string{"neg", "two", "ten"}, names(sorted))

	_, err = NewNumeric("num").SortPartitions(append(input, part("bad", types.PartitionDefinition{"num": "abc"})))
	require.ErrorIs(t, err, types.ErrInvalidSortKey)
	require.Contains(t, err.Error(), "abc")
}

func TestDateTime_SortPartitions(t *testing.T) {
	t.Parallel()

	input := []types.Partition{
		part("mar", types.PartitionDefinition{"ts": "20200301"}),
		part("jan", types.PartitionDefinition{"ts": "20200115"}),
		part("dec", types.PartitionDefinition{"ts": "20191231"}),
	}

	s := NewDateTime("ts", "")
	require.Equal(t, DefaultDateTimeFormat, s.Layout())

	sorted, err := s.SortPartitions(input)
	require.NoError(t, err)
	require.Equal(t, []string{"dec", "jan", "mar"}, names(sorted))

	sorted, err = NewDateTime("ts", "", WithDescending()).SortPartitions(input)
	require.NoError(t, err)
	require.Equal(t, []string{"mar", "jan", "dec"}, names(sorted))

	_, err = NewDateTime("ts", "2006-01-02").SortPartitions(input)
	require.ErrorIs(t, err, types.ErrInvalidSortKey)
}

func TestCustomList_SortPartitions(t *testing.T) {
	t.Parallel()

	s, err := NewCustomList("env", []string{"dev", "staging", "prod"})
	require.NoError(t, err)

	input := []types.Partition{
		part("p", types.PartitionDefinition{"env": "prod"}),
		part("d", types.PartitionDefinition{"env": "dev"}),
		part("s", types.PartitionDefinition{"env": "staging"}),
	}

	sorted, err := s.SortPartitions(input)
	require.NoError(t, err)
	require.Equal(t, []string{"d", "s", "p"}, names(sorted))

	_, err = s.SortPartitions(append(input, part("q", types.PartitionDefinition{"env": "qa"})))
	require.ErrorIs(t, err, types.ErrInvalidSortKey)

	_, err = NewCustomList("env", nil)
	require.ErrorIs(t, err, types.ErrConfiguration)

	_, err = NewCustomList("env", []string{"dev", "dev"})
	require.ErrorIs(t, err, types.ErrConfiguration)
}

func TestSortIsPermutation(t *testing.T) {
	t.Parallel()

	input := []types.Partition{
		part("a", types.PartitionDefinition{"n": "3"}),
		part("b", types.PartitionDefinition{"n": "1"}),
		part("c", nil),
		part("d", types.PartitionDefinition{"n": "1"}),
		part("e", types.PartitionDefinition{"n": "2"}),
	}

	for _, s := range []types.Sorter{
		NewLexicographic("n"),
		NewNumeric("n", WithDescending()),
	} {
		sorted, err := s.SortPartitions(input)
		require.NoError(t, err)
		require.ElementsMatch(t, input, sorted)
	}
}
