package sorter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dataconn/types"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"CustomListSorter", "DateTimeSorter", "LexicographicSorter", "NumericSorter"}, Kinds())

	t.Run("lexicographic descending", func(t *testing.T) {
		s, err := Build(types.ComponentConfig{
			Name:      "name",
			ClassName: "LexicographicSorter",
			Params:    map[string]any{"orderBy": "desc"},
		})
		require.NoError(t, err)
		require.IsType(t, &Lexicographic{}, s)
		require.Equal(t, "name", s.Name())
		require.True(t, s.(*Lexicographic).Descending())
	})

	t.Run("numeric default order", func(t *testing.T) {
		s, err := Build(types.ComponentConfig{Name: "num", ClassName: "NumericSorter"})
		require.NoError(t, err)
		require.False(t, s.(*Numeric).Descending())
	})

	t.Run("datetime format", func(t *testing.T) {
		s, err := Build(types.ComponentConfig{
			Name:      "ts",
			ClassName: "DateTimeSorter",
			Params:    map[string]any{"datetimeFormat": "2006-01-02", "orderBy": "asc"},
		})
		require.NoError(t, err)
		require.Equal(t, "2006-01-02", s.(*DateTime).Layout())
	})

	t.Run("custom list from yaml-shaped params", func(t *testing.T) {
		s, err := Build(types.ComponentConfig{
			Name:      "env",
			ClassName: "CustomListSorter",
			Params:    map[string]any{"referenceList": []any{"dev", "prod"}},
		})
		require.NoError(t, err)
		require.Equal(t, "env", s.Name())
	})

	t.Run("custom list without list", func(t *testing.T) {
		_, err := Build(types.ComponentConfig{Name: "env", ClassName: "CustomListSorter"})
		require.ErrorIs(t, err, types.ErrClassInstantiation)
		require.ErrorIs(t, err, types.ErrConfiguration)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Build(types.ComponentConfig{Name: "x", ClassName: "BogusSorter"})

		var cie *types.ClassInstantiationError
		require.ErrorAs(t, err, &cie)
		require.Equal(t, "BogusSorter", cie.ClassName)
		require.Equal(t, ModuleName, cie.ModuleName)
	})

	t.Run("missing kind", func(t *testing.T) {
		_, err := Build(types.ComponentConfig{Name: "x"})
		require.ErrorIs(t, err, types.ErrClassInstantiation)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Build(types.ComponentConfig{ClassName: "NumericSorter"})
		require.ErrorIs(t, err, types.ErrConfiguration)
	})

	t.Run("invalid orderBy", func(t *testing.T) {
		_, err := Build(types.ComponentConfig{
			Name:      "n",
			ClassName: "NumericSorter",
			Params:    map[string]any{"orderBy": "sideways"},
		})
		require.ErrorIs(t, err, types.ErrConfiguration)
	})

	t.Run("unknown parameter", func(t *testing.T) {
		_, err := Build(types.ComponentConfig{
			Name:      "n",
			ClassName: "NumericSorter",
			Params:    map[string]any{"datetimeFormat": "2006"},
		})
		require.ErrorIs(t, err, types.ErrConfiguration)
	})
}
