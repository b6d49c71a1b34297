package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("wrapped errors maintain identity", func(t *testing.T) {
		wrapped := fmt.Errorf("asset %q: %w", "A", ErrConfiguration)
		require.True(t, errors.Is(wrapped, ErrConfiguration))
		require.False(t, errors.Is(wrapped, ErrNotRefreshed))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrNotRefreshed,
			ErrConfiguration,
			ErrSorterNotFound,
			ErrAssetNotFound,
			ErrNoDefaultPartitioner,
			ErrListerRequired,
			ErrPathResolverRequired,
			ErrClassInstantiation,
			ErrListingFailed,
			ErrInvalidSortKey,
			ErrLocationNotFound,
			ErrBackendUnavailable,
		}

		for i, a := range allErrors {
			for j, b := range allErrors {
				if i == j {
					continue
				}
				require.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	})
}

func TestClassInstantiationError(t *testing.T) {
	t.Run("unregistered kind", func(t *testing.T) {
		var err error = &ClassInstantiationError{ModuleName: "dataconn/sorter", ClassName: "BogusSorter"}

		require.True(t, errors.Is(err, ErrClassInstantiation))
		require.Contains(t, err.Error(), "BogusSorter")
		require.Contains(t, err.Error(), "dataconn/sorter")
		require.Contains(t, err.Error(), "not registered")

		var cie *ClassInstantiationError
		require.True(t, errors.As(fmt.Errorf("building: %w", err), &cie))
		require.Equal(t, "BogusSorter", cie.ClassName)
	})

	t.Run("factory failure keeps cause", func(t *testing.T) {
		cause := fmt.Errorf("%w: empty reference list", ErrConfiguration)
		var err error = &ClassInstantiationError{ModuleName: "m", ClassName: "CustomListSorter", Err: cause}

		require.True(t, errors.Is(err, ErrClassInstantiation))
		require.True(t, errors.Is(err, ErrConfiguration))
		require.Contains(t, err.Error(), "empty reference list")
	})
}
