// Package hooks provides default connector hook implementations.
package hooks

import (
	"context"

	"github.com/arloliu/dataconn/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.RefreshSummary) error = (*NopHooks)(nil).OnCacheRefreshed
	_ func(context.Context, error) error                = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnCacheRefreshed: h.OnCacheRefreshed,
		OnError:          h.OnError,
	}
}

// WithDefaults returns a copy of h with every nil callback replaced by a no-op.
//
// Parameters:
//   - h: User hooks (nil allowed)
//
// Returns:
//   - types.Hooks: Hooks safe to call without nil checks
func WithDefaults(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnCacheRefreshed != nil {
		out.OnCacheRefreshed = h.OnCacheRefreshed
	}
	if h.OnError != nil {
		out.OnError = h.OnError
	}

	return out
}

// OnCacheRefreshed is a no-op implementation.
func (h *NopHooks) OnCacheRefreshed(_ context.Context, _ types.RefreshSummary) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
