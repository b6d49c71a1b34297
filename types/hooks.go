package types

import "context"

// RefreshSummary describes the outcome of a successful cache refresh.
type RefreshSummary struct {
	// ConnectorName is the connector that refreshed.
	ConnectorName string

	// ReferenceCount is the total number of cached references.
	ReferenceCount int

	// UnmatchedCount is the number of references that matched no pattern.
	UnmatchedCount int

	// AmbiguousCount is the number of references mapped to more than one batch definition.
	AmbiguousCount int
}

// Hooks defines callbacks for connector lifecycle events.
//
// Hooks run synchronously on the caller's goroutine at the end of a refresh.
// Hook errors are logged but never fail the refresh.
//
// Example:
//
//	hooks := &dataconn.Hooks{
//	    OnCacheRefreshed: func(ctx context.Context, s dataconn.RefreshSummary) error {
//	        if s.UnmatchedCount > 0 {
//	            return alert(ctx, s)
//	        }
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnCacheRefreshed is called after a refresh replaced the cache.
	OnCacheRefreshed func(ctx context.Context, summary RefreshSummary) error

	// OnError is called when a refresh fails.
	OnError func(ctx context.Context, err error) error
}
