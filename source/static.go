package source

import (
	"context"
	"path"
	"slices"
	"sync"

	"github.com/arloliu/dataconn/types"
)

// Static implements a listing service over a fixed list of full paths.
type Static struct {
	mu    sync.RWMutex
	paths []string
	err   error
}

var (
	_ types.ReferenceLister = (*Static)(nil)
	_ types.PathResolver    = (*Static)(nil)
)

// NewStatic creates a new static listing service.
//
// Paths are slash-separated full paths; a location lists the paths below it.
// Useful for testing and scenarios where references are known at startup.
//
// Parameters:
//   - paths: Full paths, for example "A/file_1.csv"
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]string{"A/file_1.csv", "A/file_2.csv", "B/other.csv"})
//	conn, err := dataconn.NewConfiguredAssetConnector(cfg, src)
//	if err != nil { /* handle */ }
func NewStatic(paths []string) *Static {
	return &Static{
		paths: slices.Clone(paths),
	}
}

// ListReferences returns the paths below location, relative to it.
//
// Returns:
//   - []string: Sorted references
//   - error: The error set by SetError, nil otherwise
func (s *Static) ListReferences(_ context.Context, location string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return nil, s.err
	}

	return relativeTo(s.paths, locationPrefix("", location)), nil
}

// ResolveFullPath joins the asset location and the reference.
func (s *Static) ResolveFullPath(partialPath string, asset types.Asset) string {
	return path.Join(asset.Location(), partialPath)
}

// Update replaces the path list.
//
// This allows the static source to simulate storage changes between refreshes.
//
// Parameters:
//   - paths: New list of full paths
//
// Example:
//
//	src := source.NewStatic(initialPaths)
//	// Later: new files landed
//	src.Update(expandedPaths)
func (s *Static) Update(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paths = slices.Clone(paths)
}

// SetError makes every following ListReferences call fail with err.
//
// A nil err restores normal listing.
func (s *Static) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = err
}
