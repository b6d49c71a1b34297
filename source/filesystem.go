package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arloliu/dataconn/types"
)

// Filesystem lists the regular files below a root directory.
type Filesystem struct {
	fs   afero.Fs
	root string
}

var (
	_ types.ReferenceLister = (*Filesystem)(nil)
	_ types.PathResolver    = (*Filesystem)(nil)
)

// NewFilesystem creates a listing service over fsys.
//
// Parameters:
//   - fsys: Filesystem to walk (afero.NewMemMapFs() in tests)
//   - root: Directory that asset locations are relative to
//
// Returns:
//   - *Filesystem: Initialized source
func NewFilesystem(fsys afero.Fs, root string) *Filesystem {
	return &Filesystem{fs: fsys, root: root}
}

// NewOSFilesystem creates a listing service over the operating system filesystem.
func NewOSFilesystem(root string) *Filesystem {
	return NewFilesystem(afero.NewOsFs(), root)
}

// ListReferences walks root/location and returns every regular file below it.
//
// References use forward slashes regardless of platform. A missing directory
// lists as empty.
//
// Parameters:
//   - ctx: Checked between directory entries
//   - location: Directory relative to root
//
// Returns:
//   - []string: Sorted references relative to location
//   - error: Walk or cancellation error
func (f *Filesystem) ListReferences(ctx context.Context, location string) ([]string, error) {
	dir := filepath.Join(f.root, filepath.FromSlash(location))

	var refs []string
	err := afero.Walk(f.fs, dir, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		refs = append(refs, filepath.ToSlash(rel))

		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}

		return nil, err
	}

	return relativeTo(refs, ""), nil
}

// ResolveFullPath returns the file path of a reference in the host's path syntax.
func (f *Filesystem) ResolveFullPath(partialPath string, asset types.Asset) string {
	return filepath.Join(f.root, filepath.FromSlash(asset.Location()), filepath.FromSlash(partialPath))
}
