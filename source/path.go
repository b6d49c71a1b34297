package source

import (
	"path"
	"slices"
	"strings"
)

// locationPrefix returns the key prefix of every reference stored under location.
//
// Empty location yields "" so that every key matches.
func locationPrefix(base, location string) string {
	p := path.Join(base, location)
	if p == "" || p == "." {
		return ""
	}

	return strings.TrimPrefix(p, "/") + "/"
}

// relativeTo strips prefix from each key, dropping keys outside prefix and
// directory placeholders, and returns the result sorted.
func relativeTo(keys []string, prefix string) []string {
	refs := make([]string, 0, len(keys))
	for _, k := range keys {
		rel, ok := strings.CutPrefix(k, prefix)
		if !ok || rel == "" || strings.HasSuffix(rel, "/") {
			continue
		}
		refs = append(refs, rel)
	}
	slices.Sort(refs)

	return slices.Compact(refs)
}
