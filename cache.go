package dataconn

import (
	"fmt"

	"github.com/arloliu/dataconn/types"
)

// cacheState distinguishes a connector that never refreshed from one with an empty cache.
type cacheState int

const (
	cacheUninitialized cacheState = iota
	cacheReady
)

// referenceEntry is one cached data reference.
//
// A nil definitions slice marks the reference as unmatched; a non-nil empty
// slice marks it as matched without batch definitions.
type referenceEntry struct {
	reference   string
	definitions []types.BatchDefinition
}

func (e referenceEntry) matched() bool {
	return e.definitions != nil
}

// referenceCache maps asset name to its references in lexicographic order.
//
// A referenceCache is immutable once built; refresh builds a new one and swaps it in.
type referenceCache struct {
	state  cacheState
	names  []string
	assets map[string][]referenceEntry
}

func newReferenceCache(capacity int) *referenceCache {
	return &referenceCache{
		state:  cacheReady,
		names:  make([]string, 0, capacity),
		assets: make(map[string][]referenceEntry, capacity),
	}
}

// put stores the entries of one asset; assets must be added in lexicographic order.
func (c *referenceCache) put(asset string, entries []referenceEntry) {
	c.names = append(c.names, asset)
	c.assets[asset] = entries
}

func (c *referenceCache) ready(connector string) error {
	if c == nil || c.state != cacheReady {
		return fmt.Errorf("connector %q: %w", connector, ErrNotRefreshed)
	}

	return nil
}

func (c *referenceCache) count() int {
	total := 0
	for _, entries := range c.assets {
		total += len(entries)
	}

	return total
}

func (c *referenceCache) unmatched() []string {
	out := []string{}
	for _, name := range c.names {
		for _, e := range c.assets[name] {
			if !e.matched() {
				out = append(out, e.reference)
			}
		}
	}

	return out
}

// firstDefinitions returns the first batch definition of every matched reference.
func (c *referenceCache) firstDefinitions() []types.BatchDefinition {
	out := []types.BatchDefinition{}
	for _, name := range c.names {
		for _, e := range c.assets[name] {
			if len(e.definitions) > 0 {
				out = append(out, cloneDefinition(e.definitions[0]))
			}
		}
	}

	return out
}

// ambiguous returns, per asset, every reference mapped to more than one batch definition.
func (c *referenceCache) ambiguous() map[string]map[string][]types.BatchDefinition {
	out := map[string]map[string][]types.BatchDefinition{}
	for _, name := range c.names {
		for _, e := range c.assets[name] {
			if len(e.definitions) < 2 {
				continue
			}
			defs := make([]types.BatchDefinition, len(e.definitions))
			for i, d := range e.definitions {
				defs[i] = cloneDefinition(d)
			}
			if out[name] == nil {
				out[name] = map[string][]types.BatchDefinition{}
			}
			out[name][e.reference] = defs
		}
	}

	return out
}

// assetCounts returns the matched and unmatched reference counts of one asset.
func (c *referenceCache) assetCounts(asset string) (matched, unmatched int) {
	for _, e := range c.assets[asset] {
		if e.matched() {
			matched++
		} else {
			unmatched++
		}
	}

	return matched, unmatched
}

func (c *referenceCache) references(asset string) ([]string, bool) {
	entries, ok := c.assets[asset]
	if !ok {
		return nil, false
	}

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.reference
	}

	return out, true
}

func (c *referenceCache) summary(connector string) types.RefreshSummary {
	s := types.RefreshSummary{ConnectorName: connector}
	for _, entries := range c.assets {
		for _, e := range entries {
			s.ReferenceCount++
			switch {
			case !e.matched():
				s.UnmatchedCount++
			case len(e.definitions) > 1:
				s.AmbiguousCount++
			}
		}
	}

	return s
}

func cloneDefinition(d types.BatchDefinition) types.BatchDefinition {
	d.PartitionDefinition = d.PartitionDefinition.Clone()
	return d
}
