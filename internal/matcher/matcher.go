// Package matcher applies a regex configuration to data references.
package matcher

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/arloliu/dataconn/types"
)

// Matcher binds the capture groups of a compiled pattern to group names.
type Matcher struct {
	re         *regexp.Regexp
	groupNames []string
}

// New compiles cfg into a Matcher.
//
// When cfg.GroupNames is empty the pattern's own group names are used, which requires
// every capture group to be named. Otherwise the number of capture groups must equal
// the number of group names.
//
// Parameters:
//   - cfg: Regex configuration
//
// Returns:
//   - *Matcher: Compiled matcher
//   - error: Wrapped types.ErrConfiguration for an empty or invalid pattern or a group count mismatch
func New(cfg types.RegexConfig) (*Matcher, error) {
	if cfg.Pattern == "" {
		return nil, fmt.Errorf("%w: regex pattern is empty", types.ErrConfiguration)
	}

	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid regex pattern %q: %w", types.ErrConfiguration, cfg.Pattern, err)
	}

	names := cfg.GroupNames
	if len(names) == 0 {
		names = re.SubexpNames()[1:]
		for i, n := range names {
			if n == "" {
				return nil, fmt.Errorf("%w: pattern %q has unnamed group %d and no group names are configured",
					types.ErrConfiguration, cfg.Pattern, i+1)
			}
		}
	}

	if re.NumSubexp() != len(names) {
		return nil, fmt.Errorf("%w: pattern %q has %d capture groups but %d group names %v",
			types.ErrConfiguration, cfg.Pattern, re.NumSubexp(), len(names), names)
	}

	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%w: duplicate group name %q", types.ErrConfiguration, n)
		}
		seen[n] = struct{}{}
	}

	return &Matcher{re: re, groupNames: slices.Clone(names)}, nil
}

// Match applies the pattern to reference.
//
// The pattern is searched, not anchored; anchor it with ^ and $ to require a full match.
// Groups that did not participate in the match bind to "".
//
// Returns:
//   - types.PartitionDefinition: Group name to captured value (nil when unmatched)
//   - bool: true when the pattern matched
func (m *Matcher) Match(reference string) (types.PartitionDefinition, bool) {
	sub := m.re.FindStringSubmatch(reference)
	if sub == nil {
		return nil, false
	}

	def := make(types.PartitionDefinition, len(m.groupNames))
	for i, name := range m.groupNames {
		def[name] = sub[i+1]
	}

	return def, true
}

// GroupNames returns the bound group names in positional order.
func (m *Matcher) GroupNames() []string {
	return slices.Clone(m.groupNames)
}

// String returns the source pattern.
func (m *Matcher) String() string {
	return m.re.String()
}
