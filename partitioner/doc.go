// Package partitioner groups sorter configuration and partition discovery for one asset family.
//
// A Partitioner owns a declared, ordered list of sorter configurations. Sorters are
// built lazily and memoized per instance, and GetSortedPartitions applies them in
// reverse declaration order with stable passes, so the first declared sorter is the
// primary key of the resulting order.
//
// RegexPartitioner adds partition discovery: references returned by a
// types.ReferenceLister are matched against a regex configuration and every match
// becomes a types.Partition.
//
// Example:
//
//	p, err := partitioner.NewRegex("by_date",
//	    types.RegexConfig{Pattern: `(\d{4})(\d{2})(\d{2})\.csv$`, GroupNames: []string{"year", "month", "day"}},
//	    []types.ComponentConfig{
//	        {Name: "year", ClassName: "NumericSorter", Params: map[string]any{"orderBy": "desc"}},
//	        {Name: "month", ClassName: "NumericSorter"},
//	    },
//	    partitioner.WithLister(src),
//	)
//	parts, err := p.GetAvailablePartitions(ctx, "events", "events")
package partitioner
