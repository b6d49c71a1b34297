// Package sorter provides built-in partition sorter implementations.
//
// A sorter orders partitions by the partition definition value stored under the
// sorter's own name. The package includes four built-in sorters:
//
//   - Lexicographic: String order of the key value
//   - Numeric: Numeric order of the key value parsed as float64
//   - DateTime: Chronological order of the key value parsed with a Go time layout
//   - CustomList: Order given by an explicit reference list
//
// # Ordering Rules
//
// Every sorter is stable and returns a permutation of its input:
//   - Equal keys keep their relative input order
//   - Partitions lacking the key keep their relative order and go last, in both directions
//   - Key values that cannot be interpreted fail the sort with types.ErrInvalidSortKey
//
// # Configuration
//
// Sorters are usually built from declarative configuration through Build, which looks
// the kind up by ComponentConfig.ClassName:
//
//	name: year
//	className: NumericSorter
//	orderBy: desc
//
// Custom sorters can be implemented by satisfying the types.Sorter interface and,
// to be buildable from configuration, registered with Register.
package sorter
