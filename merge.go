package stationstats

import (
	"sort"

	"golang.org/x/exp/maps"
)

// MergeTables folds all partial tables into a single map keyed by station
// name. Entries for unseen stations are adopted as is, existing ones are
// merged. Because Stats.Merge is associative and commutative the result
// does not depend on the order in which tables arrive, which is exactly
// what unordered parallel workers need.
func MergeTables(tables []*Table) map[string]*Stats {
	merged := make(map[string]*Stats, stationCapacity)
	for _, t := range tables {
		if t == nil {
			continue
		}
		t.Each(func(name string, s *Stats) {
			if m, ok := merged[name]; ok {
				m.Merge(s)
			} else {
				merged[name] = s
			}
		})
	}
	return merged
}

// SortedNames returns the station names ordered by raw byte value, the
// order the report is printed in.
func SortedNames(stats map[string]*Stats) []string {
	names := maps.Keys(stats)
	sort.Strings(names)
	return names
}
