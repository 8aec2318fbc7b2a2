package pipeline

import (
	"math"
	"sort"

	"github.com/outbreaklab/casecount-api/schema"
)

// KeepNLargestLocations keeps only the rows of the n locations with the
// largest current confirmed-case counts. Ranking always uses confirmed cases
// (total or per capita, per count), regardless of which case type will be
// charted. The input must already be sorted by CleanUp; the current value per
// location is the last confirmed row in date order.
//
// Selection is by cutoff, not rank: cutoff is the nth-largest current value
// and every location at or above it survives, so ties at the boundary can
// push the result past n locations. Locations whose current value is
// undefined never rank. n < 1 disables the filter. When n exceeds the number
// of ranked locations, the cutoff degrades to the smallest current value.
func KeepNLargestLocations(records []schema.CaseRecord, n int, count schema.Counting) ([]schema.CaseRecord, error) {
	caseType, err := schema.CaseTypeFor(schema.StageConfirmed, count)
	if err != nil {
		return nil, err
	}

	if n < 1 {
		return records, nil
	}

	// Last write per location wins; rows ascend by date within a location.
	current := make(map[locationKey]float64)
	for _, r := range records {
		if r.CaseType != caseType {
			continue
		}
		current[locationKeyOf(r)] = r.CaseCount
	}

	ranked := make([]float64, 0, len(current))
	for _, v := range current {
		if !math.IsNaN(v) {
			ranked = append(ranked, v)
		}
	}
	if len(ranked) == 0 {
		return []schema.CaseRecord{}, nil
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ranked)))
	if n > len(ranked) {
		n = len(ranked)
	}
	cutoff := ranked[n-1]

	out := make([]schema.CaseRecord, 0, len(records))
	for _, r := range records {
		v, ok := current[locationKeyOf(r)]
		if ok && !math.IsNaN(v) && v >= cutoff {
			out = append(out, r)
		}
	}
	return out, nil
}
