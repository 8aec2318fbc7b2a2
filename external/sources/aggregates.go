package sources

import (
	"sort"
	"time"

	"github.com/outbreaklab/casecount-api/schema"
)

type aggregateKey struct {
	date     int64
	caseType schema.CaseType
}

// WorldAggregates derives the two synthetic locations from the per-country
// rows: "World" (sum over all countries per date and case type) and
// "Non-China" (world minus China). China itself already exists as a country
// row. Populations come from the populations table's "World" and "China"
// entries; a missing entry leaves the aggregate without per-capita figures.
func WorldAggregates(countries []schema.CaseRecord, populations map[string]int64) []schema.CaseRecord {
	worldTotals := make(map[aggregateKey]float64)
	chinaTotals := make(map[aggregateKey]float64)
	dates := make(map[int64]time.Time)

	for _, r := range countries {
		if !r.HasCount() {
			continue
		}
		k := aggregateKey{date: r.Date.UnixNano(), caseType: r.CaseType}
		worldTotals[k] += r.CaseCount
		if r.Country == schema.LocationChina {
			chinaTotals[k] += r.CaseCount
		}
		dates[k.date] = r.Date
	}

	worldPop := populations[schema.LocationWorld]
	chinaPop := populations[schema.LocationChina]
	var nonChinaPop int64
	if worldPop > 0 && chinaPop > 0 {
		nonChinaPop = worldPop - chinaPop
	}

	keys := make([]aggregateKey, 0, len(worldTotals))
	for k := range worldTotals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].caseType < keys[j].caseType
	})

	out := make([]schema.CaseRecord, 0, 2*len(keys))
	for _, k := range keys {
		out = append(out,
			schema.CaseRecord{
				Country:    schema.LocationWorld,
				Date:       dates[k.date],
				CaseType:   k.caseType,
				CaseCount:  worldTotals[k],
				Population: worldPop,
			},
			schema.CaseRecord{
				Country:    schema.LocationWorldExcChina,
				Date:       dates[k.date],
				CaseType:   k.caseType,
				CaseCount:  worldTotals[k] - chinaTotals[k],
				Population: nonChinaPop,
			},
		)
	}
	return out
}
