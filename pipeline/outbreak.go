package pipeline

import (
	"math"
	"time"

	"github.com/outbreaklab/casecount-api/schema"
)

const secondsPerDay = 86400

type outbreakKey struct {
	loc      locationKey
	caseType schema.CaseType
}

// AnnotateOutbreak attaches, to every row, the date its location's outbreak
// started for that row's case type: the earliest date on which the count
// reached the case type's threshold. DaysSinceOutbreak is the signed offset
// from the row's date in fractional days; fractional because the most recent
// day's rows are stamped with the current time rather than midnight. Groups
// that never cross the threshold (and case types with no threshold at all)
// get a nil start date and NaN days. Row count and order are preserved.
func AnnotateOutbreak(records []schema.CaseRecord) []schema.CaseRecord {
	starts := make(map[outbreakKey]time.Time)
	for _, r := range records {
		threshold, ok := schema.Threshold(r.CaseType)
		if !ok || !r.HasCount() || r.CaseCount < threshold {
			continue
		}
		k := outbreakKey{loc: locationKeyOf(r), caseType: r.CaseType}
		if cur, ok := starts[k]; !ok || r.Date.Before(cur) {
			starts[k] = r.Date
		}
	}

	out := make([]schema.CaseRecord, len(records))
	for i, r := range records {
		k := outbreakKey{loc: locationKeyOf(r), caseType: r.CaseType}
		if start, ok := starts[k]; ok {
			s := start
			r.OutbreakStart = &s
			r.DaysSinceOutbreak = r.Date.Sub(start).Seconds() / secondsPerDay
		} else {
			r.OutbreakStart = nil
			r.DaysSinceOutbreak = math.NaN()
		}
		out[i] = r
	}
	return out
}
