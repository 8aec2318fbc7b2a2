package pipeline

import (
	"time"

	"github.com/outbreaklab/casecount-api/schema"
)

// day returns midnight of the nth of March 2020, the base date used
// throughout these tests.
func day(n int) time.Time {
	return time.Date(2020, time.March, n, 0, 0, 0, 0, time.UTC)
}

func record(country, state string, date time.Time, caseType schema.CaseType, count float64, population int64) schema.CaseRecord {
	r := schema.CaseRecord{
		Country:    country,
		State:      state,
		Date:       date,
		CaseType:   caseType,
		CaseCount:  count,
		Population: population,
	}
	r.IsState = r.State != ""
	if r.IsState {
		r.LocationName = r.State
	} else {
		r.LocationName = r.Country
	}
	return r
}

// confirmedSeries builds one confirmed-cases row per count, on consecutive
// days starting at day(1).
func confirmedSeries(country, state string, population int64, counts ...float64) []schema.CaseRecord {
	records := make([]schema.CaseRecord, 0, len(counts))
	for i, count := range counts {
		records = append(records, record(country, state, day(1+i), schema.CaseTypeConfirmed, count, population))
	}
	return records
}

func locationNames(records []schema.CaseRecord) map[string]bool {
	names := make(map[string]bool)
	for _, r := range records {
		names[r.LocationName] = true
	}
	return names
}
