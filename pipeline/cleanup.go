// Package pipeline turns raw per-location daily case counts into the
// comparable, ranked tables every chart and export reads. All functions are
// pure: they take a slice of case rows and return a new or filtered slice,
// never mutating their input.
package pipeline

import (
	"sort"

	"github.com/outbreaklab/casecount-api/schema"
)

// CleanUp sorts rows ascending by (location name, date, case type). The rest
// of the pipeline relies on this ordering: for any filtered subset, the first
// row is the earliest date and the last row is the most recent, so "current"
// values can be read off the end without a separate aggregation.
func CleanUp(records []schema.CaseRecord) []schema.CaseRecord {
	out := make([]schema.CaseRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.LocationName != b.LocationName {
			return a.LocationName < b.LocationName
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.CaseType < b.CaseType
	})
	return out
}

// DeriveLocationNames fills in IsState and LocationName from the country and
// state columns: state rows display their state name, everything else its
// country name. IsState is never set any other way.
func DeriveLocationNames(records []schema.CaseRecord) []schema.CaseRecord {
	out := make([]schema.CaseRecord, len(records))
	for i, r := range records {
		r.IsState = r.State != ""
		if r.IsState {
			r.LocationName = r.State
		} else {
			r.LocationName = r.Country
		}
		out[i] = r
	}
	return out
}

// locationKey identifies a location across rows.
type locationKey struct {
	country string
	state   string
	name    string
}

func locationKeyOf(r schema.CaseRecord) locationKey {
	return locationKey{country: r.Country, state: r.State, name: r.LocationName}
}
