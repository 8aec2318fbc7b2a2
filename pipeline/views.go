package pipeline

import (
	"github.com/outbreaklab/casecount-api/schema"
)

// WorldView returns the three synthetic aggregate locations: the whole world,
// China, and the world excluding China.
func WorldView(records []schema.CaseRecord) []schema.CaseRecord {
	out := make([]schema.CaseRecord, 0, len(records))
	for _, r := range records {
		switch r.LocationName {
		case schema.LocationWorld, schema.LocationWorldExcChina, schema.LocationChina:
			out = append(out, r)
		}
	}
	return out
}

// CountriesView returns the top n countries by current confirmed cases,
// optionally dropping China. World aggregate rows are always excluded.
// Callers excluding China pass an already-adjusted n (conventionally n-1);
// n < 1 keeps every country.
func CountriesView(records []schema.CaseRecord, n int, includeChina bool, count schema.Counting) ([]schema.CaseRecord, error) {
	excluded := map[string]bool{
		schema.LocationWorld:         true,
		schema.LocationWorldExcChina: true,
	}
	if !includeChina {
		excluded[schema.LocationChina] = true
	}

	out := make([]schema.CaseRecord, 0, len(records))
	for _, r := range records {
		if !r.IsState && !excluded[r.LocationName] {
			out = append(out, r)
		}
	}

	if n < 1 {
		return out, nil
	}
	return KeepNLargestLocations(out, n, count)
}

// StatesView returns the top n states/provinces of a country by current
// confirmed cases. n < 1 keeps every state.
func StatesView(records []schema.CaseRecord, country string, n int, count schema.Counting) ([]schema.CaseRecord, error) {
	out := make([]schema.CaseRecord, 0, len(records))
	for _, r := range records {
		if r.Country == country && r.IsState {
			out = append(out, r)
		}
	}

	if n < 1 {
		return out, nil
	}
	return KeepNLargestLocations(out, n, count)
}
