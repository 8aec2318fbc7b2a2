package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/outbreaklab/casecount-api/schema"
)

func worldTable() []schema.CaseRecord {
	records := make([]schema.CaseRecord, 0)
	records = append(records, confirmedSeries(schema.LocationWorld, "", 0, 1000, 2000)...)
	records = append(records, confirmedSeries(schema.LocationWorldExcChina, "", 0, 400, 900)...)
	records = append(records, confirmedSeries(schema.LocationChina, "", 0, 600, 1100)...)
	records = append(records, confirmedSeries("Italy", "", 0, 300, 700)...)
	records = append(records, confirmedSeries("Spain", "", 0, 100, 200)...)
	records = append(records, confirmedSeries(schema.LocationUSA, "New York", 0, 150, 400)...)
	return CleanUp(records)
}

func TestWorldView(t *testing.T) {
	out := WorldView(worldTable())
	assert.Equal(t, map[string]bool{
		schema.LocationWorld:         true,
		schema.LocationWorldExcChina: true,
		schema.LocationChina:         true,
	}, locationNames(out))
}

func TestCountriesViewExcludesAggregatesAndStates(t *testing.T) {
	out, err := CountriesView(worldTable(), 0, true, schema.CountTotal)
	assert.Nil(t, err)
	assert.Equal(t, map[string]bool{
		schema.LocationChina: true,
		"Italy":              true,
		"Spain":              true,
	}, locationNames(out))
}

func TestCountriesViewWithoutChina(t *testing.T) {
	out, err := CountriesView(worldTable(), 1, false, schema.CountTotal)
	assert.Nil(t, err)
	assert.Equal(t, map[string]bool{"Italy": true}, locationNames(out))
}

func TestCountriesViewTopN(t *testing.T) {
	out, err := CountriesView(worldTable(), 2, true, schema.CountTotal)
	assert.Nil(t, err)
	assert.Equal(t, map[string]bool{
		schema.LocationChina: true,
		"Italy":              true,
	}, locationNames(out))
}

func TestCountriesViewIdempotent(t *testing.T) {
	once, err := CountriesView(worldTable(), 2, true, schema.CountTotal)
	assert.Nil(t, err)
	twice, err := CountriesView(once, 2, true, schema.CountTotal)
	assert.Nil(t, err)
	assert.Equal(t, once, twice)
}

func TestStatesView(t *testing.T) {
	out, err := StatesView(worldTable(), schema.LocationUSA, 0, schema.CountTotal)
	assert.Nil(t, err)
	assert.Equal(t, map[string]bool{"New York": true}, locationNames(out))
	for _, r := range out {
		assert.True(t, r.IsState)
	}
}

func TestDeriveLocationNames(t *testing.T) {
	records := []schema.CaseRecord{
		{Country: schema.LocationUSA, State: "New York"},
		{Country: "Italy"},
	}

	out := DeriveLocationNames(records)
	assert.True(t, out[0].IsState)
	assert.Equal(t, "New York", out[0].LocationName)
	assert.False(t, out[1].IsState)
	assert.Equal(t, "Italy", out[1].LocationName)
}

func TestCleanUpOrdering(t *testing.T) {
	records := []schema.CaseRecord{
		record("Italy", "", day(2), schema.CaseTypeDeaths, 2, 0),
		record("Italy", "", day(2), schema.CaseTypeConfirmed, 20, 0),
		record("France", "", day(3), schema.CaseTypeConfirmed, 30, 0),
		record("Italy", "", day(1), schema.CaseTypeConfirmed, 10, 0),
	}

	out := CleanUp(records)
	assert.Equal(t, "France", out[0].LocationName)
	assert.True(t, out[1].Date.Equal(day(1)))
	assert.Equal(t, schema.CaseTypeConfirmed, out[2].CaseType)
	assert.Equal(t, schema.CaseTypeDeaths, out[3].CaseType)

	// input order untouched
	assert.True(t, records[0].Date.Equal(day(2)))
}

// Full pipeline over a three-state, five-day table: A crosses the confirmed
// threshold on day 3, B never does, C crosses on day 1.
func TestBuildCaseTableScenario(t *testing.T) {
	raw := make([]schema.CaseRecord, 0)
	raw = append(raw, confirmedSeries(schema.LocationUSA, "A", 1_000_000, 10, 50, 100, 150, 200)...)
	raw = append(raw, confirmedSeries(schema.LocationUSA, "B", 1_000_000, 1, 2, 3, 4, 5)...)
	raw = append(raw, confirmedSeries(schema.LocationUSA, "C", 1_000_000, 120, 130, 140, 150, 160)...)

	table := BuildCaseTable(raw)
	assert.Len(t, table, 2*len(raw))

	top, err := StatesView(table, schema.LocationUSA, 2, schema.CountTotal)
	assert.Nil(t, err)
	assert.Equal(t, map[string]bool{"A": true, "C": true}, locationNames(top))

	var aDays, bNaNs []float64
	for _, r := range table {
		if r.CaseType != schema.CaseTypeConfirmed {
			continue
		}
		switch r.LocationName {
		case "A":
			if r.DaysSinceOutbreak >= 0 {
				aDays = append(aDays, r.DaysSinceOutbreak)
			}
		case "B":
			assert.Nil(t, r.OutbreakStart)
			bNaNs = append(bNaNs, r.DaysSinceOutbreak)
		}
	}
	assert.Equal(t, []float64{0, 1, 2}, aDays)
	assert.Len(t, bNaNs, 5)
	for _, v := range bNaNs {
		assert.True(t, math.IsNaN(v))
	}
}
