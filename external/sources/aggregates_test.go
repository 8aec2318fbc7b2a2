package sources_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/outbreaklab/casecount-api/external/sources"
	"github.com/outbreaklab/casecount-api/schema"
)

func countryRow(country string, dayOfMarch int, caseType schema.CaseType, count float64) schema.CaseRecord {
	return schema.CaseRecord{
		Country:   country,
		Date:      time.Date(2020, time.March, dayOfMarch, 0, 0, 0, 0, time.UTC),
		CaseType:  caseType,
		CaseCount: count,
	}
}

func TestWorldAggregates(t *testing.T) {
	countries := []schema.CaseRecord{
		countryRow(schema.LocationChina, 1, schema.CaseTypeConfirmed, 80000),
		countryRow("Italy", 1, schema.CaseTypeConfirmed, 50000),
		countryRow("Spain", 1, schema.CaseTypeConfirmed, 20000),
		countryRow(schema.LocationChina, 1, schema.CaseTypeDeaths, 3000),
		countryRow("Italy", 1, schema.CaseTypeDeaths, 4000),
	}
	populations := map[string]int64{
		schema.LocationWorld: 7_700_000_000,
		schema.LocationChina: 1_400_000_000,
	}

	out := sources.WorldAggregates(countries, populations)
	// two aggregate locations per (date, case type)
	assert.Len(t, out, 4)

	byKey := make(map[string]schema.CaseRecord)
	for _, r := range out {
		byKey[r.Country+"/"+string(r.CaseType)] = r
	}

	world := byKey[schema.LocationWorld+"/"+string(schema.CaseTypeConfirmed)]
	assert.Equal(t, 150000.0, world.CaseCount)
	assert.Equal(t, int64(7_700_000_000), world.Population)

	nonChina := byKey[schema.LocationWorldExcChina+"/"+string(schema.CaseTypeConfirmed)]
	assert.Equal(t, 70000.0, nonChina.CaseCount)
	assert.Equal(t, int64(6_300_000_000), nonChina.Population)

	worldDeaths := byKey[schema.LocationWorld+"/"+string(schema.CaseTypeDeaths)]
	assert.Equal(t, 7000.0, worldDeaths.CaseCount)
	nonChinaDeaths := byKey[schema.LocationWorldExcChina+"/"+string(schema.CaseTypeDeaths)]
	assert.Equal(t, 4000.0, nonChinaDeaths.CaseCount)
}

func TestWorldAggregatesNoPopulations(t *testing.T) {
	countries := []schema.CaseRecord{
		countryRow("Italy", 1, schema.CaseTypeConfirmed, 100),
	}

	out := sources.WorldAggregates(countries, nil)
	assert.Len(t, out, 2)
	for _, r := range out {
		assert.Equal(t, int64(0), r.Population)
	}
}

func TestWorldAggregatesEmpty(t *testing.T) {
	assert.Len(t, sources.WorldAggregates(nil, nil), 0)
}
