package sources_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/outbreaklab/casecount-api/external/sources"
	"github.com/outbreaklab/casecount-api/schema"
)

const countriesCSV = `country,countryGeo,date,confirmed,deaths
U.S.,USA,2020-03-21,24207,301
Italy,ITA,2020-03-21,53578,4825
Georgia,GEO,2020-03-21,49,
`

func TestCountriesDailyFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(countriesCSV))
	}))
	defer ts.Close()

	s := sources.NewCountriesDaily(ts.URL, map[string]int64{
		schema.LocationUSA: 329_450_000,
		"Italy":            60_360_000,
	})
	s.Now = fixedNow

	records, err := s.Fetch()
	assert.Nil(t, err)
	assert.Len(t, records, 6)

	// feed names are remapped to ours
	assert.Equal(t, schema.LocationUSA, records[0].Country)
	assert.Equal(t, int64(329_450_000), records[0].Population)
	assert.Equal(t, "Georgia (country)", records[4].Country)

	assert.Equal(t, schema.CaseTypeConfirmed, records[0].CaseType)
	assert.Equal(t, 24207.0, records[0].CaseCount)
	assert.Equal(t, schema.CaseTypeDeaths, records[1].CaseType)
	assert.Equal(t, 301.0, records[1].CaseCount)

	// blank cells count as zero
	assert.Equal(t, 0.0, records[5].CaseCount)

	// historical dates shift to the end of their collection window
	assert.True(t, records[0].Date.Equal(time.Date(2020, time.March, 22, 0, 0, 0, 0, time.UTC)))
}

func TestCountriesDailyFetchBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	s := sources.NewCountriesDaily(ts.URL, nil)
	_, err := s.Fetch()
	assert.NotNil(t, err)
}
