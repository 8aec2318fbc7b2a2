package sources

import (
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/outbreaklab/casecount-api/pipeline"
	"github.com/outbreaklab/casecount-api/schema"
)

// Country names in the feed that differ from the ones we use everywhere else.
var countryRenames = map[string]string{
	"U.S.":    schema.LocationUSA,
	"Georgia": "Georgia (country)",
}

// CountriesDaily fetches the worldwide daily historical feed: one CSV row per
// country per day with cumulative confirmed and death counts.
type CountriesDaily struct {
	URL         string
	Populations map[string]int64
	Now         func() time.Time
}

// NewCountriesDaily - a countries source with populations joined from the
// given lookup table
func NewCountriesDaily(url string, populations map[string]int64) *CountriesDaily {
	return &CountriesDaily{
		URL:         url,
		Populations: populations,
		Now:         time.Now,
	}
}

// Fetch downloads the feed and melts each CSV row into two long-format rows,
// one for confirmed cases and one for deaths. Report dates are shifted to the
// end of their collection window before returning.
func (s *CountriesDaily) Fetch() ([]schema.CaseRecord, error) {
	data, err := dataFromURL(s.URL)
	if nil != err {
		return nil, err
	}

	table, err := parseCSV(data)
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("parse countries csv")
		return nil, err
	}

	records := make([]schema.CaseRecord, 0, 2*len(table.rows))
	for _, row := range table.rows {
		country := table.get(row, "country")
		if country == "" {
			continue
		}
		if renamed, ok := countryRenames[country]; ok {
			country = renamed
		}

		date, err := time.Parse("2006-01-02", table.get(row, "date"))
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "country": country, "error": err}).Warn("skip countries row with bad date")
			continue
		}

		population := s.Populations[country]
		records = append(records,
			schema.CaseRecord{
				Country:    country,
				Date:       date,
				CaseType:   schema.CaseTypeConfirmed,
				CaseCount:  parseCount(table.get(row, "confirmed")),
				Population: population,
			},
			schema.CaseRecord{
				Country:    country,
				Date:       date,
				CaseType:   schema.CaseTypeDeaths,
				CaseCount:  parseCount(table.get(row, "deaths")),
				Population: population,
			},
		)
	}

	return pipeline.AdjustReportDates(records, s.Now()), nil
}

// parseCount reads a cumulative count cell; blank or malformed cells count
// as zero, matching the upstream convention.
func parseCount(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
