package sources

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/outbreaklab/casecount-api/consts"
	"github.com/outbreaklab/casecount-api/pipeline"
	"github.com/outbreaklab/casecount-api/schema"
)

// StatesDaily fetches the USA per-state daily history: one CSV row per state
// per day, dates as yyyymmdd integers, cumulative positives and deaths.
type StatesDaily struct {
	URL         string
	Populations map[string]int64
	StateNames  map[string]string
	Now         func() time.Time
}

// NewStatesDaily - a states source with populations and full state names
// joined from the given lookup tables (both keyed by two-letter code)
func NewStatesDaily(url string, populations map[string]int64, stateNames map[string]string) *StatesDaily {
	return &StatesDaily{
		URL:         url,
		Populations: populations,
		StateNames:  stateNames,
		Now:         time.Now,
	}
}

// Fetch downloads the feed and melts each CSV row into confirmed and death
// rows. Rows outside the tracked 51 state codes are dropped; a state with no
// known full name keeps its code. Report dates are shifted to the end of
// their collection window before returning.
func (s *StatesDaily) Fetch() ([]schema.CaseRecord, error) {
	data, err := dataFromURL(s.URL)
	if nil != err {
		return nil, err
	}

	table, err := parseCSV(data)
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("parse states csv")
		return nil, err
	}

	records := make([]schema.CaseRecord, 0, 2*len(table.rows))
	for _, row := range table.rows {
		code := table.get(row, "state")
		if !consts.IsUSAStateCode(code) {
			continue
		}

		date, err := time.Parse("20060102", table.get(row, "date"))
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "state": code, "error": err}).Warn("skip states row with bad date")
			continue
		}

		state := s.StateNames[code]
		if state == "" {
			state = code
		}

		population := s.Populations[code]
		records = append(records,
			schema.CaseRecord{
				Country:    schema.LocationUSA,
				State:      state,
				Date:       date,
				CaseType:   schema.CaseTypeConfirmed,
				CaseCount:  parseCount(table.get(row, "positive")),
				Population: population,
			},
			schema.CaseRecord{
				Country:    schema.LocationUSA,
				State:      state,
				Date:       date,
				CaseType:   schema.CaseTypeDeaths,
				CaseCount:  parseCount(table.get(row, "death")),
				Population: population,
			},
		)
	}

	return pipeline.AdjustReportDates(records, s.Now()), nil
}
