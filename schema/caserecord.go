package schema

import (
	"encoding/json"
	"math"
	"time"
)

// Well-known location names, including the synthetic aggregates computed from
// the country-level data.
const (
	LocationWorld         = "World"
	LocationWorldExcChina = "Non-China"
	LocationChina         = "China"
	LocationUSA           = "United States"
)

// CaseRecord is one row of the long-format case table: one statistic for one
// location on one date. State is empty for country-level and aggregate rows.
// CaseCount and DaysSinceOutbreak use NaN for undefined values (e.g. a
// per-capita count with no known population, or days since an outbreak that
// never started); both marshal to JSON null.
type CaseRecord struct {
	LocationName      string     `json:"location" bson:"location"`
	Country           string     `json:"country" bson:"country"`
	State             string     `json:"state" bson:"state"`
	IsState           bool       `json:"is_state" bson:"is_state"`
	Date              time.Time  `json:"date" bson:"date"`
	CaseType          CaseType   `json:"case_type" bson:"case_type"`
	CaseCount         float64    `json:"cases" bson:"cases"`
	ReportDay         time.Time  `json:"-" bson:"report_day"`
	Population        int64      `json:"population,omitempty" bson:"population"`
	OutbreakStart     *time.Time `json:"outbreak_start,omitempty" bson:"outbreak_start,omitempty"`
	DaysSinceOutbreak float64    `json:"days_since_outbreak" bson:"days_since_outbreak"`
}

// HasCount reports whether the row's case count is defined.
func (r CaseRecord) HasCount() bool {
	return !math.IsNaN(r.CaseCount)
}

type jsonCaseRecord struct {
	LocationName      string     `json:"location"`
	Country           string     `json:"country"`
	State             string     `json:"state"`
	IsState           bool       `json:"is_state"`
	Date              time.Time  `json:"date"`
	CaseType          CaseType   `json:"case_type"`
	CaseCount         *float64   `json:"cases"`
	Population        int64      `json:"population,omitempty"`
	OutbreakStart     *time.Time `json:"outbreak_start,omitempty"`
	DaysSinceOutbreak *float64   `json:"days_since_outbreak"`
}

// MarshalJSON emits null for NaN-valued statistics, which encoding/json
// would otherwise reject.
func (r CaseRecord) MarshalJSON() ([]byte, error) {
	out := jsonCaseRecord{
		LocationName:  r.LocationName,
		Country:       r.Country,
		State:         r.State,
		IsState:       r.IsState,
		Date:          r.Date,
		CaseType:      r.CaseType,
		Population:    r.Population,
		OutbreakStart: r.OutbreakStart,
	}
	if !math.IsNaN(r.CaseCount) {
		v := r.CaseCount
		out.CaseCount = &v
	}
	if !math.IsNaN(r.DaysSinceOutbreak) {
		v := r.DaysSinceOutbreak
		out.DaysSinceOutbreak = &v
	}
	return json.Marshal(out)
}
