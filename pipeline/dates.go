package pipeline

import (
	"time"

	"github.com/outbreaklab/casecount-api/schema"
	"github.com/outbreaklab/casecount-api/utils"
)

// AdjustReportDates relabels source dates by the time *ending* each row's
// 24-hour collection window. A row labeled <date> covers 00:00-23:59 of that
// date, so historical rows move forward to the next midnight; rows labeled
// with today's date cover only 00:00-<now> and are stamped with the current
// time instead. Without this shift the last data point would sit up to a day
// off the outbreak-day axis relative to finished days.
//
// The current time is an argument, not a global clock, so the today/historic
// split is deterministic under test.
func AdjustReportDates(records []schema.CaseRecord, now time.Time) []schema.CaseRecord {
	out := make([]schema.CaseRecord, len(records))
	for i, r := range records {
		if utils.SameDay(r.Date, now) {
			r.Date = now
		} else {
			r.Date = r.Date.Add(24 * time.Hour)
		}
		out[i] = r
	}
	return out
}
