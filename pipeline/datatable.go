package pipeline

import (
	"bytes"
	"encoding/csv"
	"math"
	"sort"
	"strconv"

	"github.com/outbreaklab/casecount-api/schema"
	"github.com/outbreaklab/casecount-api/utils"
)

type dataTableKey struct {
	country string
	state   string
	date    string
}

// BuildDataTable pivots the long-format table into the wide per-day rows the
// web front end consumes. Dates are normalized back to calendar days first:
// rows stamped mid-day (today's rows carry the current time) are labeled with
// the midnight ending their collection window. Internal columns (location
// name, outbreak annotations, population) are dropped; the first defined
// value wins when a cell is fed twice. Rows come out sorted by country,
// state, date.
func BuildDataTable(records []schema.CaseRecord) []schema.DataTableRow {
	cells := make(map[dataTableKey]*schema.DataTableRow)
	order := make([]dataTableKey, 0)

	for _, r := range records {
		date := utils.ReportDay(r.Date)
		k := dataTableKey{country: r.Country, state: r.State, date: date.Format("2006-01-02")}
		row, ok := cells[k]
		if !ok {
			row = &schema.DataTableRow{Country: k.country, State: k.state, Date: k.date}
			cells[k] = row
			order = append(order, k)
		}
		if !r.HasCount() {
			continue
		}
		switch r.CaseType {
		case schema.CaseTypeConfirmed:
			if row.Cases == nil {
				v := int64(math.Round(r.CaseCount))
				row.Cases = &v
			}
		case schema.CaseTypeDeaths:
			if row.Deaths == nil {
				v := int64(math.Round(r.CaseCount))
				row.Deaths = &v
			}
		case schema.CaseTypeCasesPerCapita:
			if row.CasesPerCapita == nil {
				v := r.CaseCount
				row.CasesPerCapita = &v
			}
		case schema.CaseTypeDeathsPerCapita:
			if row.DeathsPerCapita == nil {
				v := r.CaseCount
				row.DeathsPerCapita = &v
			}
		}
	}

	out := make([]schema.DataTableRow, len(order))
	for i, k := range order {
		out[i] = *cells[k]
	}
	SortDataTable(out)
	return out
}

// SortDataTable sorts rows in place into the canonical (country, state,
// date) order, comparing strings byte-wise. The canonical CSV comparison
// relies on this exact order, so rows loaded back from a database must be
// resorted here rather than trusting the database's string collation.
func SortDataTable(rows []schema.DataTableRow) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.State != b.State {
			return a.State < b.State
		}
		return a.Date < b.Date
	})
}

// DataTableCSV renders the wide table as CSV. The rendering is canonical:
// two tables are considered the same data iff their CSVs are byte-identical,
// which is how the crawler decides whether anything new arrived.
func DataTableCSV(rows []schema.DataTableRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Country", "State", "Date", "Cases", "Cases Per Capita", "Deaths", "Deaths Per Capita"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.Country,
			r.State,
			r.Date,
			formatIntCell(r.Cases),
			formatFloatCell(r.CasesPerCapita),
			formatIntCell(r.Deaths),
			formatFloatCell(r.DeathsPerCapita),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatIntCell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatFloatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
