package schema

// DataTableRow is one row of the wide-format table shared with the web front
// end: all four statistics for one location on one calendar date. Dates are
// formatted strings so the table round-trips byte-for-byte through CSV, which
// is how table versions are compared. Nil cells render as empty/null.
type DataTableRow struct {
	Country         string   `json:"country"`
	State           string   `json:"state"`
	Date            string   `json:"date"`
	Cases           *int64   `json:"cases"`
	CasesPerCapita  *float64 `json:"cases_per_capita"`
	Deaths          *int64   `json:"deaths"`
	DeathsPerCapita *float64 `json:"deaths_per_capita"`
}

// TableName - the postgres table gorm stores rows in
func (DataTableRow) TableName() string {
	return "data_table"
}
