// Package sources fetches and parses the upstream case-count feeds: the
// worldwide per-country daily history and the USA per-state daily history.
// Each source normalizes its feed into long-format case rows; assembling the
// rows into the annotated table is the pipeline package's job.
package sources

import (
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/outbreaklab/casecount-api/schema"
)

const (
	logPrefix = "sources"

	// CountriesDailyURL - worldwide daily historical counts per country
	CountriesDailyURL = "https://www.washingtonpost.com/graphics/2020/world/mapping-spread-new-coronavirus/data/clean/world-daily-historical.csv"
	// StatesDailyURL - USA daily historical counts per state
	StatesDailyURL = "https://covidtracking.com/api/states/daily.csv"

	// The countries feed delays requests without a browser-like user agent.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_4)" +
		" AppleWebKit/605.1.15 (KHTML, like Gecko)" +
		" Version/13.1 Safari/605.1.15"
)

// Source - a feed of long-format case rows
type Source interface {
	Fetch() ([]schema.CaseRecord, error)
}

func dataFromURL(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if nil != err {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("fetch source data")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("fetch source data")
		return nil, err
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("read source response")
		return nil, err
	}
	return data, nil
}

// csvTable is a parsed CSV with header-based column access.
type csvTable struct {
	columns map[string]int
	rows    [][]string
}

func parseCSV(data []byte) (*csvTable, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	return &csvTable{columns: columns, rows: records[1:]}, nil
}

// get returns the named cell of a row, or "" when the column is missing or
// the row is short.
func (t *csvTable) get(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
