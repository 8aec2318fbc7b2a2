package sources

import (
	"io/ioutil"
	"path/filepath"
	"strconv"
	"strings"
)

// Filenames of the lookup tables kept in the data directory.
const (
	CountryPopulationsFile    = "country_populations.csv"
	StatePopulationsFile      = "usa_and_state_populations.csv"
	StateAbbreviationsFile    = "usa_state_abbreviations.csv"
	countryPopulationNameCol  = "Country (or dependent territory)"
	populationCol             = "Population"
	stateAbbreviationCol      = "Abbreviation:"
	stateNameCol              = "US State:"
)

// LoadCountryPopulations reads the per-country population table from the data
// directory. Keys are country names as they appear in the countries feed
// (plus the synthetic "World" entry).
func LoadCountryPopulations(dataDir string) (map[string]int64, error) {
	return loadPopulationTable(filepath.Join(dataDir, CountryPopulationsFile), countryPopulationNameCol)
}

// LoadStatePopulations reads the per-state population table, keyed by
// two-letter state code.
func LoadStatePopulations(dataDir string) (map[string]int64, error) {
	return loadPopulationTable(filepath.Join(dataDir, StatePopulationsFile), stateAbbreviationCol)
}

// LoadStateNames reads the state code to full name mapping.
func LoadStateNames(dataDir string) (map[string]string, error) {
	data, err := ioutil.ReadFile(filepath.Join(dataDir, StateAbbreviationsFile))
	if err != nil {
		return nil, err
	}
	table, err := parseCSV(data)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	for _, row := range table.rows {
		code := table.get(row, stateAbbreviationCol)
		name := table.get(row, stateNameCol)
		if code != "" && name != "" {
			names[code] = name
		}
	}
	return names, nil
}

func loadPopulationTable(path, keyColumn string) (map[string]int64, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	table, err := parseCSV(data)
	if err != nil {
		return nil, err
	}

	populations := make(map[string]int64)
	for _, row := range table.rows {
		key := table.get(row, keyColumn)
		if key == "" {
			continue
		}
		raw := strings.ReplaceAll(table.get(row, populationCol), ",", "")
		population, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			// Some territories have no population figure; they just won't
			// get per-capita statistics.
			continue
		}
		populations[key] = population
	}
	return populations, nil
}
