package schema

import "fmt"

// DiseaseStage tells which stage of the disease a statistic tracks.
type DiseaseStage string

// Counting tells whether a statistic is an absolute count or per capita.
type Counting string

const (
	StageConfirmed DiseaseStage = "CONFIRMED"
	StageDeath     DiseaseStage = "DEATH"

	CountTotal     Counting = "TOTAL_CASES"
	CountPerCapita Counting = "PER_CAPITA"
)

// CaseType identifies which statistic a case row holds.
type CaseType string

const (
	CaseTypeConfirmed       CaseType = "Cases"
	CaseTypeDeaths          CaseType = "Deaths"
	CaseTypeCasesPerCapita  CaseType = "Cases Per Capita"
	CaseTypeDeathsPerCapita CaseType = "Deaths Per Capita"

	// legacy statistics carried by some sources
	CaseTypeTested    CaseType = "Tested"
	CaseTypeActive    CaseType = "Active"
	CaseTypeRecovered CaseType = "Recovered"
)

var (
	ErrUnhandledStage    = fmt.Errorf("unhandled disease stage")
	ErrUnhandledCounting = fmt.Errorf("unhandled count type")
)

// CaseTypeFor returns the case type holding the statistic for a stage counted
// a given way. Unknown stage/counting combinations are a caller bug and get a
// named error rather than a silent default.
func CaseTypeFor(stage DiseaseStage, count Counting) (CaseType, error) {
	switch stage {
	case StageConfirmed:
		switch count {
		case CountTotal:
			return CaseTypeConfirmed, nil
		case CountPerCapita:
			return CaseTypeCasesPerCapita, nil
		default:
			return "", ErrUnhandledCounting
		}
	case StageDeath:
		switch count {
		case CountTotal:
			return CaseTypeDeaths, nil
		case CountPerCapita:
			return CaseTypeDeathsPerCapita, nil
		default:
			return "", ErrUnhandledCounting
		}
	default:
		return "", ErrUnhandledStage
	}
}

// PerCapitaCaseType maps an absolute case type to its per-capita counterpart.
// Case types without a per-capita pairing map to themselves.
func PerCapitaCaseType(t CaseType) CaseType {
	switch t {
	case CaseTypeConfirmed:
		return CaseTypeCasesPerCapita
	case CaseTypeDeaths:
		return CaseTypeDeathsPerCapita
	default:
		return t
	}
}

// Outbreak thresholds. A location's outbreak starts on the first date its
// count for a case type reaches the threshold for that case type.
const (
	ThresholdCases           = 100
	ThresholdCasesPerCapita  = 1e-5
	ThresholdDeaths          = 25
	ThresholdDeathsPerCapita = 1e-6
)

// Threshold returns the outbreak threshold for a case type. The second return
// is false for case types that have no outbreak definition; those never cross.
func Threshold(t CaseType) (float64, bool) {
	switch t {
	case CaseTypeConfirmed:
		return ThresholdCases, true
	case CaseTypeCasesPerCapita:
		return ThresholdCasesPerCapita, true
	case CaseTypeDeaths:
		return ThresholdDeaths, true
	case CaseTypeDeathsPerCapita:
		return ThresholdDeathsPerCapita, true
	default:
		return 0, false
	}
}
