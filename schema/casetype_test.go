package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseTypeFor(t *testing.T) {
	cases := []struct {
		stage    DiseaseStage
		count    Counting
		expected CaseType
	}{
		{StageConfirmed, CountTotal, CaseTypeConfirmed},
		{StageConfirmed, CountPerCapita, CaseTypeCasesPerCapita},
		{StageDeath, CountTotal, CaseTypeDeaths},
		{StageDeath, CountPerCapita, CaseTypeDeathsPerCapita},
	}
	for _, c := range cases {
		actual, err := CaseTypeFor(c.stage, c.count)
		assert.Nil(t, err)
		assert.Equal(t, c.expected, actual)
	}
}

func TestCaseTypeForUnhandledStage(t *testing.T) {
	_, err := CaseTypeFor(DiseaseStage("RECOVERED"), CountTotal)
	assert.Equal(t, ErrUnhandledStage, err)
}

func TestCaseTypeForUnhandledCounting(t *testing.T) {
	_, err := CaseTypeFor(StageConfirmed, Counting("DOUBLING_TIME"))
	assert.Equal(t, ErrUnhandledCounting, err)
}

func TestPerCapitaCaseType(t *testing.T) {
	assert.Equal(t, CaseTypeCasesPerCapita, PerCapitaCaseType(CaseTypeConfirmed))
	assert.Equal(t, CaseTypeDeathsPerCapita, PerCapitaCaseType(CaseTypeDeaths))

	// unmapped case types are the identity case
	assert.Equal(t, CaseTypeTested, PerCapitaCaseType(CaseTypeTested))
	assert.Equal(t, CaseTypeCasesPerCapita, PerCapitaCaseType(CaseTypeCasesPerCapita))
}

func TestThreshold(t *testing.T) {
	cases := []struct {
		caseType CaseType
		expected float64
	}{
		{CaseTypeConfirmed, 100},
		{CaseTypeCasesPerCapita, 1e-5},
		{CaseTypeDeaths, 25},
		{CaseTypeDeathsPerCapita, 1e-6},
	}
	for _, c := range cases {
		actual, ok := Threshold(c.caseType)
		assert.True(t, ok)
		assert.Equal(t, c.expected, actual)
	}

	_, ok := Threshold(CaseTypeRecovered)
	assert.False(t, ok)
}
