package pipeline

import (
	"math"

	"github.com/outbreaklab/casecount-api/schema"
)

// AppendPerCapita doubles the table: the input rows followed by a duplicate
// set whose counts are divided by each row's population and whose case types
// are remapped to their per-capita counterparts (case types without a
// per-capita pairing keep their label). A zero/unknown population or an
// undefined count divides to NaN rather than erroring; downstream ranking
// never selects NaN values.
func AppendPerCapita(records []schema.CaseRecord) []schema.CaseRecord {
	out := make([]schema.CaseRecord, 0, 2*len(records))
	out = append(out, records...)

	for _, r := range records {
		pc := r
		pc.CaseType = schema.PerCapitaCaseType(r.CaseType)
		if r.Population > 0 && r.HasCount() {
			pc.CaseCount = r.CaseCount / float64(r.Population)
		} else {
			pc.CaseCount = math.NaN()
		}
		out = append(out, pc)
	}
	return out
}
