package pipeline

import (
	"github.com/outbreaklab/casecount-api/schema"
)

// BuildCaseTable runs the full transformation over freshly ingested rows:
// append per-capita duplicates, derive display names, annotate outbreak
// starts, and sort. The result is the table every view selector, chart, and
// export reads.
func BuildCaseTable(records []schema.CaseRecord) []schema.CaseRecord {
	records = AppendPerCapita(records)
	records = DeriveLocationNames(records)
	records = AnnotateOutbreak(records)
	return CleanUp(records)
}
