package forecast

import (
	"strings"

	"github.com/bev-tools/guidance/pkg/models/domain"
)

// IsActualData reports whether a feed data_type tag marks realized data
// rather than forecast. Feeds are inconsistent about the exact tag
// ("actual_complete", "actuals", ...), so a substring match is used.
func IsActualData(dataType string) bool {
	return strings.Contains(strings.ToLower(dataType), "actual")
}

// LastActualMonthIndex resolves the actual/forecast boundary for one set of
// facts: the maximum 0-based month index across facts tagged actual, or -1
// when no actual data exists. Months on or before the boundary are treated
// as actual even when no individual fact flagged them: the cutoff is a
// prefix boundary, not a per-month lookup.
func LastActualMonthIndex(facts []domain.RawFact) int {
	idx := -1
	for _, f := range facts {
		if f.Month < 1 || f.Month > domain.MonthsPerYear {
			continue
		}
		if !IsActualData(f.DataType) {
			continue
		}
		if m := f.Month - 1; m > idx {
			idx = m
		}
	}
	return idx
}
