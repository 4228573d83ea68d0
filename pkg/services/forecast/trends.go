package forecast

import "github.com/bev-tools/guidance/pkg/models/domain"

// SumRolling returns the trailing n-month sum of series ending at endIdx,
// truncating the window at the start of the year. A negative endIdx (no
// actual data) yields 0.
func SumRolling(series [domain.MonthsPerYear]float64, n, endIdx int) float64 {
	if n <= 0 || endIdx < 0 {
		return 0
	}
	if endIdx >= domain.MonthsPerYear {
		endIdx = domain.MonthsPerYear - 1
	}
	start := endIdx - n + 1
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for m := start; m <= endIdx; m++ {
		sum += series[m]
	}
	return sum
}

// applyTrends populates the six trailing-window volume measures. The window
// ends at the aggregate's own cutoff: the item-level cutoff for items, the
// maximum child cutoff for rolled-up levels.
func applyTrends(a *domain.Aggregate) {
	ty := a.VolumeSeries()
	end := a.LastActualIdx

	a.CY3MVolume = SumRolling(ty, 3, end)
	a.CY6MVolume = SumRolling(ty, 6, end)
	a.CY12MVolume = SumRolling(ty, 12, end)

	a.PY3MVolume = SumRolling(a.PYMonths, 3, end)
	a.PY6MVolume = SumRolling(a.PYMonths, 6, end)
	a.PY12MVolume = SumRolling(a.PYMonths, 12, end)
}
