package forecast

import "github.com/bev-tools/guidance/pkg/models/domain"

// deriveRates computes the monetary-per-unit rates for one aggregate and
// synthesizes the LC monetary figures from LC volume. The LC series is only
// derived when the aggregate does not already carry an explicit one (a
// parent whose series was summed from children keeps it as-is).
func deriveRates(a *domain.Aggregate) {
	a.GSVRate = 0
	if a.GSV > 0 && a.TotalVolume != 0 {
		a.GSVRate = a.GSV / a.TotalVolume
	}
	a.PYGSVRate = 0
	if a.PYGSV > 0 && a.PYTotalVolume != 0 {
		a.PYGSVRate = a.PYGSV / a.PYTotalVolume
	}

	rate := a.GSVRate
	if a.HistoricalGSVRate > 0 {
		rate = a.HistoricalGSVRate
	}

	if !a.LCGSVMonthsExplicit {
		for m := 0; m < domain.MonthsPerYear; m++ {
			a.LCGSVMonths[m] = a.LCMonths[m].Value * rate
		}
	}

	a.LCGSV = 0
	for m := 0; m < domain.MonthsPerYear; m++ {
		a.LCGSV += a.LCGSVMonths[m]
	}
}
