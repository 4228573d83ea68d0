package forecast

import (
	"math"

	"github.com/bev-tools/guidance/pkg/models/domain"
)

// Volume figures display at one decimal place site-wide. Rounding happens
// once, after all summation completes; intermediate sums stay at full
// precision so error never compounds across levels.
const volumePrecision = 10

// zeroVolumeTolerance is the threshold below which a rolled-up row counts
// as zero and is dropped from reporting.
const zeroVolumeTolerance = 0.001

// RoundVolume rounds a volume figure to the site-wide display precision.
// Idempotent: rounding an already-rounded value is a no-op.
func RoundVolume(v float64) float64 {
	return math.Round(v*volumePrecision) / volumePrecision
}

func roundAggregateVolumes(a *domain.Aggregate) {
	for m := 0; m < domain.MonthsPerYear; m++ {
		a.Months[m].Value = RoundVolume(a.Months[m].Value)
		a.PYMonths[m] = RoundVolume(a.PYMonths[m])
		a.LCMonths[m].Value = RoundVolume(a.LCMonths[m].Value)
	}
	a.TotalVolume = RoundVolume(a.TotalVolume)
	a.PYTotalVolume = RoundVolume(a.PYTotalVolume)
	a.LCTotalVolume = RoundVolume(a.LCTotalVolume)

	a.CY3MVolume = RoundVolume(a.CY3MVolume)
	a.CY6MVolume = RoundVolume(a.CY6MVolume)
	a.CY12MVolume = RoundVolume(a.CY12MVolume)
	a.PY3MVolume = RoundVolume(a.PY3MVolume)
	a.PY6MVolume = RoundVolume(a.PY6MVolume)
	a.PY12MVolume = RoundVolume(a.PY12MVolume)
}

// isZeroRow reports whether a rolled-up row's own rounded total volume is
// indistinguishable from zero for reporting purposes.
func isZeroRow(a *domain.Aggregate) bool {
	return math.Abs(RoundVolume(a.TotalVolume)) <= zeroVolumeTolerance
}
