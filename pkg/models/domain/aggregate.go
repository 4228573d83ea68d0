package domain

type AggregateLevel string

const (
	LevelItem    AggregateLevel = "item"
	LevelVariant AggregateLevel = "variant"
	LevelBrand   AggregateLevel = "brand"
	LevelTotal   AggregateLevel = "total"
)

// MonthlyValue is one bucket of the 12-month axis. IsActual holds for a
// contiguous prefix of the year only; the cutoff resolver enforces that.
type MonthlyValue struct {
	Value              float64
	IsActual           bool
	IsManuallyModified bool
}

// Aggregate carries the full measure set at every level of the hierarchy:
// line item, variant, brand, and portfolio total. Totals are always
// re-derived from the monthly series, never stored independently.
type Aggregate struct {
	Level AggregateLevel
	Key   string

	MarketID     string
	MarketName   string
	CustomerID   string
	CustomerName string
	Brand        string
	Variant      string
	VariantID    string
	ProductDesc  string

	// TY volume with actual/manual flags, PY volume, LC volume.
	Months   [MonthsPerYear]MonthlyValue
	PYMonths [MonthsPerYear]float64
	LCMonths [MonthsPerYear]MonthlyValue

	TotalVolume   float64
	PYTotalVolume float64
	LCTotalVolume float64

	// Monetary totals. TY/PY are summed from facts; LC is rate-derived.
	GSV   float64
	PYGSV float64
	LCGSV float64

	// LCGSVMonths is derived from LC volume and the GSV rate unless the
	// series was summed from children, in which case it is kept as-is.
	LCGSVMonths         [MonthsPerYear]float64
	LCGSVMonthsExplicit bool

	GSVRate           float64
	PYGSVRate         float64
	HistoricalGSVRate float64

	// LastActualIdx is the 0-based index of the last actual month, -1 when
	// the aggregate holds forecast data only.
	LastActualIdx int

	// Trailing rolling-window volume sums ending at LastActualIdx.
	CY3MVolume  float64
	CY6MVolume  float64
	CY12MVolume float64
	PY3MVolume  float64
	PY6MVolume  float64
	PY12MVolume float64
}

// VolumeSeries returns the TY volume months as a plain series.
func (a *Aggregate) VolumeSeries() [MonthsPerYear]float64 {
	var s [MonthsPerYear]float64
	for m := range a.Months {
		s[m] = a.Months[m].Value
	}
	return s
}

// LCVolumeSeries returns the LC volume months as a plain series.
func (a *Aggregate) LCVolumeSeries() [MonthsPerYear]float64 {
	var s [MonthsPerYear]float64
	for m := range a.LCMonths {
		s[m] = a.LCMonths[m].Value
	}
	return s
}

// RecalcTotals re-derives every scalar total from its monthly series.
// Called after any mutation of a monthly series.
func (a *Aggregate) RecalcTotals() {
	a.TotalVolume = 0
	a.PYTotalVolume = 0
	a.LCTotalVolume = 0
	for m := 0; m < MonthsPerYear; m++ {
		a.TotalVolume += a.Months[m].Value
		a.PYTotalVolume += a.PYMonths[m]
		a.LCTotalVolume += a.LCMonths[m].Value
	}
}
