package domain

// MonthsPerYear is the fixed length of the forecast time axis.
const MonthsPerYear = 12

type ForecastScope string

const (
	ScopeMarket   ForecastScope = "market"
	ScopeCustomer ForecastScope = "customer"
)

// RawFact is one (market-or-customer, variant, month) observation from the
// depletions feed. Facts are immutable inputs; the engine never writes back.
type RawFact struct {
	MarketID     string
	MarketName   string
	CustomerID   string
	CustomerName string

	Brand       string
	Variant     string
	VariantID   string
	ProductDesc string

	// Month is the 1-based calendar month of the observation.
	Month int

	CaseEquivalentVolume              float64
	PYCaseEquivalentVolume            float64
	PrevPublishedCaseEquivalentVolume float64

	GrossSalesValue   float64
	PYGrossSalesValue float64

	// ProjectedCaseEquivalentVolume, when present, replaces the summed TY
	// volume for the first forecast month after the actuals cutoff.
	ProjectedCaseEquivalentVolume *float64

	// HistoricalGSVRate is an optional feed-supplied monetary rate used in
	// preference to the derived rate when synthesizing LC monetary values.
	HistoricalGSVRate float64

	// DataType tags the observation as actual or forecast data, e.g.
	// "actual_complete" or "forecast_method_run_rate".
	DataType string

	IsManualInput bool
}
