package domain

// ManualOverride is a user-submitted 12-month replacement for one line
// item's TY and LC volume series. Overrides never create items: a change
// whose key matches no aggregated item is dropped.
type ManualOverride struct {
	MarketID   string
	CustomerID string
	VariantID  string
	Brand      string
	Variant    string

	Months [MonthsPerYear]float64

	// ModifiedFlags marks which replaced months count as manual edits.
	// When nil every replaced month is marked modified.
	ModifiedFlags *[MonthsPerYear]bool

	Comment string
}
