package domain

// GuidanceContext identifies one of the three isolated definition sets.
type GuidanceContext string

const (
	ContextDepletions GuidanceContext = "depletions"
	ContextSummary    GuidanceContext = "summary"
	ContextShipments  GuidanceContext = "shipments"
)

// GuidanceContexts lists every known context in a fixed order.
func GuidanceContexts() []GuidanceContext {
	return []GuidanceContext{ContextDepletions, ContextSummary, ContextShipments}
}

type CalculationType string

const (
	CalcDirect     CalculationType = "direct"
	CalcDifference CalculationType = "difference"
	CalcPercentage CalculationType = "percentage"
	CalcMultiCalc  CalculationType = "multiCalc"
)

// SubCalculation is one named part of a multiCalc bundle, computed from a
// (current year, prior year) field pair.
type SubCalculation struct {
	ID      int
	Label   string
	Type    CalculationType
	CYField string
	PYField string
}

// Calculation is the closed algebra behind a guidance metric. Exactly the
// fields for its Type are consulted; anything outside the four known
// variants evaluates to an empty result, never executable code.
type Calculation struct {
	Type CalculationType

	// direct
	Field string

	// difference and percentage numerator
	FieldA string
	FieldB string

	// percentage
	Denominator string

	// multiCalc
	Subs []SubCalculation
}

// GuidanceDefinition is one user-authored derived metric. Definitions are
// configuration input to the evaluator; the engine never mutates them.
type GuidanceDefinition struct {
	ID          string
	Label       string
	Sublabel    string
	DisplayType string

	// Availability controls where the presentation layer may place the
	// metric; the engine carries it through untouched.
	Availability GuidanceAvailability

	// BuiltIn definitions are seeded per context and cannot be deleted.
	BuiltIn bool

	Calculation Calculation
}

type GuidanceAvailability struct {
	Rows    bool
	Columns bool
}

// GuidanceResult is the evaluator output for one definition against one
// aggregate. Monthly is populated on request for single calculations;
// Sub is populated for multiCalc, keyed by sub-calculation id.
type GuidanceResult struct {
	Total   float64
	Monthly map[int]float64
	Sub     map[int]float64
}
