package api

type SubCalculation struct {
	ID      int    `json:"id"`
	Label   string `json:"label,omitempty"`
	Type    string `json:"type"`
	CYField string `json:"cy_field"`
	PYField string `json:"py_field"`
}

type Calculation struct {
	Type        string           `json:"type"`
	Field       string           `json:"field,omitempty"`
	FieldA      string           `json:"field_a,omitempty"`
	FieldB      string           `json:"field_b,omitempty"`
	Denominator string           `json:"denominator,omitempty"`
	Subs        []SubCalculation `json:"sub_calculations,omitempty"`
}

type GuidanceAvailability struct {
	Rows    bool `json:"rows"`
	Columns bool `json:"columns"`
}

type GuidanceDefinition struct {
	ID           string               `json:"id,omitempty"`
	Label        string               `json:"label"`
	Sublabel     string               `json:"sublabel,omitempty"`
	DisplayType  string               `json:"display_type,omitempty"`
	Availability GuidanceAvailability `json:"availability"`
	BuiltIn      bool                 `json:"built_in"`
	Calculation  Calculation          `json:"calculation"`
}

type GuidanceResult struct {
	Total   float64         `json:"total"`
	Monthly map[int]float64 `json:"monthly,omitempty"`
	Sub     map[int]float64 `json:"sub,omitempty"`
}

// EvaluateRequest runs a context's definitions against a fresh roll-up of
// the supplied snapshot.
type EvaluateRequest struct {
	ForecastRequest
	Monthly bool `json:"monthly"`
}

type EvaluateResponse struct {
	Brands   map[string]map[string]GuidanceResult `json:"brands"`
	Variants map[string]map[string]GuidanceResult `json:"variants"`
	Total    map[string]GuidanceResult            `json:"total"`
}
