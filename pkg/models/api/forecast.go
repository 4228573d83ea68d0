package api

// RawFact mirrors one depletions feed row on the wire.
type RawFact struct {
	MarketID     string `json:"market_id"`
	MarketName   string `json:"market_name"`
	CustomerID   string `json:"customer_id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`

	Brand       string `json:"brand"`
	Variant     string `json:"variant"`
	VariantID   string `json:"variant_id"`
	ProductDesc string `json:"product_desc,omitempty"`

	Month int `json:"month"`

	CaseEquivalentVolume              float64 `json:"case_equivalent_volume"`
	PYCaseEquivalentVolume            float64 `json:"py_case_equivalent_volume"`
	PrevPublishedCaseEquivalentVolume float64 `json:"prev_published_case_equivalent_volume"`

	GrossSalesValue   float64 `json:"gross_sales_value"`
	PYGrossSalesValue float64 `json:"py_gross_sales_value"`

	ProjectedCaseEquivalentVolume *float64 `json:"projected_case_equivalent_volume,omitempty"`
	GSVRate                       float64  `json:"gsv_rate,omitempty"`

	DataType      string `json:"data_type"`
	IsManualInput bool   `json:"is_manual_input"`
}

type ManualOverride struct {
	MarketID   string `json:"market_id"`
	CustomerID string `json:"customer_id,omitempty"`
	VariantID  string `json:"variant_id,omitempty"`
	Brand      string `json:"brand,omitempty"`
	Variant    string `json:"variant,omitempty"`

	Months        []float64 `json:"months"`
	ModifiedFlags []bool    `json:"modified_flags,omitempty"`
	Comment       string    `json:"comment,omitempty"`
}

// ForecastRequest is the input snapshot for one recomputation pass.
type ForecastRequest struct {
	Scope     string           `json:"scope"`
	Facts     []RawFact        `json:"facts"`
	Overrides []ManualOverride `json:"overrides,omitempty"`
}

type MonthlyValue struct {
	Value              float64 `json:"value"`
	IsActual           bool    `json:"is_actual"`
	IsManuallyModified bool    `json:"is_manually_modified"`
}

type Aggregate struct {
	Level string `json:"level"`
	Key   string `json:"key"`

	MarketID     string `json:"market_id,omitempty"`
	MarketName   string `json:"market_name,omitempty"`
	CustomerID   string `json:"customer_id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	Brand        string `json:"brand,omitempty"`
	Variant      string `json:"variant,omitempty"`
	VariantID    string `json:"variant_id,omitempty"`
	ProductDesc  string `json:"product_desc,omitempty"`

	Months   []MonthlyValue `json:"months"`
	PYMonths []float64      `json:"py_months"`
	LCMonths []MonthlyValue `json:"lc_months"`

	CaseEquivalentVolume              float64 `json:"case_equivalent_volume"`
	PYCaseEquivalentVolume            float64 `json:"py_case_equivalent_volume"`
	PrevPublishedCaseEquivalentVolume float64 `json:"prev_published_case_equivalent_volume"`

	GrossSalesValue   float64   `json:"gross_sales_value"`
	PYGrossSalesValue float64   `json:"py_gross_sales_value"`
	LCGrossSalesValue float64   `json:"lc_gross_sales_value"`
	LCGSVMonths       []float64 `json:"lc_gsv_months"`

	GSVRate   float64 `json:"gsv_rate"`
	PYGSVRate float64 `json:"py_gsv_rate"`

	LastActualMonthIndex int `json:"last_actual_month_index"`

	CY3MCaseEquivalentVolume  float64 `json:"cy_3m_case_equivalent_volume"`
	CY6MCaseEquivalentVolume  float64 `json:"cy_6m_case_equivalent_volume"`
	CY12MCaseEquivalentVolume float64 `json:"cy_12m_case_equivalent_volume"`
	PY3MCaseEquivalentVolume  float64 `json:"py_3m_case_equivalent_volume"`
	PY6MCaseEquivalentVolume  float64 `json:"py_6m_case_equivalent_volume"`
	PY12MCaseEquivalentVolume float64 `json:"py_12m_case_equivalent_volume"`
}

type AggregateResponse struct {
	Items []Aggregate `json:"items"`
}

type RollUpResponse struct {
	Variants             []Aggregate          `json:"variants"`
	Brands               map[string]Aggregate `json:"brands"`
	Total                Aggregate            `json:"total"`
	LastActualMonthIndex int                  `json:"last_actual_month_index"`
}
