package guidance

import "github.com/bev-tools/guidance/pkg/models/domain"

// The measure vocabulary is a closed enumeration. Guidance definitions are
// user-authored, so lookups go through this dispatch table and anything
// unrecognized resolves to 0 rather than panicking.
const (
	FieldVolume   = "case_equivalent_volume"
	FieldPYVolume = "py_case_equivalent_volume"
	FieldLCVolume = "prev_published_case_equivalent_volume"

	FieldGSV   = "gross_sales_value"
	FieldPYGSV = "py_gross_sales_value"
	FieldLCGSV = "lc_gross_sales_value"

	FieldGSVRate   = "gsv_rate"
	FieldPYGSVRate = "py_gsv_rate"

	FieldCY3MVolume  = "cy_3m_case_equivalent_volume"
	FieldCY6MVolume  = "cy_6m_case_equivalent_volume"
	FieldCY12MVolume = "cy_12m_case_equivalent_volume"
	FieldPY3MVolume  = "py_3m_case_equivalent_volume"
	FieldPY6MVolume  = "py_6m_case_equivalent_volume"
	FieldPY12MVolume = "py_12m_case_equivalent_volume"
)

// Lookup resolves a measure name to its total on one aggregate.
func Lookup(a *domain.Aggregate, field string) float64 {
	if a == nil {
		return 0
	}
	switch field {
	case FieldVolume:
		return a.TotalVolume
	case FieldPYVolume:
		return a.PYTotalVolume
	case FieldLCVolume:
		return a.LCTotalVolume
	case FieldGSV:
		return a.GSV
	case FieldPYGSV:
		return a.PYGSV
	case FieldLCGSV:
		return a.LCGSV
	case FieldGSVRate:
		return a.GSVRate
	case FieldPYGSVRate:
		return a.PYGSVRate
	case FieldCY3MVolume:
		return a.CY3MVolume
	case FieldCY6MVolume:
		return a.CY6MVolume
	case FieldCY12MVolume:
		return a.CY12MVolume
	case FieldPY3MVolume:
		return a.PY3MVolume
	case FieldPY6MVolume:
		return a.PY6MVolume
	case FieldPY12MVolume:
		return a.PY12MVolume
	default:
		return 0
	}
}

// LookupMonthly resolves a measure name to its value for one 0-based month.
// Volume measures read their series directly; monetary measures without a
// stored series derive month values as volume times rate; the rates are
// constant across the year. Measures with no monthly breakdown at all fall
// back to an even spread of the total across 12 months, since no better
// breakdown exists for them.
func LookupMonthly(a *domain.Aggregate, field string, monthIdx int) float64 {
	if a == nil || monthIdx < 0 || monthIdx >= domain.MonthsPerYear {
		return 0
	}
	switch field {
	case FieldVolume:
		return a.Months[monthIdx].Value
	case FieldPYVolume:
		return a.PYMonths[monthIdx]
	case FieldLCVolume:
		return a.LCMonths[monthIdx].Value
	case FieldGSV:
		return a.Months[monthIdx].Value * a.GSVRate
	case FieldPYGSV:
		return a.PYMonths[monthIdx] * a.PYGSVRate
	case FieldLCGSV:
		return a.LCGSVMonths[monthIdx]
	case FieldGSVRate:
		return a.GSVRate
	case FieldPYGSVRate:
		return a.PYGSVRate
	default:
		return Lookup(a, field) / domain.MonthsPerYear
	}
}
