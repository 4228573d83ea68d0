package adapters

import (
	"github.com/bev-tools/guidance/pkg/models/api"
	"github.com/bev-tools/guidance/pkg/models/domain"
)

func MapAPIFactToDomain(f api.RawFact) domain.RawFact {
	return domain.RawFact{
		MarketID:     f.MarketID,
		MarketName:   f.MarketName,
		CustomerID:   f.CustomerID,
		CustomerName: f.CustomerName,
		Brand:        f.Brand,
		Variant:      f.Variant,
		VariantID:    f.VariantID,
		ProductDesc:  f.ProductDesc,
		Month:        f.Month,

		CaseEquivalentVolume:              f.CaseEquivalentVolume,
		PYCaseEquivalentVolume:            f.PYCaseEquivalentVolume,
		PrevPublishedCaseEquivalentVolume: f.PrevPublishedCaseEquivalentVolume,

		GrossSalesValue:   f.GrossSalesValue,
		PYGrossSalesValue: f.PYGrossSalesValue,

		ProjectedCaseEquivalentVolume: f.ProjectedCaseEquivalentVolume,
		HistoricalGSVRate:             f.GSVRate,

		DataType:      f.DataType,
		IsManualInput: f.IsManualInput,
	}
}

func MapAPIFactsToDomain(facts []api.RawFact) []domain.RawFact {
	out := make([]domain.RawFact, 0, len(facts))
	for _, f := range facts {
		out = append(out, MapAPIFactToDomain(f))
	}
	return out
}

// MapAPIOverrideToDomain fits a wire override onto the fixed 12-month axis.
// Short series leave trailing months at zero; extra months are ignored.
func MapAPIOverrideToDomain(ov api.ManualOverride) domain.ManualOverride {
	d := domain.ManualOverride{
		MarketID:   ov.MarketID,
		CustomerID: ov.CustomerID,
		VariantID:  ov.VariantID,
		Brand:      ov.Brand,
		Variant:    ov.Variant,
		Comment:    ov.Comment,
	}
	for m := 0; m < domain.MonthsPerYear && m < len(ov.Months); m++ {
		d.Months[m] = ov.Months[m]
	}
	if ov.ModifiedFlags != nil {
		var flags [domain.MonthsPerYear]bool
		for m := 0; m < domain.MonthsPerYear && m < len(ov.ModifiedFlags); m++ {
			flags[m] = ov.ModifiedFlags[m]
		}
		d.ModifiedFlags = &flags
	}
	return d
}

func MapAPIOverridesToDomain(overrides []api.ManualOverride) []domain.ManualOverride {
	out := make([]domain.ManualOverride, 0, len(overrides))
	for _, ov := range overrides {
		out = append(out, MapAPIOverrideToDomain(ov))
	}
	return out
}

func MapAPIScopeToDomain(scope string) domain.ForecastScope {
	if scope == string(domain.ScopeCustomer) {
		return domain.ScopeCustomer
	}
	return domain.ScopeMarket
}

func MapDomainAggregateToAPI(a *domain.Aggregate) api.Aggregate {
	out := api.Aggregate{
		Level:        string(a.Level),
		Key:          a.Key,
		MarketID:     a.MarketID,
		MarketName:   a.MarketName,
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
		Brand:        a.Brand,
		Variant:      a.Variant,
		VariantID:    a.VariantID,
		ProductDesc:  a.ProductDesc,

		CaseEquivalentVolume:              a.TotalVolume,
		PYCaseEquivalentVolume:            a.PYTotalVolume,
		PrevPublishedCaseEquivalentVolume: a.LCTotalVolume,

		GrossSalesValue:   a.GSV,
		PYGrossSalesValue: a.PYGSV,
		LCGrossSalesValue: a.LCGSV,

		GSVRate:   a.GSVRate,
		PYGSVRate: a.PYGSVRate,

		LastActualMonthIndex: a.LastActualIdx,

		CY3MCaseEquivalentVolume:  a.CY3MVolume,
		CY6MCaseEquivalentVolume:  a.CY6MVolume,
		CY12MCaseEquivalentVolume: a.CY12MVolume,
		PY3MCaseEquivalentVolume:  a.PY3MVolume,
		PY6MCaseEquivalentVolume:  a.PY6MVolume,
		PY12MCaseEquivalentVolume: a.PY12MVolume,
	}

	out.Months = make([]api.MonthlyValue, domain.MonthsPerYear)
	out.LCMonths = make([]api.MonthlyValue, domain.MonthsPerYear)
	out.PYMonths = make([]float64, domain.MonthsPerYear)
	out.LCGSVMonths = make([]float64, domain.MonthsPerYear)
	for m := 0; m < domain.MonthsPerYear; m++ {
		out.Months[m] = api.MonthlyValue{
			Value:              a.Months[m].Value,
			IsActual:           a.Months[m].IsActual,
			IsManuallyModified: a.Months[m].IsManuallyModified,
		}
		out.LCMonths[m] = api.MonthlyValue{
			Value:              a.LCMonths[m].Value,
			IsActual:           a.LCMonths[m].IsActual,
			IsManuallyModified: a.LCMonths[m].IsManuallyModified,
		}
		out.PYMonths[m] = a.PYMonths[m]
		out.LCGSVMonths[m] = a.LCGSVMonths[m]
	}
	return out
}

func MapDomainAggregatesToAPI(aggs []*domain.Aggregate) []api.Aggregate {
	out := make([]api.Aggregate, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, MapDomainAggregateToAPI(a))
	}
	return out
}
