package terminal

import (
	"sort"

	"github.com/bev-tools/guidance/pkg/models/domain"
	"github.com/bev-tools/guidance/pkg/services/forecast"
	guidancesvc "github.com/bev-tools/guidance/pkg/services/guidance"
)

// BuildReport flattens a roll-up into a console report: one section per
// brand with the built-in trend triple in the summary, one row per variant.
func BuildReport(rollup forecast.RollUpResult, scope domain.ForecastScope) *domain.ForecastReport {
	report := &domain.ForecastReport{
		Title:                "Depletions forecast",
		Scope:                scope,
		LastActualMonthIndex: rollup.LastActualMonthIndex,
		TotalVolume:          rollup.Total.TotalVolume,
		TotalGSV:             rollup.Total.GSV,
	}

	trend := guidancesvc.BuiltInTrendDefinition()

	brandNames := make([]string, 0, len(rollup.Brands))
	for name := range rollup.Brands {
		brandNames = append(brandNames, name)
	}
	sort.Strings(brandNames)

	for _, name := range brandNames {
		b := rollup.Brands[name]
		res := guidancesvc.Evaluate(b, trend, false)

		section := domain.ReportSection{
			Title: name,
			Summary: map[string]float64{
				"volume":    b.TotalVolume,
				"py_volume": b.PYTotalVolume,
				"gsv":       b.GSV,
				"trend_3m":  res.Sub[guidancesvc.TrendSub3M],
				"trend_6m":  res.Sub[guidancesvc.TrendSub6M],
				"trend_12m": res.Sub[guidancesvc.TrendSub12M],
			},
		}
		for _, v := range rollup.Variants {
			if v.Brand != name {
				continue
			}
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        v.Variant,
				Volume:      v.TotalVolume,
				PYVolume:    v.PYTotalVolume,
				GSV:         v.GSV,
				Description: v.Key,
			})
		}
		report.Sections = append(report.Sections, section)
	}
	return report
}
