package guidance

import (
	"github.com/bev-tools/guidance/pkg/models/domain"
	"github.com/bev-tools/guidance/pkg/services/forecast"
)

// Evaluate computes one guidance definition against one aggregate. Every
// failure mode degrades locally: unknown fields read as 0, zero
// denominators yield 0, and a calculation shape outside the four known
// variants returns an empty result. The presentation layer must always
// have something to render, so there is no error path here.
func Evaluate(a *domain.Aggregate, def domain.GuidanceDefinition, wantMonthly bool) domain.GuidanceResult {
	c := def.Calculation
	switch c.Type {
	case domain.CalcDirect:
		res := domain.GuidanceResult{Total: Lookup(a, c.Field)}
		if wantMonthly {
			res.Monthly = monthlySeries(a, func(m int) float64 {
				return LookupMonthly(a, c.Field, m)
			})
		}
		return res

	case domain.CalcDifference:
		res := domain.GuidanceResult{Total: Lookup(a, c.FieldA) - Lookup(a, c.FieldB)}
		if wantMonthly {
			res.Monthly = monthlySeries(a, func(m int) float64 {
				return LookupMonthly(a, c.FieldA, m) - LookupMonthly(a, c.FieldB, m)
			})
		}
		return res

	case domain.CalcPercentage:
		num := Lookup(a, c.FieldA) - Lookup(a, c.FieldB)
		res := domain.GuidanceResult{Total: safeDiv(num, Lookup(a, c.Denominator))}
		if wantMonthly {
			res.Monthly = monthlySeries(a, func(m int) float64 {
				n := LookupMonthly(a, c.FieldA, m) - LookupMonthly(a, c.FieldB, m)
				return safeDiv(n, LookupMonthly(a, c.Denominator, m))
			})
		}
		return res

	case domain.CalcMultiCalc:
		// multiCalc bundles are total-only by construction.
		sub := make(map[int]float64, len(c.Subs))
		for _, s := range c.Subs {
			cy := Lookup(a, s.CYField)
			py := Lookup(a, s.PYField)
			switch s.Type {
			case domain.CalcPercentage:
				sub[s.ID] = safeDiv(cy-py, py)
			case domain.CalcDifference:
				sub[s.ID] = cy - py
			case domain.CalcDirect:
				sub[s.ID] = cy
			default:
				sub[s.ID] = 0
			}
		}
		return domain.GuidanceResult{Sub: sub}

	default:
		return domain.GuidanceResult{}
	}
}

// EvaluateAll evaluates a set of definitions against one aggregate,
// keyed by definition id.
func EvaluateAll(
	a *domain.Aggregate,
	defs []domain.GuidanceDefinition,
	wantMonthly bool,
) map[string]domain.GuidanceResult {
	out := make(map[string]domain.GuidanceResult, len(defs))
	for _, def := range defs {
		out[def.ID] = Evaluate(a, def, wantMonthly)
	}
	return out
}

// EvaluateTotal evaluates definitions against the portfolio total built
// from brand-level aggregates.
func EvaluateTotal(
	brands []*domain.Aggregate,
	defs []domain.GuidanceDefinition,
) map[string]domain.GuidanceResult {
	return EvaluateAll(forecast.PortfolioTotal(brands), defs, false)
}

func monthlySeries(a *domain.Aggregate, value func(m int) float64) map[int]float64 {
	out := make(map[int]float64, domain.MonthsPerYear)
	for m := 0; m < domain.MonthsPerYear; m++ {
		out[m+1] = value(m)
	}
	return out
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
