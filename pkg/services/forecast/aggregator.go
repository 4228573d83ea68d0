package forecast

import (
	"strings"

	"github.com/bev-tools/guidance/pkg/models/domain"
)

// controlMarketName marks synthetic control markets whose facts never take
// the current-month projection substitution. Preserved verbatim from the
// upstream feed contract; see DESIGN.md for the open product question.
const controlMarketName = "Control"

// Aggregate rolls raw facts up into one item-level aggregate per
// (entity, product) key, applies pending manual overrides, and derives the
// per-item GSV rates. Pure: inputs are never mutated and no state is kept
// between calls. Malformed rows (month out of range, non-finite measures)
// degrade to zero contributions rather than erroring.
//
// The market and customer views are computed independently; callers pick
// one view per market and must not feed both for the same market into a
// single pass, or its items double-count.
func Aggregate(
	facts []domain.RawFact,
	overrides []domain.ManualOverride,
	scope domain.ForecastScope,
) []*domain.Aggregate {
	groups := make(map[string][]domain.RawFact)
	order := make([]string, 0)

	for _, f := range facts {
		if f.Month < 1 || f.Month > domain.MonthsPerYear {
			continue
		}
		key := itemKey(entityKey(f, scope), productKey(f))
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], f)
	}

	items := make(map[string]*domain.Aggregate, len(order))
	out := make([]*domain.Aggregate, 0, len(order))
	for _, key := range order {
		item := aggregateItem(key, groups[key], scope)
		items[key] = item
		out = append(out, item)
	}

	ApplyOverrides(items, overrides, scope)

	for _, item := range out {
		deriveRates(item)
		applyTrends(item)
	}
	return out
}

func aggregateItem(key string, facts []domain.RawFact, scope domain.ForecastScope) *domain.Aggregate {
	first := facts[0]
	item := &domain.Aggregate{
		Level:        domain.LevelItem,
		Key:          key,
		MarketID:     first.MarketID,
		MarketName:   first.MarketName,
		Brand:        first.Brand,
		Variant:      first.Variant,
		VariantID:    first.VariantID,
		ProductDesc:  first.ProductDesc,
	}
	if scope == domain.ScopeCustomer {
		item.CustomerID = first.CustomerID
		item.CustomerName = first.CustomerName
	}

	cutoff := LastActualMonthIndex(facts)
	item.LastActualIdx = cutoff
	for m := 0; m < domain.MonthsPerYear; m++ {
		item.Months[m] = domain.MonthlyValue{IsActual: m <= cutoff}
		item.LCMonths[m] = domain.MonthlyValue{IsActual: m <= cutoff}
	}

	for _, f := range facts {
		m := f.Month - 1

		ty := sanitize(f.CaseEquivalentVolume)
		if useProjectedVolume(f, m, cutoff) {
			ty = sanitize(*f.ProjectedCaseEquivalentVolume)
		}
		item.Months[m].Value += ty
		item.PYMonths[m] += sanitize(f.PYCaseEquivalentVolume)
		item.LCMonths[m].Value += sanitize(f.PrevPublishedCaseEquivalentVolume)

		// GSV totals come straight off the facts; they are never derived
		// from volume and never projection-substituted.
		item.GSV += sanitize(f.GrossSalesValue)
		item.PYGSV += sanitize(f.PYGrossSalesValue)

		if r := sanitize(f.HistoricalGSVRate); r > 0 {
			item.HistoricalGSVRate = r
		}
	}

	item.RecalcTotals()
	return item
}

// useProjectedVolume gates the one volume substitution in the pipeline:
// the first forecast month after the cutoff takes the projected figure in
// place of the raw TY volume, unless the fact is a manual input or belongs
// to a control market.
func useProjectedVolume(f domain.RawFact, monthIdx, cutoff int) bool {
	if monthIdx != cutoff+1 {
		return false
	}
	if f.ProjectedCaseEquivalentVolume == nil {
		return false
	}
	if f.IsManualInput {
		return false
	}
	return !strings.EqualFold(f.MarketName, controlMarketName)
}

func entityKey(f domain.RawFact, scope domain.ForecastScope) string {
	if scope == domain.ScopeCustomer && f.CustomerID != "" {
		return f.MarketID + ":" + f.CustomerID
	}
	return f.MarketID
}

func productKey(f domain.RawFact) string {
	if f.VariantID != "" {
		return f.VariantID
	}
	return f.Brand + ":" + f.Variant
}

func itemKey(entity, product string) string {
	return entity + "|" + product
}
