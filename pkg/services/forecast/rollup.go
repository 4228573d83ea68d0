package forecast

import "github.com/bev-tools/guidance/pkg/models/domain"

// RollUpResult is the full hierarchy above the item level.
type RollUpResult struct {
	Variants             []*domain.Aggregate
	Brands               map[string]*domain.Aggregate
	Total                *domain.Aggregate
	LastActualMonthIndex int
}

// RollUp re-aggregates item-level aggregates into variant and brand levels
// plus a synthetic portfolio total. Items are not mutated. Rounding is
// applied to each level only after all summation completes, and rows whose
// own rounded total volume is zero are dropped from the variant/brand lists
// after roll-up, so they still contribute to their parents.
func RollUp(items []*domain.Aggregate) RollUpResult {
	variants := make(map[string]*domain.Aggregate)
	variantOrder := make([]string, 0)
	for _, item := range items {
		key := item.Brand + "|" + item.Variant
		v, ok := variants[key]
		if !ok {
			v = &domain.Aggregate{
				Level:         domain.LevelVariant,
				Key:           key,
				Brand:         item.Brand,
				Variant:       item.Variant,
				LastActualIdx: -1,
			}
			variants[key] = v
			variantOrder = append(variantOrder, key)
		}
		sumInto(v, item)
	}

	brands := make(map[string]*domain.Aggregate)
	brandOrder := make([]string, 0)
	for _, key := range variantOrder {
		v := variants[key]
		b, ok := brands[v.Brand]
		if !ok {
			b = &domain.Aggregate{
				Level:         domain.LevelBrand,
				Key:           v.Brand,
				Brand:         v.Brand,
				LastActualIdx: -1,
			}
			brands[v.Brand] = b
			brandOrder = append(brandOrder, v.Brand)
		}
		sumInto(b, v)
	}

	total := &domain.Aggregate{Level: domain.LevelTotal, Key: "total", LastActualIdx: -1}
	for _, name := range brandOrder {
		sumInto(total, brands[name])
	}

	variantList := make([]*domain.Aggregate, 0, len(variantOrder))
	for _, key := range variantOrder {
		v := variants[key]
		finalizeRollUp(v)
		if !isZeroRow(v) {
			variantList = append(variantList, v)
		}
	}
	for _, name := range brandOrder {
		b := brands[name]
		finalizeRollUp(b)
		if isZeroRow(b) {
			delete(brands, name)
		}
	}
	finalizeRollUp(total)

	return RollUpResult{
		Variants:             variantList,
		Brands:               brands,
		Total:                total,
		LastActualMonthIndex: total.LastActualIdx,
	}
}

// PortfolioTotal sums brand-level aggregates into one portfolio aggregate.
func PortfolioTotal(brands []*domain.Aggregate) *domain.Aggregate {
	total := &domain.Aggregate{Level: domain.LevelTotal, Key: "total", LastActualIdx: -1}
	for _, b := range brands {
		sumInto(total, b)
	}
	finalizeRollUp(total)
	return total
}

// sumInto adds every monthly and total measure of src into dst. The parent
// keeps the summed LC monetary series as explicit data so rate derivation
// does not overwrite it with an approximation.
func sumInto(dst, src *domain.Aggregate) {
	for m := 0; m < domain.MonthsPerYear; m++ {
		dst.Months[m].Value += src.Months[m].Value
		dst.Months[m].IsManuallyModified = dst.Months[m].IsManuallyModified || src.Months[m].IsManuallyModified
		dst.PYMonths[m] += src.PYMonths[m]
		dst.LCMonths[m].Value += src.LCMonths[m].Value
		dst.LCMonths[m].IsManuallyModified = dst.LCMonths[m].IsManuallyModified || src.LCMonths[m].IsManuallyModified
		dst.LCGSVMonths[m] += src.LCGSVMonths[m]
	}
	dst.LCGSVMonthsExplicit = true

	dst.GSV += src.GSV
	dst.PYGSV += src.PYGSV

	if src.LastActualIdx > dst.LastActualIdx {
		dst.LastActualIdx = src.LastActualIdx
	}
}

func finalizeRollUp(a *domain.Aggregate) {
	for m := 0; m < domain.MonthsPerYear; m++ {
		actual := m <= a.LastActualIdx
		a.Months[m].IsActual = actual
		a.LCMonths[m].IsActual = actual
	}
	a.RecalcTotals()
	deriveRates(a)
	applyTrends(a)
	roundAggregateVolumes(a)
}
