package forecast

import "github.com/bev-tools/guidance/pkg/models/domain"

// ApplyOverrides replaces the TY and LC volume series of every item an
// override matches by key. The replacement is verbatim, monetary totals are
// left alone (LC monetary re-derives from the new volume downstream), and
// overrides with no matching item are dropped: a manual change can only
// retarget a line item that was actually observed.
func ApplyOverrides(
	items map[string]*domain.Aggregate,
	overrides []domain.ManualOverride,
	scope domain.ForecastScope,
) {
	for _, ov := range overrides {
		item, ok := items[overrideKey(ov, scope)]
		if !ok {
			continue
		}

		for m := 0; m < domain.MonthsPerYear; m++ {
			v := sanitize(ov.Months[m])
			modified := true
			if ov.ModifiedFlags != nil {
				modified = ov.ModifiedFlags[m]
			}

			item.Months[m].Value = v
			item.Months[m].IsManuallyModified = modified
			item.LCMonths[m].Value = v
			item.LCMonths[m].IsManuallyModified = modified
		}
		item.RecalcTotals()
	}
}

func overrideKey(ov domain.ManualOverride, scope domain.ForecastScope) string {
	entity := ov.MarketID
	if scope == domain.ScopeCustomer && ov.CustomerID != "" {
		entity = ov.MarketID + ":" + ov.CustomerID
	}
	product := ov.VariantID
	if product == "" {
		product = ov.Brand + ":" + ov.Variant
	}
	return itemKey(entity, product)
}
