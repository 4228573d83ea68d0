package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bev-tools/guidance/pkg/models/domain"
)

func itemFacts(marketID, brand, variant, variantID string, monthly [domain.MonthsPerYear]float64) []domain.RawFact {
	facts := make([]domain.RawFact, 0, domain.MonthsPerYear)
	for m := 0; m < domain.MonthsPerYear; m++ {
		dataType := "forecast_method_run_rate"
		if m < 6 {
			dataType = "actual_complete"
		}
		facts = append(facts, domain.RawFact{
			MarketID:               marketID,
			MarketName:             marketID,
			Brand:                  brand,
			Variant:                variant,
			VariantID:              variantID,
			Month:                  m + 1,
			DataType:               dataType,
			CaseEquivalentVolume:   monthly[m],
			PYCaseEquivalentVolume: monthly[m] / 2,
		})
	}
	return facts
}

func TestRollUp_ConservationAcrossLevels(t *testing.T) {
	// All inputs exact at one decimal so rounding is a no-op and the
	// conservation check can be exact.
	var m1, m2 [domain.MonthsPerYear]float64
	for m := range m1 {
		m1[m] = 10.5
		m2[m] = 2.0
	}
	facts := append(
		itemFacts("US-CA", "Alta", "Reserva", "alta-r", m1),
		itemFacts("US-NV", "Alta", "Blanco", "alta-b", m2)...,
	)

	items := Aggregate(facts, nil, domain.ScopeMarket)
	require.Len(t, items, 2)

	rollup := RollUp(items)
	require.Len(t, rollup.Variants, 2)
	require.Contains(t, rollup.Brands, "Alta")

	brand := rollup.Brands["Alta"]
	for m := 0; m < domain.MonthsPerYear; m++ {
		childSum := items[0].Months[m].Value + items[1].Months[m].Value
		assert.InDelta(t, childSum, brand.Months[m].Value, 1e-6, "month %d", m)
	}
	assert.InDelta(t, items[0].TotalVolume+items[1].TotalVolume, brand.TotalVolume, 1e-6)
	assert.InDelta(t, brand.TotalVolume, rollup.Total.TotalVolume, 1e-6)
}

func TestRollUp_ZeroRowsDroppedButStillContribute(t *testing.T) {
	var m1, m2 [domain.MonthsPerYear]float64
	m1[0] = 100
	m2[0] = 0.0005
	facts := append(
		itemFacts("US-CA", "Alta", "Reserva", "alta-r", m1),
		itemFacts("US-CA", "Alta", "Blanco", "alta-b", m2)...,
	)

	rollup := RollUp(Aggregate(facts, nil, domain.ScopeMarket))

	// The near-zero variant disappears from reporting, but only after its
	// contribution reached the brand.
	require.Len(t, rollup.Variants, 1)
	assert.Equal(t, "Reserva", rollup.Variants[0].Variant)
	require.Contains(t, rollup.Brands, "Alta")
	assert.InDelta(t, 100.0, rollup.Brands["Alta"].TotalVolume, 0.01)
}

func TestRollUp_CutoffIsMaxAcrossChildren(t *testing.T) {
	facts := []domain.RawFact{
		{MarketID: "US-CA", Brand: "Alta", Variant: "Reserva", VariantID: "alta-r",
			Month: 3, DataType: "actual_complete", CaseEquivalentVolume: 10},
		{MarketID: "US-NV", Brand: "Alta", Variant: "Blanco", VariantID: "alta-b",
			Month: 6, DataType: "actual_complete", CaseEquivalentVolume: 10},
	}

	rollup := RollUp(Aggregate(facts, nil, domain.ScopeMarket))

	assert.Equal(t, 5, rollup.LastActualMonthIndex)
	brand := rollup.Brands["Alta"]
	for m := 0; m <= 5; m++ {
		assert.True(t, brand.Months[m].IsActual, "month %d", m)
	}
	for m := 6; m < domain.MonthsPerYear; m++ {
		assert.False(t, brand.Months[m].IsActual, "month %d", m)
	}
}

func TestRollUp_ParentKeepsSummedLCMonetarySeries(t *testing.T) {
	f1 := domain.RawFact{MarketID: "US-CA", Brand: "Alta", Variant: "Reserva", VariantID: "alta-r",
		Month: 1, DataType: "actual_complete", CaseEquivalentVolume: 10,
		PrevPublishedCaseEquivalentVolume: 10, GrossSalesValue: 100}
	f2 := domain.RawFact{MarketID: "US-CA", Brand: "Alta", Variant: "Blanco", VariantID: "alta-b",
		Month: 1, DataType: "actual_complete", CaseEquivalentVolume: 10,
		PrevPublishedCaseEquivalentVolume: 0, GrossSalesValue: 300}

	items := Aggregate([]domain.RawFact{f1, f2}, nil, domain.ScopeMarket)
	rollup := RollUp(items)

	// Item one derives LC GSV 100 at its own rate; item two has no LC
	// volume. The brand keeps the summed series (100) instead of
	// re-deriving 10 cases at the blended rate of 20.
	brand := rollup.Brands["Alta"]
	assert.True(t, brand.LCGSVMonthsExplicit)
	assert.InDelta(t, 100.0, brand.LCGSV, 1e-6)
	assert.InDelta(t, 100.0, brand.LCGSVMonths[0], 1e-6)
}

func TestRollUp_DoesNotMutateItems(t *testing.T) {
	var m1 [domain.MonthsPerYear]float64
	m1[0] = 10.04
	facts := itemFacts("US-CA", "Alta", "Reserva", "alta-r", m1)

	items := Aggregate(facts, nil, domain.ScopeMarket)
	before := items[0].Months[0].Value
	RollUp(items)

	assert.Equal(t, before, items[0].Months[0].Value)
}

func TestRoundVolume_Idempotent(t *testing.T) {
	values := []float64{0, 0.04, 0.05, 10.449, -3.14, 100.0005}
	for _, v := range values {
		once := RoundVolume(v)
		assert.Equal(t, once, RoundVolume(once), "value %v", v)
	}
}
