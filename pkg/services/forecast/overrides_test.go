package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bev-tools/guidance/pkg/models/domain"
)

func overrideFor(marketID, variantID string, months [domain.MonthsPerYear]float64) domain.ManualOverride {
	return domain.ManualOverride{
		MarketID:  marketID,
		VariantID: variantID,
		Months:    months,
		Comment:   "analyst adjustment",
	}
}

func TestApplyOverrides_ReplacesSeriesVerbatim(t *testing.T) {
	facts := []domain.RawFact{
		fact(1, "actual_complete", 10),
		fact(2, "actual_complete", 20),
		fact(3, "forecast", 30),
	}
	months := [domain.MonthsPerYear]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	items := Aggregate(facts, []domain.ManualOverride{
		overrideFor("US-CA", "alta-reserva-750", months),
	}, domain.ScopeMarket)
	require.Len(t, items, 1)

	item := items[0]
	for m := 0; m < domain.MonthsPerYear; m++ {
		// Replacement, not addition, regardless of what the facts summed to.
		assert.Equal(t, months[m], item.Months[m].Value, "TY month %d", m)
		assert.Equal(t, months[m], item.LCMonths[m].Value, "LC month %d", m)
		assert.True(t, item.Months[m].IsManuallyModified, "month %d flag", m)
	}
	assert.Equal(t, 78.0, item.TotalVolume)
	assert.Equal(t, 78.0, item.LCTotalVolume)
}

func TestApplyOverrides_UnmatchedOverrideIsDropped(t *testing.T) {
	facts := []domain.RawFact{fact(1, "actual_complete", 10)}
	months := [domain.MonthsPerYear]float64{100}

	items := Aggregate(facts, []domain.ManualOverride{
		overrideFor("US-NV", "no-such-variant", months),
	}, domain.ScopeMarket)
	require.Len(t, items, 1)

	// No new item synthesized, existing item untouched.
	assert.Equal(t, 10.0, items[0].Months[0].Value)
	assert.False(t, items[0].Months[0].IsManuallyModified)
}

func TestApplyOverrides_DoesNotTouchMonetaryTotals(t *testing.T) {
	f := fact(1, "actual_complete", 10)
	f.GrossSalesValue = 200
	months := [domain.MonthsPerYear]float64{40}

	items := Aggregate([]domain.RawFact{f}, []domain.ManualOverride{
		overrideFor("US-CA", "alta-reserva-750", months),
	}, domain.ScopeMarket)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, 200.0, item.GSV)
	// LC monetary re-derives from the overridden LC volume at the new rate.
	assert.InDelta(t, 5.0, item.GSVRate, 1e-9)
	assert.InDelta(t, 200.0, item.LCGSV, 1e-9)
}

func TestApplyOverrides_RespectsModifiedFlags(t *testing.T) {
	facts := []domain.RawFact{fact(1, "actual_complete", 10)}
	months := [domain.MonthsPerYear]float64{40, 50}
	flags := [domain.MonthsPerYear]bool{true, false}

	ov := overrideFor("US-CA", "alta-reserva-750", months)
	ov.ModifiedFlags = &flags

	items := Aggregate(facts, []domain.ManualOverride{ov}, domain.ScopeMarket)
	require.Len(t, items, 1)

	assert.True(t, items[0].Months[0].IsManuallyModified)
	assert.False(t, items[0].Months[1].IsManuallyModified)
	assert.Equal(t, 50.0, items[0].Months[1].Value)
}
