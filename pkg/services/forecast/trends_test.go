package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bev-tools/guidance/pkg/models/domain"
)

func TestSumRolling(t *testing.T) {
	series := [domain.MonthsPerYear]float64{10, 10, 10, 10, 10, 10, 0, 0, 0, 0, 0, 0}

	t.Run("trailing window ending at the cutoff", func(t *testing.T) {
		assert.Equal(t, 30.0, SumRolling(series, 3, 5))
		assert.Equal(t, 60.0, SumRolling(series, 6, 5))
	})

	t.Run("window truncates at the start of the year", func(t *testing.T) {
		assert.Equal(t, 60.0, SumRolling(series, 12, 5))
		assert.Equal(t, 20.0, SumRolling(series, 3, 1))
	})

	t.Run("no actual data yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, SumRolling(series, 3, -1))
	})

	t.Run("degenerate window yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, SumRolling(series, 0, 5))
	})
}

func TestAggregate_PopulatesRollingTrends(t *testing.T) {
	facts := make([]domain.RawFact, 0, 6)
	for m := 1; m <= 6; m++ {
		f := fact(m, "actual_complete", 10)
		f.PYCaseEquivalentVolume = 20
		facts = append(facts, f)
	}

	items := Aggregate(facts, nil, domain.ScopeMarket)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, 30.0, item.CY3MVolume)
	assert.Equal(t, 60.0, item.CY6MVolume)
	assert.Equal(t, 60.0, item.CY12MVolume)
	assert.Equal(t, 60.0, item.PY3MVolume)
	assert.Equal(t, 120.0, item.PY6MVolume)
	assert.Equal(t, 120.0, item.PY12MVolume)
}
