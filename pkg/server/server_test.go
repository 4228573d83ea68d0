package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bev-tools/guidance/pkg/models/api"
	guidancesvc "github.com/bev-tools/guidance/pkg/services/guidance"
	guidancestore "github.com/bev-tools/guidance/pkg/store/guidance"
)

func setupTestServer(t *testing.T) *httptest.Server {
	router := ConfigureRouter(Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Definitions: guidancestore.NewStore(),
			Logger:      zerolog.New(zerolog.NewTestWriter(t)),
		},
	})
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func snapshotRequest() api.ForecastRequest {
	facts := make([]api.RawFact, 0, 12)
	for m := 1; m <= 12; m++ {
		dataType := "forecast_method_run_rate"
		volume := 5.0
		if m <= 6 {
			dataType = "actual_complete"
			volume = 10.0
		}
		facts = append(facts, api.RawFact{
			MarketID:               "US-CA",
			MarketName:             "California",
			Brand:                  "Alta",
			Variant:                "Reserva",
			VariantID:              "alta-r",
			Month:                  m,
			DataType:               dataType,
			CaseEquivalentVolume:   volume,
			PYCaseEquivalentVolume: 8,
			GrossSalesValue:        volume * 20,
		})
	}
	return api.ForecastRequest{Scope: "market", Facts: facts}
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func TestWebAPI_RollUp(t *testing.T) {
	ts := setupTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/forecast/rollup", snapshotRequest())
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rollup api.RollUpResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rollup))

	assert.Equal(t, 5, rollup.LastActualMonthIndex)
	require.Contains(t, rollup.Brands, "Alta")
	assert.InDelta(t, 90.0, rollup.Brands["Alta"].CaseEquivalentVolume, 1e-6)
	require.Len(t, rollup.Variants, 1)
}

func TestWebAPI_Aggregate_BadBody(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := http.Post(
		ts.URL+"/api/v1/forecast/aggregate",
		"application/json",
		strings.NewReader("{not json"),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebAPI_DefinitionLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	base := ts.URL + "/api/v1/guidance/depletions/definitions"

	// Seeded with the built-in trend definition.
	resp, err := http.Get(base)
	require.NoError(t, err)
	var defs []api.GuidanceDefinition
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&defs))
	resp.Body.Close()
	require.Len(t, defs, 1)
	assert.True(t, defs[0].BuiltIn)

	// Add a user definition.
	resp = postJSON(t, base, api.GuidanceDefinition{
		Label: "Volume vs LY",
		Calculation: api.Calculation{
			Type:        "percentage",
			FieldA:      "case_equivalent_volume",
			FieldB:      "py_case_equivalent_volume",
			Denominator: "py_case_equivalent_volume",
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var stored api.GuidanceDefinition
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stored))
	resp.Body.Close()
	require.NotEmpty(t, stored.ID)

	// Built-in definitions cannot be deleted.
	req, err := http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/%s", base, guidancesvc.BuiltInTrendID), nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// User definitions can.
	req, err = http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/%s", base, stored.ID), nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestWebAPI_Evaluate(t *testing.T) {
	ts := setupTestServer(t)

	req := api.EvaluateRequest{ForecastRequest: snapshotRequest(), Monthly: true}
	resp := postJSON(t, ts.URL+"/api/v1/guidance/depletions/evaluate", req)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var eval api.EvaluateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&eval))

	require.Contains(t, eval.Brands, "Alta")
	brandResults := eval.Brands["Alta"]
	require.Contains(t, brandResults, guidancesvc.BuiltInTrendID)

	// TY actuals run 10/month against PY 8/month: +25% on every window.
	trend := brandResults[guidancesvc.BuiltInTrendID]
	assert.InDelta(t, 0.25, trend.Sub[guidancesvc.TrendSub3M], 1e-6)
	assert.InDelta(t, 0.25, trend.Sub[guidancesvc.TrendSub6M], 1e-6)

	require.Contains(t, eval.Total, guidancesvc.BuiltInTrendID)
}

func TestWebAPI_UnknownGuidanceContext(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/guidance/margins/definitions")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
