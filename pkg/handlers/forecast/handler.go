package forecast

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/bev-tools/guidance/pkg/adapters"
	"github.com/bev-tools/guidance/pkg/models/api"
	"github.com/bev-tools/guidance/pkg/models/domain"
	"github.com/bev-tools/guidance/pkg/services/forecast"
	guidancesvc "github.com/bev-tools/guidance/pkg/services/guidance"
	guidancestore "github.com/bev-tools/guidance/pkg/store/guidance"
)

type Handler struct {
	definitions *guidancestore.Store
}

func NewHandler(definitions *guidancestore.Store) *Handler {
	return &Handler{definitions: definitions}
}

// Aggregate runs the fact aggregator plus override layer for one snapshot
// and returns the item-level aggregates.
func (h *Handler) Aggregate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	items := forecast.Aggregate(
		adapters.MapAPIFactsToDomain(req.Facts),
		adapters.MapAPIOverridesToDomain(req.Overrides),
		adapters.MapAPIScopeToDomain(req.Scope),
	)

	resp := api.AggregateResponse{Items: adapters.MapDomainAggregatesToAPI(items)}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error().Err(err).Msg("failed to encode aggregate response")
	}
}

// RollUp runs the full pipeline and returns the variant/brand/total levels.
func (h *Handler) RollUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rollup := rollUpSnapshot(req)

	resp := api.RollUpResponse{
		Variants:             adapters.MapDomainAggregatesToAPI(rollup.Variants),
		Brands:               make(map[string]api.Aggregate, len(rollup.Brands)),
		Total:                adapters.MapDomainAggregateToAPI(rollup.Total),
		LastActualMonthIndex: rollup.LastActualMonthIndex,
	}
	for name, b := range rollup.Brands {
		resp.Brands[name] = adapters.MapDomainAggregateToAPI(b)
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error().Err(err).Msg("failed to encode rollup response")
	}
}

func (h *Handler) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	gctx := domain.GuidanceContext(chi.URLParam(r, "context"))

	defs, err := h.definitions.List(gctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := json.NewEncoder(w).Encode(adapters.MapDomainDefinitionsToAPI(defs)); err != nil {
		logger.Error().Err(err).Str("context", string(gctx)).Msg("failed to encode definitions")
	}
}

func (h *Handler) AddDefinition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	gctx := domain.GuidanceContext(chi.URLParam(r, "context"))

	var def api.GuidanceDefinition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	stored, err := h.definitions.Add(gctx, adapters.MapAPIDefinitionToDomain(def))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(adapters.MapDomainDefinitionToAPI(stored)); err != nil {
		logger.Error().Err(err).Str("context", string(gctx)).Msg("failed to encode definition")
	}
}

func (h *Handler) DeleteDefinition(w http.ResponseWriter, r *http.Request) {
	gctx := domain.GuidanceContext(chi.URLParam(r, "context"))
	id := chi.URLParam(r, "id")

	err := h.definitions.Delete(gctx, id)
	switch {
	case errors.Is(err, guidancestore.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, guidancestore.ErrBuiltIn):
		http.Error(w, err.Error(), http.StatusConflict)
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// Evaluate rolls the snapshot up and evaluates the context's definitions
// against every brand, every variant, and the portfolio total.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	gctx := domain.GuidanceContext(chi.URLParam(r, "context"))

	var req api.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	defs, err := h.definitions.List(gctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rollup := rollUpSnapshot(req.ForecastRequest)

	resp := api.EvaluateResponse{
		Brands:   make(map[string]map[string]api.GuidanceResult, len(rollup.Brands)),
		Variants: make(map[string]map[string]api.GuidanceResult, len(rollup.Variants)),
	}
	brandList := make([]*domain.Aggregate, 0, len(rollup.Brands))
	for name, b := range rollup.Brands {
		resp.Brands[name] = adapters.MapDomainResultsToAPI(
			guidancesvc.EvaluateAll(b, defs, req.Monthly))
		brandList = append(brandList, b)
	}
	for _, v := range rollup.Variants {
		resp.Variants[v.Key] = adapters.MapDomainResultsToAPI(
			guidancesvc.EvaluateAll(v, defs, req.Monthly))
	}
	resp.Total = adapters.MapDomainResultsToAPI(guidancesvc.EvaluateTotal(brandList, defs))

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error().Err(err).Str("context", string(gctx)).Msg("failed to encode evaluation")
	}
}

func rollUpSnapshot(req api.ForecastRequest) forecast.RollUpResult {
	items := forecast.Aggregate(
		adapters.MapAPIFactsToDomain(req.Facts),
		adapters.MapAPIOverridesToDomain(req.Overrides),
		adapters.MapAPIScopeToDomain(req.Scope),
	)
	return forecast.RollUp(items)
}
