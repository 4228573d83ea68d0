package adapters

import (
	"github.com/bev-tools/guidance/pkg/models/api"
	"github.com/bev-tools/guidance/pkg/models/domain"
)

func MapAPIDefinitionToDomain(def api.GuidanceDefinition) domain.GuidanceDefinition {
	subs := make([]domain.SubCalculation, 0, len(def.Calculation.Subs))
	for _, s := range def.Calculation.Subs {
		subs = append(subs, domain.SubCalculation{
			ID:      s.ID,
			Label:   s.Label,
			Type:    domain.CalculationType(s.Type),
			CYField: s.CYField,
			PYField: s.PYField,
		})
	}
	return domain.GuidanceDefinition{
		ID:          def.ID,
		Label:       def.Label,
		Sublabel:    def.Sublabel,
		DisplayType: def.DisplayType,
		Availability: domain.GuidanceAvailability{
			Rows:    def.Availability.Rows,
			Columns: def.Availability.Columns,
		},
		BuiltIn: def.BuiltIn,
		Calculation: domain.Calculation{
			Type:        domain.CalculationType(def.Calculation.Type),
			Field:       def.Calculation.Field,
			FieldA:      def.Calculation.FieldA,
			FieldB:      def.Calculation.FieldB,
			Denominator: def.Calculation.Denominator,
			Subs:        subs,
		},
	}
}

func MapDomainDefinitionToAPI(def domain.GuidanceDefinition) api.GuidanceDefinition {
	subs := make([]api.SubCalculation, 0, len(def.Calculation.Subs))
	for _, s := range def.Calculation.Subs {
		subs = append(subs, api.SubCalculation{
			ID:      s.ID,
			Label:   s.Label,
			Type:    string(s.Type),
			CYField: s.CYField,
			PYField: s.PYField,
		})
	}
	return api.GuidanceDefinition{
		ID:          def.ID,
		Label:       def.Label,
		Sublabel:    def.Sublabel,
		DisplayType: def.DisplayType,
		Availability: api.GuidanceAvailability{
			Rows:    def.Availability.Rows,
			Columns: def.Availability.Columns,
		},
		BuiltIn: def.BuiltIn,
		Calculation: api.Calculation{
			Type:        string(def.Calculation.Type),
			Field:       def.Calculation.Field,
			FieldA:      def.Calculation.FieldA,
			FieldB:      def.Calculation.FieldB,
			Denominator: def.Calculation.Denominator,
			Subs:        subs,
		},
	}
}

func MapDomainDefinitionsToAPI(defs []domain.GuidanceDefinition) []api.GuidanceDefinition {
	out := make([]api.GuidanceDefinition, 0, len(defs))
	for _, def := range defs {
		out = append(out, MapDomainDefinitionToAPI(def))
	}
	return out
}

func MapDomainResultToAPI(res domain.GuidanceResult) api.GuidanceResult {
	return api.GuidanceResult{
		Total:   res.Total,
		Monthly: res.Monthly,
		Sub:     res.Sub,
	}
}

func MapDomainResultsToAPI(results map[string]domain.GuidanceResult) map[string]api.GuidanceResult {
	out := make(map[string]api.GuidanceResult, len(results))
	for id, res := range results {
		out[id] = MapDomainResultToAPI(res)
	}
	return out
}
