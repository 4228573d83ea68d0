package guidance

import "github.com/bev-tools/guidance/pkg/models/domain"

// BuiltInTrendID is the id of the always-present trend guidance.
const BuiltInTrendID = "trend_3_6_12"

// Sub-calculation ids within the built-in trend bundle.
const (
	TrendSub3M  = 1
	TrendSub6M  = 2
	TrendSub12M = 3
)

// BuiltInTrendDefinition returns the non-deletable "Trends 3M/6M/12M"
// guidance: trailing-window TY volume against the PY equivalent, as a
// percentage triple.
func BuiltInTrendDefinition() domain.GuidanceDefinition {
	return domain.GuidanceDefinition{
		ID:          BuiltInTrendID,
		Label:       "Trends",
		Sublabel:    "3M / 6M / 12M",
		DisplayType: "percent",
		Availability: domain.GuidanceAvailability{
			Rows:    true,
			Columns: true,
		},
		BuiltIn: true,
		Calculation: domain.Calculation{
			Type: domain.CalcMultiCalc,
			Subs: []domain.SubCalculation{
				{
					ID:      TrendSub3M,
					Label:   "3M",
					Type:    domain.CalcPercentage,
					CYField: FieldCY3MVolume,
					PYField: FieldPY3MVolume,
				},
				{
					ID:      TrendSub6M,
					Label:   "6M",
					Type:    domain.CalcPercentage,
					CYField: FieldCY6MVolume,
					PYField: FieldPY6MVolume,
				},
				{
					ID:      TrendSub12M,
					Label:   "12M",
					Type:    domain.CalcPercentage,
					CYField: FieldCY12MVolume,
					PYField: FieldPY12MVolume,
				},
			},
		},
	}
}
