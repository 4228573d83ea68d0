package domain

// ForecastReport is the console-facing summary of one full pipeline run.
type ForecastReport struct {
	Title                string
	Scope                ForecastScope
	LastActualMonthIndex int
	Sections             []ReportSection
	TotalVolume          float64
	TotalGSV             float64
}

// ReportSection groups the rows for one brand.
type ReportSection struct {
	Title   string
	Summary map[string]float64
	Details []ReportDetail
}

// ReportDetail is one variant row within a brand section.
type ReportDetail struct {
	Name        string
	Volume      float64
	PYVolume    float64
	GSV         float64
	Description string
}
