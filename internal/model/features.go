package model

// FeatureSnapshot is the assembled set of environmental signals fed
// into ROI prediction. Fields are always populated together; a failed
// signal lookup is replaced by its documented fallback, never left
// zero-by-accident. The zero value doubles as the baseline for the
// first change-detection comparison of a polling session.
type FeatureSnapshot struct {
	CulturalTrend   float64 `json:"culturalTrend"`
	Population      float64 `json:"population"`
	SearchTrends    float64 `json:"searchTrends"`
	CompetitorCount int     `json:"competitorCount"`
	PolicyImpact    float64 `json:"policyImpact"`
}
