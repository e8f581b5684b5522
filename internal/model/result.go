package model

// ROIPoint is one point of the projected ROI trend.
type ROIPoint struct {
	Date string  `json:"date"`
	ROI  float64 `json:"roi"`
}

// Prediction is the parsed response of the external ML service.
type Prediction struct {
	ROI           float64            `json:"roi"`
	Revenue       float64            `json:"revenue"`
	Cost          float64            `json:"cost"`
	FeatureImpact map[string]float64 `json:"featureImpact"`
	Analysis      []string           `json:"analysis"`
	Suggestions   []string           `json:"suggestions"`
}

// SimulationResult is the full output of one orchestration cycle.
type SimulationResult struct {
	ROITrend      []ROIPoint         `json:"roiTrend"`
	Factors       FeatureSnapshot    `json:"factors"`
	FeatureImpact map[string]float64 `json:"featureImpact"`
	Analysis      []string           `json:"analysis"`
	Suggestions   []string           `json:"suggestions"`
	AdCost        float64            `json:"adCost"`
	Revenue       float64            `json:"revenue"`
}

// Update is pushed to streaming subscribers when signals change
// meaningfully, and after every successful one-shot simulation.
type Update struct {
	Type    string          `json:"type"`
	Factors FeatureSnapshot `json:"factors"`
	ROI     float64         `json:"roi"`
}
