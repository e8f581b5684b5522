package simulator

import "AdPulse/internal/model"

// trendDelta is the minimum movement in either trend signal that
// justifies pushing an unsolicited update to a subscriber.
const trendDelta = 5

// Significant reports whether the cultural or search trend moved by
// more than the threshold between two snapshots. Population,
// competitor count and policy impact never trigger a notification.
// A zero previous snapshot acts as the all-zero baseline, so the first
// comparison of a session is almost always significant.
func Significant(previous, current model.FeatureSnapshot) bool {
	return abs(current.CulturalTrend-previous.CulturalTrend) > trendDelta ||
		abs(current.SearchTrends-previous.SearchTrends) > trendDelta
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
