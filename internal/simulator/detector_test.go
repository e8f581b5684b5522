package simulator

import (
	"testing"

	"AdPulse/internal/model"
)

func TestSignificant_Thresholds(t *testing.T) {
	prev := model.FeatureSnapshot{CulturalTrend: 50, SearchTrends: 50}

	tests := []struct {
		name    string
		current model.FeatureSnapshot
		want    bool
	}{
		{"cultural delta 6", model.FeatureSnapshot{CulturalTrend: 56, SearchTrends: 50}, true},
		{"cultural delta 4", model.FeatureSnapshot{CulturalTrend: 54, SearchTrends: 50}, false},
		{"cultural delta exactly 5", model.FeatureSnapshot{CulturalTrend: 55, SearchTrends: 50}, false},
		{"search delta 6", model.FeatureSnapshot{CulturalTrend: 50, SearchTrends: 56}, true},
		{"negative cultural delta 6", model.FeatureSnapshot{CulturalTrend: 44, SearchTrends: 50}, true},
		{"no movement", model.FeatureSnapshot{CulturalTrend: 50, SearchTrends: 50}, false},
	}
	for _, tt := range tests {
		if got := Significant(prev, tt.current); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSignificant_OtherFieldsNeverTrigger(t *testing.T) {
	prev := model.FeatureSnapshot{CulturalTrend: 50, SearchTrends: 50, Population: 1_000_000, CompetitorCount: 1, PolicyImpact: 0.2}
	cur := model.FeatureSnapshot{CulturalTrend: 50, SearchTrends: 50, Population: 1_499_999, CompetitorCount: 9, PolicyImpact: 0.95}
	if Significant(prev, cur) {
		t.Error("population/competitor/policy changes must not trigger notifications")
	}
}

func TestSignificant_ZeroBaseline(t *testing.T) {
	// First comparison of a session: previous is the zero snapshot.
	if !Significant(model.FeatureSnapshot{}, model.FeatureSnapshot{CulturalTrend: 40, SearchTrends: 30}) {
		t.Error("first real snapshot should almost always be significant against the zero baseline")
	}
	if Significant(model.FeatureSnapshot{}, model.FeatureSnapshot{CulturalTrend: 3, SearchTrends: 2}) {
		t.Error("tiny trends stay below the threshold even against the zero baseline")
	}
}
