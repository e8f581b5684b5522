package signal

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"AdPulse/internal/model"
)

// Aggregator gathers all environmental signals plus the local request
// facts into one consistent feature snapshot.
type Aggregator struct {
	Trend  *TrendProvider
	Policy *PolicyProvider
}

// NewAggregator creates an Aggregator over the given providers.
func NewAggregator(trend *TrendProvider, policy *PolicyProvider) *Aggregator {
	return &Aggregator{Trend: trend, Policy: policy}
}

// Aggregate fans out the three external signal fetches concurrently;
// each goroutine writes a disjoint snapshot field, so completion order
// is irrelevant. Providers resolve their own failures via fallbacks,
// which keeps the snapshot fully populated no matter what the outside
// world does.
func (a *Aggregator) Aggregate(ctx context.Context, req model.SimulationRequest) model.FeatureSnapshot {
	snap := model.FeatureSnapshot{
		CompetitorCount: CountCompetitors(req.Competitors),
		// Regenerated every cycle, never cached.
		Population: 1_000_000 + rand.Float64()*500_000,
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.CulturalTrend = a.Trend.Fetch(ctx, req.Location, req.ProductCategory).Score
	}()
	go func() {
		defer wg.Done()
		snap.SearchTrends = a.Trend.Fetch(ctx, req.Location, req.ProductCategory+" "+req.Subcategory+" buy").Score
	}()
	go func() {
		defer wg.Done()
		snap.PolicyImpact = a.Policy.Fetch(ctx, req.Location, req.ProductCategory).Score
	}()
	wg.Wait()

	return snap
}

// CountCompetitors counts comma-separated entries in the raw
// competitors text.
func CountCompetitors(competitors string) int {
	if competitors == "" {
		return 0
	}
	return len(strings.Split(competitors, ","))
}
