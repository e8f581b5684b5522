package signal

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"AdPulse/internal/cache"
)

// Result is a tagged signal value: Fallback marks that the external
// source failed and the documented substitute was used instead.
type Result struct {
	Score    float64
	Fallback bool
}

// policySampleSize caps how many articles feed the sentiment score.
const policySampleSize = 5

// fetch runs the shared provider pattern: consult the cache, otherwise
// do one bounded, non-retried external lookup. Successful values are
// cached; fallback values are not, so a failed source is re-attempted
// on the next call. Cache errors count as misses and are never fatal.
func fetch(ctx context.Context, store cache.Store, key string, lookup func(context.Context) (float64, error), fallback func() float64) Result {
	if cached, ok, err := store.Get(ctx, key); err != nil {
		log.Printf("[WARN] cache get %q: %v", key, err)
	} else if ok {
		if v, perr := strconv.ParseFloat(cached, 64); perr == nil {
			return Result{Score: v}
		}
		log.Printf("[WARN] cache entry %q not a float, refetching", key)
	}

	v, err := lookup(ctx)
	if err != nil {
		log.Printf("[WARN] signal lookup %q failed: %v, using fallback", key, err)
		return Result{Score: fallback(), Fallback: true}
	}

	if err := store.Set(ctx, key, strconv.FormatFloat(v, 'f', -1, 64), cache.SignalTTL); err != nil {
		log.Printf("[WARN] cache set %q: %v", key, err)
	}
	return Result{Score: v}
}

// TrendProvider resolves interest-over-time scores. Its failure mode
// is intentionally non-deterministic: a uniformly random value in
// [0,100) stands in when the source is unreachable.
type TrendProvider struct {
	Store  cache.Store
	Trends TrendsLookup
}

// Fetch returns the interest score for a keyword/region pair.
func (p *TrendProvider) Fetch(ctx context.Context, geo, keyword string) Result {
	return fetch(ctx, p.Store, cache.TrendKey(geo, keyword),
		func(ctx context.Context) (float64, error) {
			return p.Trends.InterestOverTime(ctx, keyword, geo)
		},
		func() float64 {
			return rand.Float64() * 100
		},
	)
}

// PolicyProvider resolves a regulatory-climate score in [0,1] from
// news coverage mentioning the product category and policy terms.
type PolicyProvider struct {
	Store cache.Store
	News  NewsLookup
}

// Fetch returns the policy-impact score for a location/category pair.
func (p *PolicyProvider) Fetch(ctx context.Context, location, category string) Result {
	return fetch(ctx, p.Store, cache.PolicyKey(location, category),
		func(ctx context.Context) (float64, error) {
			articles, err := p.News.Everything(ctx, category+" policy "+location)
			if err != nil {
				return 0, err
			}
			return policySentiment(articles), nil
		},
		func() float64 {
			return policyFallback(location, category)
		},
	)
}

// policySentiment starts from a neutral 0.8 and nudges ±0.1 per
// sampled article depending on whether its description mentions a
// restriction, clamped to [0,1].
func policySentiment(articles []Article) float64 {
	if len(articles) > policySampleSize {
		articles = articles[:policySampleSize]
	}
	score := 0.8
	for _, a := range articles {
		if strings.Contains(a.Description, "restrict") {
			score -= 0.1
		} else {
			score += 0.1
		}
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// policyFallback is the deterministic substitute when the news source
// is unavailable.
func policyFallback(location, category string) float64 {
	if strings.Contains(location, "India") && category == "hardware" {
		return 0.9
	}
	return 0.8
}
