package cache

import (
	"context"
	"fmt"
	"time"
)

// SignalTTL is how long a successfully fetched external signal stays
// valid. All current signal types share the same expiry.
const SignalTTL = time.Hour

// Store memoizes string-encoded external lookup results with a
// per-entry TTL. Implementations must never return an entry whose TTL
// has elapsed, and must tolerate concurrent Get/Set from simultaneous
// aggregation cycles.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Close() error
}

// TrendKey namespaces a trend-signal cache entry.
func TrendKey(geo, keyword string) string {
	return fmt.Sprintf("trends:%s:%s", geo, keyword)
}

// PolicyKey namespaces a policy-impact cache entry.
func PolicyKey(location, category string) string {
	return fmt.Sprintf("policy:%s:%s", location, category)
}
