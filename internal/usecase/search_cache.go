package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"talent-hub/internal/jobfilter"
)

// SearchCache is the subset of the cache client the job search path needs.
// A nil SearchCache disables caching entirely.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const jobSearchCachePrefix = "jobs:search:"

// jobSearchCacheKey derives a stable cache key from the filter criteria.
// Identical criteria always hash to the same key; the pointer bounds are
// folded in as "nil" when absent so 0 and unset stay distinct.
func jobSearchCacheKey(c jobfilter.Criteria) string {
	raw := fmt.Sprintf("term=%s|loc=%s|type=%s|level=%s|smin=%s|smax=%s",
		c.SearchTerm, c.Location, c.JobType, c.ExperienceLevel,
		intPtrKey(c.SalaryMin), intPtrKey(c.SalaryMax))
	sum := sha256.Sum256([]byte(raw))
	return jobSearchCachePrefix + hex.EncodeToString(sum[:])
}

func intPtrKey(v *int) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%d", *v)
}
