package usecase

import (
	"strings"
	"testing"

	"talent-hub/internal/jobfilter"
)

func TestJobSearchCacheKey_Stable(t *testing.T) {
	c := jobfilter.Criteria{SearchTerm: "go", SalaryMin: intp(60000)}
	if jobSearchCacheKey(c) != jobSearchCacheKey(c) {
		t.Fatalf("identical criteria must hash identically")
	}
}

func TestJobSearchCacheKey_DistinguishesCriteria(t *testing.T) {
	base := jobfilter.Criteria{SearchTerm: "go"}
	withMin := jobfilter.Criteria{SearchTerm: "go", SalaryMin: intp(0)}

	if jobSearchCacheKey(base) == jobSearchCacheKey(withMin) {
		t.Fatalf("unset and zero salary bounds must hash differently")
	}
}

func TestJobSearchCacheKey_Prefix(t *testing.T) {
	key := jobSearchCacheKey(jobfilter.Criteria{})
	if !strings.HasPrefix(key, jobSearchCachePrefix) {
		t.Fatalf("key %q missing prefix %q", key, jobSearchCachePrefix)
	}
}
