package domain

import (
	"errors"
	"strconv"
	"time"
)

const (
	// ItemsPerPage is the fixed page size for listing searches.
	ItemsPerPage = 25

	// DetailCacheKeyPrefix is the cache key namespace for job details.
	// External cache-warming tooling relies on this format.
	DetailCacheKeyPrefix = "job_detail:"

	// DetailCacheTTL is how long a cached job detail stays valid.
	DetailCacheTTL = 300 * time.Second
)

var (
	ErrJobNotFound = errors.New("job detail not found")
)

// DetailCacheKey builds the cache key for a job detail lookup.
func DetailCacheKey(jobID int) string {
	return DetailCacheKeyPrefix + strconv.Itoa(jobID)
}
