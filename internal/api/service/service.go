// Package service holds the business logic behind the jobs API. It is
// transport-agnostic: handlers translate its results to HTTP, the cache
// warmer reuses its population path.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openhire/jobboard-be/internal/api/domain"
	"github.com/openhire/jobboard-be/internal/api/model"
	"github.com/openhire/jobboard-be/internal/api/storage"
	"github.com/openhire/jobboard-be/shared/cache"
)

// Store is the primary-store surface the service needs.
type Store interface {
	ListTitles(ctx context.Context, filter storage.TitleFilter) ([]model.JobTitle, error)
	CountTitles(ctx context.Context, keyword string) (int, error)
	GetDetail(ctx context.Context, jobID int) (*model.JobDetail, error)
}

// Service answers listing searches and cached detail lookups.
type Service struct {
	store  Store
	cache  cache.Cache
	logger *slog.Logger
}

// NewService returns a configured Service. Pass cache.NewNoop() when no
// cache backend is available; the detail path degrades to store-only reads.
func NewService(store Store, c cache.Cache, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  c,
		logger: logger,
	}
}

// Pagination describes the page window of a titles search.
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
	Keyword      string
}

// SearchResult is one page of titles plus its pagination metadata.
type SearchResult struct {
	Titles     []model.JobTitle
	Pagination Pagination
}

// DetailResult is a job detail annotated with how it was retrieved.
type DetailResult struct {
	Detail        *model.JobDetail
	Cached        bool
	RetrievedAt   time.Time
	RetrievalInfo string
}

// SearchTitles returns one page of titles matching keyword, plus a count of
// everything the same filter matches. Listings are never cached: they change
// too often for a 5-minute staleness window to be acceptable.
func (s *Service) SearchTitles(ctx context.Context, page int, keyword string) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}

	titles, err := s.store.ListTitles(ctx, storage.TitleFilter{Keyword: keyword, Page: page})
	if err != nil {
		return nil, fmt.Errorf("search titles: %w", err)
	}

	total, err := s.store.CountTitles(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("count titles: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + domain.ItemsPerPage - 1) / domain.ItemsPerPage
	}

	return &SearchResult{
		Titles: titles,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: domain.ItemsPerPage,
			Keyword:      keyword,
		},
	}, nil
}

// GetDetail returns the detail for jobID, preferring the cache and falling
// back to the primary store. Cache failures of any kind are treated as
// misses and never surface to the caller.
func (s *Service) GetDetail(ctx context.Context, jobID int) (*DetailResult, error) {
	start := time.Now()
	key := domain.DetailCacheKey(jobID)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		var detail model.JobDetail
		unmarshalErr := json.Unmarshal([]byte(cached), &detail)
		if unmarshalErr == nil {
			s.logger.Debug("Cache hit for job detail",
				slog.Int("job_id", jobID),
			)
			return &DetailResult{
				Detail:        &detail,
				Cached:        true,
				RetrievedAt:   time.Now(),
				RetrievalInfo: fmt.Sprintf("cached %dms", time.Since(start).Milliseconds()),
			}, nil
		}
		// A corrupt entry is just a miss; the store read below overwrites it.
		s.logger.Warn("Failed to decode cached job detail",
			slog.Int("job_id", jobID),
			slog.Any("error", unmarshalErr),
		)
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("Cache read failed, falling back to primary store",
			slog.Int("job_id", jobID),
			slog.Any("error", err),
		)
	}

	detail, err := s.store.GetDetail(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.WarmDetail(ctx, detail); err != nil {
		s.logger.Warn("Cache write failed",
			slog.Int("job_id", jobID),
			slog.Any("error", err),
		)
	}

	return &DetailResult{
		Detail:        detail,
		Cached:        false,
		RetrievedAt:   time.Now(),
		RetrievalInfo: fmt.Sprintf("not cached %dms", time.Since(start).Milliseconds()),
	}, nil
}

// WarmDetail writes detail into the cache with the standard TTL. Both the
// read-through miss path and the warmer service populate entries through
// here so the serialized format stays identical.
func (s *Service) WarmDetail(ctx context.Context, detail *model.JobDetail) error {
	payload, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshal job detail: %w", err)
	}

	key := domain.DetailCacheKey(detail.JobID)
	if err := s.cache.SetWithExpiry(ctx, key, string(payload), domain.DetailCacheTTL); err != nil {
		return err
	}

	s.logger.Debug("Cached job detail",
		slog.Int("job_id", detail.JobID),
		slog.Duration("ttl", domain.DetailCacheTTL),
	)
	return nil
}
