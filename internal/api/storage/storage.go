package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/openhire/jobboard-be/internal/api/domain"
	"github.com/openhire/jobboard-be/internal/api/model"
	"github.com/openhire/jobboard-be/shared/postgresql"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}

// TitleFilter narrows a titles listing. Keyword is matched case-insensitively
// against title, company and location; empty keyword matches everything.
type TitleFilter struct {
	Keyword string
	Page    int
}

// ListTitles returns one page of job titles matching the filter,
// ordered by id for stable pagination.
func (s *Storage) ListTitles(ctx context.Context, filter TitleFilter) ([]model.JobTitle, error) {
	query := `
		SELECT id, title, company, location, creation_date
		FROM jobs_titles
	`
	where, args := titleWhereClause(filter.Keyword)
	query += where

	page := filter.Page
	if page < 1 {
		page = 1
	}

	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, domain.ItemsPerPage, (page-1)*domain.ItemsPerPage)

	titles := make([]model.JobTitle, 0, domain.ItemsPerPage)
	if err := s.db.SelectContext(ctx, &titles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}

	return titles, nil
}

// CountTitles counts all titles matching the same filter ListTitles uses,
// ignoring the page window.
func (s *Storage) CountTitles(ctx context.Context, keyword string) (int, error) {
	query := `SELECT COUNT(*) FROM jobs_titles`
	where, args := titleWhereClause(keyword)
	query += where

	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count titles: %w", err)
	}

	return count, nil
}

// GetDetail returns the job detail for jobID, or domain.ErrJobNotFound.
func (s *Storage) GetDetail(ctx context.Context, jobID int) (*model.JobDetail, error) {
	var detail model.JobDetail
	query := `
		SELECT job_id, type, salary, skills, description, benefits, link, creation_date
		FROM jobs_details
		WHERE job_id = $1
	`

	err := s.db.GetContext(ctx, &detail, query, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job detail: %w", err)
	}

	return &detail, nil
}

// ListRecentJobIDs returns the ids of the most recently added jobs, newest
// first. The cache warmer sweeps these so first-paint detail fetches hit.
func (s *Storage) ListRecentJobIDs(ctx context.Context, limit int) ([]int, error) {
	ids := make([]int, 0, limit)
	query := `SELECT id FROM jobs_titles ORDER BY id DESC LIMIT $1`

	if err := s.db.SelectContext(ctx, &ids, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent job ids: %w", err)
	}

	return ids, nil
}

// titleWhereClause builds the OR-match over title, company and location.
func titleWhereClause(keyword string) (string, []interface{}) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return "", nil
	}

	pattern := "%" + keyword + "%"
	where := " WHERE title ILIKE $1 OR company ILIKE $2 OR location ILIKE $3"
	return where, []interface{}{pattern, pattern, pattern}
}
