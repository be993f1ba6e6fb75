// Package jobsapi is the HTTP client for the jobs API used by the terminal
// frontend.
package jobsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/openhire/jobboard-be/internal/client/state"
)

const defaultTimeout = 15 * time.Second

// TitlesResponse is the payload of the titles listing endpoint.
type TitlesResponse struct {
	Titles     []state.JobSummary `json:"titles"`
	Pagination state.Pagination   `json:"pagination"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Client talks to one jobs API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the API rooted at baseURL, for example
// "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// FetchTitles retrieves one page of the listing, optionally filtered by
// keyword.
func (c *Client) FetchTitles(ctx context.Context, page int, keyword string) (*TitlesResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if keyword != "" {
		q.Set("keyword", keyword)
	}

	var resp TitlesResponse
	if err := c.get(ctx, "/api/v1/jobs/titles?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch titles: %w", err)
	}
	return &resp, nil
}

// FetchDetail retrieves the full record for one job.
func (c *Client) FetchDetail(ctx context.Context, jobID int) (*state.JobDetail, error) {
	var detail state.JobDetail
	if err := c.get(ctx, "/api/v1/jobs/details/"+strconv.Itoa(jobID), &detail); err != nil {
		return nil, fmt.Errorf("fetch detail for job %d: %w", jobID, err)
	}
	return &detail, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
