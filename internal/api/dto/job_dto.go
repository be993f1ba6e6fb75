package dto

// JobTitleDTO is one entry of the titles listing.
type JobTitleDTO struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	CreationDate string `json:"creationDate"`
}

// PaginationDTO carries page metadata alongside a titles listing.
type PaginationDTO struct {
	CurrentPage  int    `json:"currentPage"`
	TotalPages   int    `json:"totalPages"`
	TotalItems   int    `json:"totalItems"`
	ItemsPerPage int    `json:"itemsPerPage"`
	Keyword      string `json:"keyword"`
}

// ListTitlesResponse is the payload of GET /api/v1/jobs/titles.
type ListTitlesResponse struct {
	Titles     []JobTitleDTO `json:"titles"`
	Pagination PaginationDTO `json:"pagination"`
}

// JobDetailDTO is the payload of GET /api/v1/jobs/details/:id.
// The underscore fields describe how the payload was retrieved, not the job.
type JobDetailDTO struct {
	JobID        int      `json:"jobId"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
	Skills       []string `json:"skills"`
	Description  string   `json:"description"`
	Benefits     []string `json:"benefits"`
	Link         string   `json:"link"`
	CreationDate string   `json:"creationDate"`

	Cached         bool   `json:"_cached"`
	CacheTimestamp string `json:"_cacheTimestamp"`
	RetrievalInfo  string `json:"_retrievalInfo"`
}

// ErrorResponse is the body of 4xx/5xx responses.
type ErrorResponse struct {
	Message string `json:"message"`
}
