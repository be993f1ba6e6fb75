package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openhire/jobboard-be/internal/api/domain"
	"github.com/openhire/jobboard-be/internal/api/dto"
	"github.com/openhire/jobboard-be/internal/api/model"
	"github.com/openhire/jobboard-be/internal/api/service"
)

// GetTitles handles GET /api/v1/jobs/titles
// Returns one page of job titles matching the optional keyword filter.
func (h *JobHandler) GetTitles(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	keyword := c.Query("keyword")

	h.logger.Info("GetTitles called",
		slog.Int("page", page),
		slog.String("keyword", keyword),
	)

	result, err := h.service.SearchTitles(c.Request.Context(), page, keyword)
	if err != nil {
		h.logger.Error("Failed to search titles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ListTitlesResponse{
		Titles: toTitleDTOs(result.Titles),
		Pagination: dto.PaginationDTO{
			CurrentPage:  result.Pagination.CurrentPage,
			TotalPages:   result.Pagination.TotalPages,
			TotalItems:   result.Pagination.TotalItems,
			ItemsPerPage: result.Pagination.ItemsPerPage,
			Keyword:      result.Pagination.Keyword,
		},
	})
}

// GetDetail handles GET /api/v1/jobs/details/:id
// Returns the job detail merged with cache-retrieval annotations.
func (h *JobHandler) GetDetail(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil || jobID <= 0 {
		h.logger.Error("Invalid job id", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "job id must be a positive integer"})
		return
	}

	h.logger.Info("GetDetail called",
		slog.Int("job_id", jobID),
	)

	result, err := h.service.GetDetail(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Job detail not found"})
			return
		}
		h.logger.Error("Failed to get job detail",
			slog.Int("job_id", jobID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toDetailDTO(result))
}

func toTitleDTOs(titles []model.JobTitle) []dto.JobTitleDTO {
	out := make([]dto.JobTitleDTO, len(titles))
	for i, t := range titles {
		out[i] = dto.JobTitleDTO{
			ID:           t.ID,
			Title:        t.Title,
			Company:      t.Company,
			Location:     t.Location,
			CreationDate: t.CreationDate,
		}
	}
	return out
}

func toDetailDTO(result *service.DetailResult) dto.JobDetailDTO {
	d := result.Detail
	return dto.JobDetailDTO{
		JobID:          d.JobID,
		Type:           d.Type,
		Salary:         d.Salary,
		Skills:         []string(d.Skills),
		Description:    d.Description,
		Benefits:       []string(d.Benefits),
		Link:           d.Link,
		CreationDate:   d.CreationDate,
		Cached:         result.Cached,
		CacheTimestamp: result.RetrievedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		RetrievalInfo:  result.RetrievalInfo,
	}
}
