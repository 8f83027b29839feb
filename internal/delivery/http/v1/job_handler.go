package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase, optionalAuth, auth, recruiterOnly gin.HandlerFunc) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", optionalAuth, handler.List)
		jobs.GET("/:id", handler.GetByID)
		jobs.POST("", auth, recruiterOnly, handler.Create)
		jobs.PUT("/:id", auth, recruiterOnly, handler.Update)
		jobs.DELETE("/:id", auth, recruiterOnly, handler.Delete)
	}
}

type CreateJobRequest struct {
	Title          string   `json:"title" binding:"required,min=3,max=255"`
	Description    string   `json:"description" binding:"required,min=10"`
	Requirements   *string  `json:"requirements"`
	Location       *string  `json:"location"`
	SalaryMin      *float64 `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax      *float64 `json:"salary_max" binding:"omitempty,gte=0"`
	EmploymentType string   `json:"employment_type" binding:"omitempty,oneof=full-time part-time contract internship"`
	CompanyID      *int64   `json:"company_id"`
}

type UpdateJobRequest struct {
	Title          *string  `json:"title" binding:"omitempty,min=3,max=255"`
	Description    *string  `json:"description" binding:"omitempty,min=10"`
	Requirements   *string  `json:"requirements"`
	Location       *string  `json:"location"`
	SalaryMin      *float64 `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax      *float64 `json:"salary_max" binding:"omitempty,gte=0"`
	EmploymentType *string  `json:"employment_type" binding:"omitempty,oneof=full-time part-time contract internship"`
	Status         *string  `json:"status" binding:"omitempty,oneof=active closed"`
}

// List godoc
// @Summary      List jobs
// @Description  Public listing of active jobs with filters. An authenticated recruiter sees their own jobs regardless of status.
// @Tags         jobs
// @Produce      json
// @Param        location         query  string  false  "Location substring filter"
// @Param        employment_type  query  string  false  "Employment type filter"
// @Param        status           query  string  false  "Status filter (ignored for recruiters)"
// @Param        limit            query  int     false  "Page size"
// @Param        offset           query  int     false  "Page offset"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Status:         c.Query("status"),
		Location:       c.Query("location"),
		EmploymentType: c.Query("employment_type"),
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessList(c, http.StatusOK, len(jobs), gin.H{"jobs": jobs})
}

// GetByID godoc
// @Summary      Job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"job": job})
}

// Create godoc
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, validation.FormatErrors(err))
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), middleware.CurrentUser(c), &domain.Job{
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Location:       req.Location,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		EmploymentType: req.EmploymentType,
		CompanyID:      req.CompanyID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created successfully", gin.H{"job": job})
}

// Update godoc
// @Summary      Update a job posting
// @Description  Partial update of a job owned by the calling recruiter
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int               true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, validation.FormatErrors(err))
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), middleware.CurrentUser(c).ID, id, &domain.JobUpdate{
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Location:       req.Location,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		EmploymentType: req.EmploymentType,
		Status:         req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", gin.H{"job": job})
}

// Delete godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), middleware.CurrentUser(c).ID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid ID parameter")
	}
	return id, nil
}
