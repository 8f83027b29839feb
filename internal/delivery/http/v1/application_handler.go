package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(api *gin.RouterGroup, appUC domain.ApplicationUsecase, auth, recruiterOnly, applicantOnly gin.HandlerFunc) {
	handler := &ApplicationHandler{appUC: appUC}

	api.POST("/jobs/:id/apply", auth, applicantOnly, handler.Apply)
	api.GET("/jobs/:id/applicants", auth, recruiterOnly, handler.ListApplicants)
	api.GET("/my-applications", auth, applicantOnly, handler.MyApplications)
	api.PUT("/applications/:id/status", auth, recruiterOnly, handler.UpdateStatus)
}

type ApplyRequest struct {
	CoverLetter *string `json:"cover_letter" binding:"omitempty,max=5000"`
	ResumeURL   *string `json:"resume_url" binding:"omitempty,url"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application to an active job. One application per applicant per job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id           path      int           true  "Job ID"
// @Param        application  body      ApplyRequest  true  "Application details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, validation.FormatErrors(err))
		return
	}

	app, err := h.appUC.ApplyToJob(c.Request.Context(), middleware.CurrentUser(c).ID, jobID, req.CoverLetter, req.ResumeURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", gin.H{"application": app})
}

// ListApplicants godoc
// @Summary      List applicants for a job
// @Description  Recruiter-only view of applications to one of their own jobs
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applicants [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	jobID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	job, applicants, err := h.appUC.ListApplicantsForJob(c.Request.Context(), middleware.CurrentUser(c).ID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessList(c, http.StatusOK, len(applicants), gin.H{
		"job": gin.H{
			"id":    job.ID,
			"title": job.Title,
		},
		"applicants": applicants,
	})
}

// MyApplications godoc
// @Summary      List the current applicant's applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /my-applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	apps, err := h.appUC.GetMyApplications(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessList(c, http.StatusOK, len(apps), gin.H{"applications": apps})
}

// UpdateStatus godoc
// @Summary      Update an application's status
// @Description  Recruiter-only transition of an application on one of their own jobs
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Application ID"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	appID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, validation.FormatErrors(err))
		return
	}

	app, err := h.appUC.UpdateApplicationStatus(c.Request.Context(), middleware.CurrentUser(c).ID, appID, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated successfully", gin.H{"application": app})
}
