package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(api *gin.RouterGroup, companyUC domain.CompanyUsecase, auth, recruiterOnly gin.HandlerFunc) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := api.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.GET("/:id", handler.GetByID)
		companies.PUT("/:id", auth, recruiterOnly, handler.Update)
	}
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2"`
	Description *string `json:"description"`
	Website     *string `json:"website" binding:"omitempty,url"`
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyUC.ListCompanies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessList(c, http.StatusOK, len(companies), gin.H{"companies": companies})
}

// GetByID godoc
// @Summary      Company details
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.GetCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"company": company})
}

// Update godoc
// @Summary      Update a company profile
// @Description  Partial update, restricted to recruiters attached to the company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Company ID"
// @Param        company  body      UpdateCompanyRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, validation.FormatErrors(err))
		return
	}

	company, err := h.companyUC.UpdateCompany(c.Request.Context(), middleware.CurrentUser(c), id, &domain.CompanyUpdate{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company updated successfully", gin.H{"company": company})
}
