package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, rateLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	// Public routes, rate limited per IP
	publicAuth := public.Group("/auth")
	publicAuth.Use(rateLimiter)
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
	}

	// Protected routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/profile", handler.Profile)
		protectedAuth.PUT("/profile", handler.UpdateProfile)
	}
}

type RegisterRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Role        string  `json:"role" binding:"required,oneof=recruiter applicant"`
	FirstName   string  `json:"first_name" binding:"required,min=2"`
	LastName    string  `json:"last_name" binding:"required,min=2"`
	Phone       *string `json:"phone" binding:"omitempty,valid_phone"`
	CompanyID   *int64  `json:"company_id"`
	CompanyName string  `json:"company_name" binding:"omitempty,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=2"`
	LastName  *string `json:"last_name" binding:"omitempty,min=2"`
	Phone     *string `json:"phone" binding:"omitempty,valid_phone"`
	CompanyID *int64  `json:"company_id"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user with email, password and role. Recruiters may name a new company to create it implicitly.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, validation.FormatErrors(err))
		return
	}

	user, token, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		CompanyID:   req.CompanyID,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password, returns user and token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, validation.FormatErrors(err))
		return
	}

	user, token, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// Profile godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/profile [get]
// @Security     BearerAuth
func (h *AuthHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	response.Success(c, http.StatusOK, "", gin.H{"user": user})
}

// UpdateProfile godoc
// @Summary      Update contact fields of the current user
// @Description  Partial update; absent fields are left untouched
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/profile [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, http.StatusBadRequest, validation.FormatErrors(err))
		return
	}

	user := middleware.CurrentUser(c)

	updated, err := h.authUC.UpdateProfile(c.Request.Context(), user.ID, &domain.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", gin.H{"user": updated})
}
