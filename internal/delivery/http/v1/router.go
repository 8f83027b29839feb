package v1

import (
	"net/http"
	"strings"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config      *config.Config
	AuthUsecase domain.AuthUsecase
	JobUsecase  domain.JobUsecase
	AppUsecase  domain.ApplicationUsecase
	CompanyUC   domain.CompanyUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler(deps.Config))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Job Portal API is running", gin.H{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	auth := middleware.AuthMiddleware(deps.Config, deps.AuthUsecase)
	optionalAuth := middleware.OptionalAuthMiddleware(deps.Config, deps.AuthUsecase)
	recruiterOnly := middleware.RequireRole(domain.RoleRecruiter)
	applicantOnly := middleware.RequireRole(domain.RoleApplicant)
	authLimiter := middleware.RateLimit(middleware.AuthRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		deps.Config.RateLimitWindowSeconds,
	))

	api := r.Group("/api")

	api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := api.Group("")
	protected.Use(auth)

	NewAuthHandler(api, protected, deps.AuthUsecase, authLimiter)
	NewJobHandler(api, deps.JobUsecase, optionalAuth, auth, recruiterOnly)
	NewApplicationHandler(api, deps.AppUsecase, auth, recruiterOnly, applicantOnly)
	NewCompanyHandler(api, deps.CompanyUC, auth, recruiterOnly)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "API endpoint not found",
				"path":    c.Request.URL.Path,
				"method":  c.Request.Method,
			})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	})

	return r
}
