package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a live user record. The user
// is always re-read from the database so role and company changes take
// effect immediately and deleted accounts lose access, whatever their token
// says.
func AuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Access denied. No token provided.", nil)
			c.Abort()
			return
		}

		userID, err := auth.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			message := "Invalid token."
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "Token expired."
			}
			response.Error(c, http.StatusUnauthorized, message, nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				response.Error(c, http.StatusUnauthorized, "Invalid token. User not found.", nil)
			} else {
				response.Error(c, http.StatusInternalServerError, "Authentication error.", nil)
			}
			c.Abort()
			return
		}

		setCurrentUser(c, user)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves a bearer token when one is present but
// never rejects the request: a missing, invalid or expired token degrades
// to the anonymous view.
func OptionalAuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		userID, err := auth.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			c.Next()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}

		setCurrentUser(c, user)
		c.Next()
	}
}

// RequireRole rejects authenticated users whose role does not match the
// endpoint's required role. Must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	message := "Access denied. " + strings.ToUpper(role[:1]) + role[1:] + " role required."
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserRole)) != role {
			response.Error(c, http.StatusForbidden, message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthMiddleware or
// OptionalAuthMiddleware, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *domain.User {
	value, exists := c.Get(string(domain.KeyCurrentUser))
	if !exists {
		return nil
	}
	user, _ := value.(*domain.User)
	return user
}

func setCurrentUser(c *gin.Context, user *domain.User) {
	c.Set(string(domain.KeyUserID), user.ID)
	c.Set(string(domain.KeyUserRole), user.Role)
	c.Set(string(domain.KeyCurrentUser), user)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
