package delivery

import (
	"errors"
	"log"
	"net/http"
	"strings"

	authdomain "kisan-backend/internal/auth/domain"
	"kisan-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the access guard: it validates the bearer token on every
// protected request and resolves it to a user record before the handler runs.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authdomain.ErrMalformedCredential.Error()})
			c.Abort()
			return
		}

		user, err := authUsecase.ValidateAccessToken(token)
		if err != nil {
			switch {
			case errors.Is(err, authdomain.ErrUnauthenticated),
				errors.Is(err, authdomain.ErrUserNotFound):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			default:
				// A storage failure is not an auth failure.
				log.Printf("[Auth] Token validation failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// CurrentUser returns the user the access guard resolved for this request.
func CurrentUser(c *gin.Context) *authdomain.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*authdomain.User); ok {
			return user
		}
	}
	return nil
}
