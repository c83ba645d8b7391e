package delivery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "kisan-backend/internal/auth/domain"
	"kisan-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	usecase.AuthUsecase
	validTokens map[string]*authdomain.User
}

func (s *stubAuthUsecase) ValidateAccessToken(tokenString string) (*authdomain.User, error) {
	if user, ok := s.validTokens[tokenString]; ok {
		return user, nil
	}
	switch tokenString {
	case "valid-but-deleted":
		return nil, authdomain.ErrUserNotFound
	case "storage-down":
		return nil, errors.New("dial tcp 127.0.0.1:5432: connection refused")
	}
	return nil, authdomain.ErrUnauthenticated
}

func newGuardedRouter(t *testing.T) (*gin.Engine, *stubAuthUsecase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stub := &stubAuthUsecase{validTokens: map[string]*authdomain.User{
		"good-token": {ID: "user-1", Name: "Ravi"},
	}}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(stub), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	return r, stub
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := doRequest(r, "Bearer good-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	r, _ := newGuardedRouter(t)

	for _, header := range []string{"", "Bearer", "Basic good-token", "Bearer "} {
		w := doRequest(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header=%q", header)
		assert.Contains(t, w.Body.String(), authdomain.ErrMalformedCredential.Error())
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := doRequest(r, "Bearer expired-or-forged")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), authdomain.ErrUnauthenticated.Error())
}

func TestAuthMiddlewareDistinguishesDeletedUser(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := doRequest(r, "Bearer valid-but-deleted")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), authdomain.ErrUserNotFound.Error())
}

func TestAuthMiddlewareDoesNotMaskStorageFailureAs401(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := doRequest(r, "Bearer storage-down")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestBearerTokenExtraction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc123")

	token, ok := bearerToken(c)
	require.True(t, ok)
	assert.Equal(t, "abc123", token)
}
