package delivery

import (
	"errors"
	"net/http"

	authdomain "kisan-backend/internal/auth/domain"
	authdto "kisan-backend/internal/auth/dto"
	"kisan-backend/internal/auth/usecase"
	"kisan-backend/pkg/firebase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, token refresh, logout and profile endpoints
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login exchanges a Firebase ID token (Authorization: Bearer <token>)
// for an access/refresh token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	idToken, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": authdomain.ErrMalformedCredential.Error()})
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), idToken)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh rotates a refresh token and returns a fresh pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req authdto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_token is required"})
		return
	}

	resp, err := h.authUsecase.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented refresh token.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_token is required"})
		return
	}

	if err := h.authUsecase.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated farmer's record.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}

// GetProfile returns the farmer's profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authUsecase.GetProfile(c.GetString("userID"))
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial profile update: only the fields present
// in the request body are changed.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var update authdomain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.authUsecase.UpdateProfile(c.GetString("userID"), &update)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// RegisterFCMToken registers a device token for push alerts.
func (h *AuthHandler) RegisterFCMToken(c *gin.Context) {
	var req authdto.RegisterFCMTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.authUsecase.RegisterFCMToken(c.GetString("userID"), req.Token, req.DeviceInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token registered"})
}

// UnregisterFCMToken removes a device token.
func (h *AuthHandler) UnregisterFCMToken(c *gin.Context) {
	if err := h.authUsecase.UnregisterFCMToken(c.Param("token")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unregister token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token unregistered"})
}

// writeAuthError maps the authentication error taxonomy onto HTTP statuses.
// Every auth failure is a 401 with a short reason code; anything else is a
// 500 with no internal detail.
func (h *AuthHandler) writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authdomain.ErrMalformedCredential),
		errors.Is(err, authdomain.ErrInvalidCredential),
		errors.Is(err, authdomain.ErrInvalidRefreshToken),
		errors.Is(err, authdomain.ErrUnauthenticated),
		errors.Is(err, authdomain.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, firebase.ErrNotInitialized):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity provider not configured"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
