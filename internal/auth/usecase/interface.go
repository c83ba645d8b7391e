package usecase

import (
	"context"

	authdomain "kisan-backend/internal/auth/domain"
	authdto "kisan-backend/internal/auth/dto"
	"kisan-backend/pkg/firebase"
)

// TokenVerifier validates an identity assertion from the external provider.
// Satisfied by *firebase.Verifier; tests substitute a fake.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*firebase.IdentityToken, error)
}

// AuthUsecase defines the authentication and session-issuance operations
type AuthUsecase interface {
	// Login exchanges a Firebase ID token for an access/refresh pair,
	// creating the user on first sight of the subject id.
	Login(ctx context.Context, idToken string) (*authdto.LoginResponse, error)

	// Refresh rotates the presented refresh token: the old row is revoked
	// and a fresh pair is issued. A revoked or expired token fails.
	Refresh(ctx context.Context, rawRefreshToken string) (*authdto.LoginResponse, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, rawRefreshToken string) error

	// ValidateAccessToken checks signature and expiry and resolves the
	// subject claim to a user row. Nothing else in the token is trusted.
	ValidateAccessToken(tokenString string) (*authdomain.User, error)

	GetProfile(userID string) (*authdomain.User, error)
	UpdateProfile(userID string, update *authdomain.ProfileUpdate) (*authdomain.User, error)

	RegisterFCMToken(userID, token, deviceInfo string) error
	UnregisterFCMToken(token string) error
}
