package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	authdomain "kisan-backend/internal/auth/domain"
	authdto "kisan-backend/internal/auth/dto"
	"kisan-backend/internal/auth/repository"
	"kisan-backend/pkg/config"
	"kisan-backend/pkg/firebase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// refreshSecretBytes is the entropy of the secret half of a refresh token.
const refreshSecretBytes = 32

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	db          *gorm.DB
	verifier    TokenVerifier
	userRepo    repository.UserRepository
	refreshRepo repository.RefreshTokenRepository
	fcmRepo     repository.FCMTokenRepository
	config      *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(db *gorm.DB, verifier TokenVerifier, userRepo repository.UserRepository, refreshRepo repository.RefreshTokenRepository, fcmRepo repository.FCMTokenRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		db:          db,
		verifier:    verifier,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		fcmRepo:     fcmRepo,
		config:      cfg,
	}
}

func (u *authUsecase) Login(ctx context.Context, idToken string) (*authdto.LoginResponse, error) {
	identity, err := u.verifier.Verify(ctx, idToken)
	if err != nil {
		switch {
		case errors.Is(err, firebase.ErrMalformedToken):
			return nil, authdomain.ErrMalformedCredential
		case errors.Is(err, firebase.ErrNotInitialized):
			return nil, err
		default:
			return nil, authdomain.ErrInvalidCredential
		}
	}

	// User upsert and refresh-token insert commit or fail together, so a
	// client is never promised a token that was not persisted.
	var user *authdomain.User
	var rawRefresh string
	err = u.db.Transaction(func(tx *gorm.DB) error {
		user, err = u.userRepo.WithTx(tx).ResolveOrCreate(identity.SubjectID, identity.Phone)
		if err != nil {
			return err
		}

		row, raw, err := u.mintRefreshToken(user.ID)
		if err != nil {
			return err
		}
		if err := u.refreshRepo.WithTx(tx).Create(row); err != nil {
			return err
		}
		rawRefresh = raw
		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := u.mintAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.LoginResponse{
		AccessToken:     accessToken,
		RefreshToken:    rawRefresh,
		UserID:          user.ID,
		ProfileComplete: user.ProfileComplete(),
	}, nil
}

func (u *authUsecase) Refresh(ctx context.Context, rawRefreshToken string) (*authdto.LoginResponse, error) {
	stored, err := u.verifyRefreshToken(rawRefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	// Rotation on use: the old row is dead the moment the new one exists.
	// Revoke is the single-use gate -- if another presentation of the same
	// token already flipped the row, this rotation loses and issues nothing.
	var rawRefresh string
	err = u.db.Transaction(func(tx *gorm.DB) error {
		revoked, err := u.refreshRepo.WithTx(tx).Revoke(stored.ID)
		if err != nil {
			return err
		}
		if !revoked {
			return authdomain.ErrInvalidRefreshToken
		}

		row, raw, err := u.mintRefreshToken(user.ID)
		if err != nil {
			return err
		}
		if err := u.refreshRepo.WithTx(tx).Create(row); err != nil {
			return err
		}
		rawRefresh = raw
		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := u.mintAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.LoginResponse{
		AccessToken:     accessToken,
		RefreshToken:    rawRefresh,
		UserID:          user.ID,
		ProfileComplete: user.ProfileComplete(),
	}, nil
}

func (u *authUsecase) Logout(_ context.Context, rawRefreshToken string) error {
	stored, err := u.verifyRefreshToken(rawRefreshToken)
	if err != nil {
		return err
	}
	revoked, err := u.refreshRepo.Revoke(stored.ID)
	if err != nil {
		return err
	}
	if !revoked {
		return authdomain.ErrInvalidRefreshToken
	}
	return nil
}

// verifyRefreshToken proves possession of a live refresh token. The raw value
// is "<rowID>.<secret>"; the row id locates the record, the secret is checked
// against the stored bcrypt hash. Any failure collapses to one error.
func (u *authUsecase) verifyRefreshToken(raw string) (*authdomain.RefreshToken, error) {
	id, secret, ok := splitRefreshToken(raw)
	if !ok {
		return nil, authdomain.ErrInvalidRefreshToken
	}

	stored, err := u.refreshRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if stored == nil || !stored.Live(time.Now()) {
		return nil, authdomain.ErrInvalidRefreshToken
	}

	if bcrypt.CompareHashAndPassword([]byte(stored.TokenHash), []byte(secret)) != nil {
		return nil, authdomain.ErrInvalidRefreshToken
	}
	return stored, nil
}

func splitRefreshToken(raw string) (id, secret string, ok bool) {
	parts := strings.SplitN(raw, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// mintRefreshToken generates a fresh opaque refresh token. Only the bcrypt
// hash of the secret goes into the returned row; the raw value is handed to
// the client once and never stored.
func (u *authUsecase) mintRefreshToken(userID string) (*authdomain.RefreshToken, string, error) {
	secretBytes := make([]byte, refreshSecretBytes)
	if _, err := rand.Read(secretBytes); err != nil {
		return nil, "", err
	}
	secret := base64.RawURLEncoding.EncodeToString(secretBytes)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	row := &authdomain.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		TokenHash: string(hash),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(u.config.JWTRefreshExpiry),
	}
	return row, row.ID + "." + secret, nil
}

func (u *authUsecase) mintAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(u.config.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateAccessToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, authdomain.ErrUnauthenticated
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, authdomain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, authdomain.ErrUnauthenticated
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, authdomain.ErrUnauthenticated
	}

	// Only the subject claim is trusted; everything else is re-read from
	// the user row.
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) GetProfile(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) UpdateProfile(userID string, update *authdomain.ProfileUpdate) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	user.Apply(update)
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) RegisterFCMToken(userID, token, deviceInfo string) error {
	return u.fcmRepo.SaveToken(userID, token, deviceInfo)
}

func (u *authUsecase) UnregisterFCMToken(token string) error {
	return u.fcmRepo.DeleteToken(token)
}
