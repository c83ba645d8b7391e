package repository

import (
	"errors"
	"time"

	authdomain "kisan-backend/internal/auth/domain"

	"gorm.io/gorm"
)

// RefreshTokenRepository defines the interface for the refresh-token store.
// Rows are looked up by id (the public half of the opaque token), never by
// raw value: the secret half only ever exists as a bcrypt hash at rest.
// Revoked and expired rows are kept, not purged; cleanup is a separately
// schedulable maintenance task.
type RefreshTokenRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) RefreshTokenRepository

	Create(token *authdomain.RefreshToken) error
	FindByID(id string) (*authdomain.RefreshToken, error)

	// Revoke marks a live token as revoked and reports whether this call
	// performed the transition. A false return means the row was already
	// revoked (or gone) by the time the update ran.
	Revoke(id string) (bool, error)
}

// refreshTokenRepository implements RefreshTokenRepository interface
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new instance of refreshTokenRepository
func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{
		db: db,
	}
}

func (r *refreshTokenRepository) WithTx(tx *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: tx}
}

func (r *refreshTokenRepository) Create(token *authdomain.RefreshToken) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	return r.db.Create(token).Error
}

func (r *refreshTokenRepository) FindByID(id string) (*authdomain.RefreshToken, error) {
	var token authdomain.RefreshToken
	err := r.db.Where("id = ?", id).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// Revoke is a compare-and-set on the revoked flag: of two concurrent
// presentations of the same token, only one observes the transition.
func (r *refreshTokenRepository) Revoke(id string) (bool, error) {
	res := r.db.Model(&authdomain.RefreshToken{}).
		Where("id = ? AND revoked = ?", id, false).
		Update("revoked", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
