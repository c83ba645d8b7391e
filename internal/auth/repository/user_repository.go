package repository

import (
	"errors"
	"time"

	authdomain "kisan-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user directory operations
type UserRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) UserRepository

	// ResolveOrCreate looks up a user by Firebase subject id, creating a
	// bare record on first sight. The insert carries ON CONFLICT DO
	// NOTHING, so losing a concurrent-insert race is handled by fetching
	// the winner's row, never by surfacing the conflict -- and never by
	// aborting a surrounding transaction.
	ResolveOrCreate(firebaseUID, phone string) (*authdomain.User, error)

	FindByID(id string) (*authdomain.User, error)
	FindByFirebaseUID(firebaseUID string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) ResolveOrCreate(firebaseUID, phone string) (*authdomain.User, error) {
	user := &authdomain.User{
		ID:          uuid.New().String(),
		FirebaseUID: &firebaseUID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if phone != "" {
		user.Phone = &phone
	}

	// A suppressed conflict keeps the surrounding transaction usable, which
	// a raised duplicate-key error would not under postgres.
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(user)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Another request created this subject first; use its row.
		existing, err := r.FindByFirebaseUID(firebaseUID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, gorm.ErrRecordNotFound
		}
		return existing, nil
	}
	return user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByFirebaseUID(firebaseUID string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("firebase_uid = ?", firebaseUID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}
