package domain

import "time"

// RefreshToken is the server-side record of an issued refresh token.
// Only a bcrypt hash of the secret half is stored; the raw value the client
// holds is "<id>.<secret>" and exists in plaintext exactly once, in the
// login/refresh response. A row is usable only while unrevoked and unexpired;
// rotation revokes the old row and inserts a new one.
type RefreshToken struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TokenHash string    `json:"-" gorm:"not null"`
	Revoked   bool      `json:"revoked" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

// Live reports whether the token can still be exchanged.
func (t *RefreshToken) Live(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
