package domain

import "time"

// Notification is an in-app message for a farmer: a diagnosis result,
// a scheme update or a market alert.
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
