package domain

import "time"

// CropDiagnosis is one classification request and its result.
type CropDiagnosis struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Crop        string    `json:"crop" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	PhotoPath   string    `json:"photo_path,omitempty"` // path to the uploaded image, if any
	Result      string    `json:"result"`
	CreatedAt   time.Time `json:"created_at"`
}
