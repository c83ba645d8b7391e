package domain

import "time"

// MarketPrice is the latest quoted price for a crop at one mandi (market yard).
type MarketPrice struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Crop      string    `json:"crop" gorm:"index;not null;uniqueIndex:idx_crop_mandi"`
	Mandi     string    `json:"mandi" gorm:"not null;uniqueIndex:idx_crop_mandi"`
	Price     float64   `json:"price"`
	Trend     string    `json:"trend"` // "up", "down" or "stable"
	UpdatedAt time.Time `json:"updated_at"`
}
