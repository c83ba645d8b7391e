package domain

import "time"

// HelpHistory is one voice-agent query and the answer it produced.
type HelpHistory struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Query     string    `json:"query"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"timestamp"`
}
