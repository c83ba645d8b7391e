package domain

import "time"

// Scheme is a government assistance scheme farmers can apply to.
type Scheme struct {
	ID                  string     `json:"id" gorm:"primaryKey"`
	Name                string     `json:"name" gorm:"uniqueIndex;not null"`
	EligibilityCriteria string     `json:"eligibility_criteria"`
	DocsNeeded          string     `json:"docs_needed"`
	Benefits            string     `json:"benefits"`
	Deadline            *time.Time `json:"deadline,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// ApplicationStatus values for a scheme application.
const (
	ApplicationStatusApplied = "applied"
)

// SchemeApplication links a farmer to a scheme they applied for.
type SchemeApplication struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	SchemeID  string    `json:"scheme_id" gorm:"index;not null"`
	Scheme    Scheme    `json:"scheme,omitempty" gorm:"foreignKey:SchemeID"`
	Status    string    `json:"status" gorm:"default:applied"`
	CreatedAt time.Time `json:"created_at"`
}
