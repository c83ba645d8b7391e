package domain

import "time"

// User is a farmer account. FirebaseUID and Phone are nullable until first
// login but unique once set; profile fields are filled in after onboarding.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	FirebaseUID *string   `json:"firebase_uid,omitempty" gorm:"uniqueIndex"`
	Phone       *string   `json:"phone,omitempty" gorm:"uniqueIndex"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	District    string    `json:"district"`
	Village     string    `json:"village"`
	LandSize    float64   `json:"land_size"`
	Crops       string    `json:"crops"` // comma-separated crop list
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileComplete reports whether onboarding finished: both a name and a
// state must be set. Returned to the client on login so the app knows
// whether to show the onboarding screen.
func (u *User) ProfileComplete() bool {
	return u.Name != "" && u.State != ""
}

// ProfileUpdate is a partial profile update: only non-nil fields are applied.
// Identity fields (id, firebase uid) are deliberately not part of it.
type ProfileUpdate struct {
	Name     *string  `json:"name"`
	State    *string  `json:"state"`
	District *string  `json:"district"`
	Village  *string  `json:"village"`
	LandSize *float64 `json:"land_size"`
	Crops    *string  `json:"crops"`
	Language *string  `json:"language"`
}

// Apply overwrites each attribute that is present in the update and leaves
// absent fields untouched.
func (u *User) Apply(update *ProfileUpdate) {
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.State != nil {
		u.State = *update.State
	}
	if update.District != nil {
		u.District = *update.District
	}
	if update.Village != nil {
		u.Village = *update.Village
	}
	if update.LandSize != nil {
		u.LandSize = *update.LandSize
	}
	if update.Crops != nil {
		u.Crops = *update.Crops
	}
	if update.Language != nil {
		u.Language = *update.Language
	}
}
