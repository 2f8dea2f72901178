package models

import (
	"fmt"
	"time"

	"collab-finder/utils"
)

type User struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Profile struct {
	UserID               int       `gorm:"primaryKey" json:"user_id"`
	PhotoFilename        string    `json:"photo_filename"`
	Title                string    `json:"title"`
	FullName             string    `json:"full_name"`
	HighestQualification string    `json:"highest_qualification"`
	Country              string    `json:"country"`
	University           string    `json:"university"`
	SchoolFaculty        string    `json:"school_faculty"`
	Position             string    `json:"position"`
	SupervisorName       string    `json:"supervisor_name"`
	Bio                  string    `json:"bio"`
	Skills               string    `json:"skills"`
	DeviceAccess         string    `json:"device_access"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// IsComplete reports whether every required field survives whitespace
// normalization. Device access is always optional.
func (p *Profile) IsComplete() bool {
	required := []string{
		p.FullName,
		p.HighestQualification,
		p.Country,
		p.University,
		p.Position,
		p.Bio,
		p.Skills,
	}
	for _, field := range required {
		if utils.NormalizeText(field) == "" {
			return false
		}
	}
	return true
}

// DisplayName falls back to a numbered label for profiles that never set a
// name, so inbox and thread headings always have something to show.
func (p *Profile) DisplayName() string {
	if utils.NormalizeText(p.FullName) != "" {
		return p.FullName
	}
	return fmt.Sprintf("User %d", p.UserID)
}
