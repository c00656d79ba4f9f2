package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Freelancer is the public profile, one row per email, always upserted as a
// unit. ProfileImage and Resume hold stored upload names; existing values are
// kept when an upsert supplies no replacement file.
type Freelancer struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Email        string          `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name         string          `gorm:"size:255" json:"name"`
	Location     string          `gorm:"size:255" json:"location"`
	Rate         decimal.Decimal `gorm:"type:numeric(10,2)" json:"rate"`
	About        string          `gorm:"type:text" json:"about"`
	Skills       string          `gorm:"size:255" json:"skills"`
	Projects     int             `json:"projects"`
	Rating       decimal.Decimal `gorm:"type:numeric(3,2)" json:"rating"`
	Github       string          `gorm:"size:255" json:"github"`
	Linkedin     string          `gorm:"size:255" json:"linkedin"`
	ProfileImage string          `gorm:"size:255" json:"profileImage"`
	Resume       string          `gorm:"size:255" json:"resume"`
	CreatedAt    time.Time       `json:"created_at"`
}
