package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a client-posted listing. Immutable after creation; deleting a
// project cascades to its bids.
type Project struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Skills      string          `gorm:"size:255;not null" json:"skills"`
	Budget      decimal.Decimal `gorm:"type:numeric(10,2)" json:"budget"`
	ClientEmail string          `gorm:"size:255;not null;index" json:"client_email"`
	CreatedAt   time.Time       `json:"created_at"`
}
