package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidAccepted BidStatus = "accepted"
	BidRejected BidStatus = "rejected"
)

// Bid is a freelancer's proposal against a project. Status is the only field
// that ever changes after insert.
type Bid struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ProjectID       uint            `gorm:"not null;index" json:"project_id"`
	Project         Project         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FreelancerEmail string          `gorm:"size:255;not null;index" json:"freelancer_email"`
	Resume          string          `gorm:"size:255;not null" json:"resume"`
	DaysRequired    int             `json:"days_required"`
	BidAmount       decimal.Decimal `gorm:"type:numeric(10,2)" json:"bid_amount"`
	Status          BidStatus       `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}
