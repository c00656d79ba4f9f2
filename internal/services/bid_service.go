package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/skillforge/marketplace-backend/internal/dto"
	"github.com/skillforge/marketplace-backend/internal/models"
)

type BidService struct {
	db *gorm.DB
}

func NewBidService(db *gorm.DB) *BidService {
	return &BidService{db: db}
}

// Submit inserts a new bid with the default pending status. The foreign key
// on project_id rejects bids against nonexistent projects; duplicate bids by
// the same freelancer on the same project are allowed.
func (s *BidService) Submit(projectID uint, freelancerEmail, resume string, days int, amount decimal.Decimal) (uint, error) {
	bid := models.Bid{
		ProjectID:       projectID,
		FreelancerEmail: freelancerEmail,
		Resume:          resume,
		DaysRequired:    days,
		BidAmount:       amount,
	}

	if err := s.db.Create(&bid).Error; err != nil {
		return 0, fmt.Errorf("failed to insert bid: %w", err)
	}
	return bid.ID, nil
}

const bidRowColumns = "bids.id, bids.project_id, bids.freelancer_email, bids.resume, bids.days_required, bids.bid_amount, bids.status, projects.title"

// ListForClient returns every bid on the client's projects, joined with the
// project title. Unordered; this is the client's bid inbox.
func (s *BidService) ListForClient(clientEmail string) ([]dto.BidRow, error) {
	var rows []dto.BidRow
	err := s.db.Model(&models.Bid{}).
		Select(bidRowColumns).
		Joins("JOIN projects ON projects.id = bids.project_id").
		Where("projects.client_email = ?", clientEmail).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return rows, nil
}

// ListRecentFirst returns all bids joined with their project title, newest
// bid first. This is the notification feed.
func (s *BidService) ListRecentFirst() ([]dto.BidRow, error) {
	var rows []dto.BidRow
	err := s.db.Model(&models.Bid{}).
		Select(bidRowColumns).
		Joins("JOIN projects ON projects.id = bids.project_id").
		Order("bids.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return rows, nil
}

// TransitionByFreelancer updates the status of every bid belonging to the
// freelancer email, across all projects, and returns the number of rows
// touched. The mass-update-by-email semantics are deliberate; if the product
// ever narrows this to a single bid id, this method is the only place that
// changes.
func (s *BidService) TransitionByFreelancer(email string, status models.BidStatus) (int64, error) {
	res := s.db.Model(&models.Bid{}).
		Where("freelancer_email = ?", email).
		Update("status", status)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update bid status: %w", res.Error)
	}
	return res.RowsAffected, nil
}
