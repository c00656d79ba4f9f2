package dto

import "github.com/shopspring/decimal"

// BidRow is the scan target for the bids/projects join.
type BidRow struct {
	ID              uint            `json:"id"`
	ProjectID       uint            `json:"project_id"`
	FreelancerEmail string          `json:"freelancer_email"`
	Resume          string          `json:"resume"`
	DaysRequired    int             `json:"days_required"`
	BidAmount       decimal.Decimal `json:"bid_amount"`
	Status          string          `json:"status"`
	Title           string          `json:"title"`
}

type BidResponse struct {
	ID              uint   `json:"id"`
	ProjectID       uint   `json:"project_id"`
	FreelancerEmail string `json:"freelancer_email"`
	Resume          string `json:"resume"`
	DaysRequired    int    `json:"days_required"`
	BidAmount       string `json:"bid_amount"`
	Status          string `json:"status"`
	Title           string `json:"title"`
}

func NewBidResponses(rows []BidRow) []BidResponse {
	out := make([]BidResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, BidResponse{
			ID:              r.ID,
			ProjectID:       r.ProjectID,
			FreelancerEmail: r.FreelancerEmail,
			Resume:          r.Resume,
			DaysRequired:    r.DaysRequired,
			BidAmount:       r.BidAmount.StringFixed(2),
			Status:          r.Status,
			Title:           r.Title,
		})
	}
	return out
}

// ApplyErrorResponse mirrors the detailed error body the apply route returns
// on store failures.
type ApplyErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}
