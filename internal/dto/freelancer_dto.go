package dto

import (
	"github.com/shopspring/decimal"

	"github.com/skillforge/marketplace-backend/internal/models"
)

// FreelancerUpsertInput carries the parsed multipart profile form.
// ProfileImage and Resume are stored upload names; empty means the caller
// supplied no new file and any existing reference must be kept.
type FreelancerUpsertInput struct {
	Email        string
	Name         string
	Location     string
	Rate         decimal.Decimal
	About        string
	Skills       string
	Projects     int
	Rating       decimal.Decimal
	Github       string
	Linkedin     string
	ProfileImage string
	Resume       string
}

type FreelancerResponse struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Rate         string `json:"rate"`
	About        string `json:"about"`
	Skills       string `json:"skills"`
	Projects     int    `json:"projects"`
	Rating       string `json:"rating"`
	Github       string `json:"github"`
	Linkedin     string `json:"linkedin"`
	ProfileImage string `json:"profileImage"`
	Resume       string `json:"resume"`
}

func NewFreelancerResponse(f models.Freelancer) FreelancerResponse {
	return FreelancerResponse{
		ID:           f.ID,
		Email:        f.Email,
		Name:         f.Name,
		Location:     f.Location,
		Rate:         f.Rate.StringFixed(2),
		About:        f.About,
		Skills:       f.Skills,
		Projects:     f.Projects,
		Rating:       f.Rating.StringFixed(2),
		Github:       f.Github,
		Linkedin:     f.Linkedin,
		ProfileImage: f.ProfileImage,
		Resume:       f.Resume,
	}
}

func NewFreelancerResponses(freelancers []models.Freelancer) []FreelancerResponse {
	out := make([]FreelancerResponse, 0, len(freelancers))
	for _, f := range freelancers {
		out = append(out, NewFreelancerResponse(f))
	}
	return out
}
