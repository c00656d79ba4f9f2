package dto

import (
	"github.com/shopspring/decimal"

	"github.com/skillforge/marketplace-backend/internal/models"
)

type PostProjectRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Skills      string          `json:"skills"`
	Budget      decimal.Decimal `json:"budget"`
	ClientEmail string          `json:"client_email"`
}

// ProjectResponse renders budget with a fixed two-decimal scale regardless of
// how the driver returns NUMERIC values.
type ProjectResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
	Budget      string `json:"budget"`
	ClientEmail string `json:"client_email"`
}

func NewProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Skills:      p.Skills,
		Budget:      p.Budget.StringFixed(2),
		ClientEmail: p.ClientEmail,
	}
}

func NewProjectResponses(projects []models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}
