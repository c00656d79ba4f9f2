package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/skillforge/marketplace-backend/internal/dto"
	"github.com/skillforge/marketplace-backend/internal/models"
)

var ErrMissingFields = errors.New("missing required fields")

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) Create(req *dto.PostProjectRequest) error {
	if req.Title == "" || req.Description == "" || req.Skills == "" ||
		req.Budget.IsZero() || req.ClientEmail == "" {
		return ErrMissingFields
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Budget:      req.Budget,
		ClientEmail: req.ClientEmail,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (s *ProjectService) ListAll() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) ListByClient(email string) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("client_email = ?", email).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list client projects: %w", err)
	}
	return projects, nil
}
