package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/skillforge/marketplace-backend/internal/dto"
	"github.com/skillforge/marketplace-backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type FreelancerService struct {
	db *gorm.DB
}

func NewFreelancerService(db *gorm.DB) *FreelancerService {
	return &FreelancerService{db: db}
}

// Upsert creates or fully replaces the profile keyed by email. Stored upload
// references survive an update that brings no replacement file. Returns true
// when a new row was created.
func (s *FreelancerService) Upsert(in *dto.FreelancerUpsertInput) (bool, error) {
	var existing models.Freelancer
	err := s.db.Where("email = ?", in.Email).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		f := models.Freelancer{
			Email:        in.Email,
			Name:         in.Name,
			Location:     in.Location,
			Rate:         in.Rate,
			About:        in.About,
			Skills:       in.Skills,
			Projects:     in.Projects,
			Rating:       in.Rating,
			Github:       in.Github,
			Linkedin:     in.Linkedin,
			ProfileImage: in.ProfileImage,
			Resume:       in.Resume,
		}
		if err := s.db.Create(&f).Error; err != nil {
			return false, fmt.Errorf("failed to create profile: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up profile: %w", err)
	}

	updates := map[string]interface{}{
		"name":     in.Name,
		"location": in.Location,
		"rate":     in.Rate,
		"about":    in.About,
		"skills":   in.Skills,
		"projects": in.Projects,
		"rating":   in.Rating,
		"github":   in.Github,
		"linkedin": in.Linkedin,
	}
	if in.ProfileImage != "" {
		updates["profile_image"] = in.ProfileImage
	}
	if in.Resume != "" {
		updates["resume"] = in.Resume
	}

	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return false, fmt.Errorf("failed to update profile: %w", err)
	}
	return false, nil
}

func (s *FreelancerService) GetByEmail(email string) (*models.Freelancer, error) {
	var f models.Freelancer
	if err := s.db.Where("email = ?", email).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &f, nil
}

func (s *FreelancerService) ListAll() ([]models.Freelancer, error) {
	var freelancers []models.Freelancer
	if err := s.db.Find(&freelancers).Error; err != nil {
		return nil, fmt.Errorf("failed to list freelancers: %w", err)
	}
	return freelancers, nil
}
