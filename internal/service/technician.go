package service

import (
	"context"
	"strings"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/errs"
	"github.com/abidbilal/deskservice/internal/repository"
)

// TechnicianStore is the persistence surface TechnicianService needs.
type TechnicianStore interface {
	Create(ctx context.Context, tech *entity.Technician) (int64, error)
	List(ctx context.Context, activeOnly bool, limit int) ([]entity.Technician, error)
	SetActive(ctx context.Context, technicianID int64, active bool) error
}

// TechnicianService manages the technician roster.
type TechnicianService struct {
	store TechnicianStore
}

// NewTechnicianService creates a TechnicianService.
func NewTechnicianService(store TechnicianStore) *TechnicianService {
	return &TechnicianService{store: store}
}

// Create registers a technician and returns its identifier. Name, phone
// and skill level are required; new technicians always start active.
func (s *TechnicianService) Create(ctx context.Context, tech *entity.Technician) (int64, error) {
	tech.Name = strings.TrimSpace(tech.Name)
	tech.Phone = strings.TrimSpace(tech.Phone)
	tech.SkillLevel = strings.TrimSpace(tech.SkillLevel)
	tech.Active = true

	var fieldErrors []errs.FieldError
	if tech.Name == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "name", Error: "is required"})
	}
	if tech.Phone == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "phone", Error: "is required"})
	}
	if tech.SkillLevel == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "skill_level", Error: "is required"})
	}
	if len(fieldErrors) > 0 {
		return 0, errs.NewValidationError("Technician name, phone and skill level are required", fieldErrors)
	}

	return s.store.Create(ctx, tech)
}

// List returns technicians newest-first, optionally restricted to the
// active ones. Non-positive limits fall back to the default page size.
func (s *TechnicianService) List(ctx context.Context, activeOnly bool, limit int) ([]entity.Technician, error) {
	if limit <= 0 {
		limit = repository.DefaultLimit
	}

	return s.store.List(ctx, activeOnly, limit)
}

// SetActive activates or deactivates a technician. An unknown identifier is
// a no-op.
func (s *TechnicianService) SetActive(ctx context.Context, technicianID int64, active bool) error {
	if technicianID == 0 {
		return errs.NewValidationError("Technician identifier is required", []errs.FieldError{
			{Field: "id", Error: "is required"},
		})
	}

	return s.store.SetActive(ctx, technicianID, active)
}
