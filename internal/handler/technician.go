package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/server"
	"github.com/abidbilal/deskservice/internal/service"
)

// TechnicianHandler serves the technician roster endpoints.
type TechnicianHandler struct {
	Handler
	technicians *service.TechnicianService
}

// NewTechnicianHandler constructs a TechnicianHandler.
func NewTechnicianHandler(s *server.Server, technicians *service.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{
		Handler:     NewHandler(s),
		technicians: technicians,
	}
}

// CreateTechnicianRequest is the payload for registering a technician.
type CreateTechnicianRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Phone      string `json:"phone" validate:"required,max=50"`
	SkillLevel string `json:"skill_level" validate:"required,max=50"`
}

func (r *CreateTechnicianRequest) Validate() error {
	return validate.Struct(r)
}

// Create registers a technician. New technicians start active.
func (h *TechnicianHandler) Create(c echo.Context, req *CreateTechnicianRequest) (IDResponse, error) {
	id, err := h.technicians.Create(c.Request().Context(), &entity.Technician{
		Name:       req.Name,
		Phone:      req.Phone,
		SkillLevel: req.SkillLevel,
	})
	if err != nil {
		return IDResponse{}, err
	}

	return IDResponse{ID: id}, nil
}

// ListTechniciansRequest carries the optional filters.
type ListTechniciansRequest struct {
	ActiveOnly bool `query:"active_only"`
	Limit      int  `query:"limit" validate:"omitempty,gt=0"`
}

func (r *ListTechniciansRequest) Validate() error {
	return validate.Struct(r)
}

// List returns technicians, newest first.
func (h *TechnicianHandler) List(c echo.Context, req *ListTechniciansRequest) ([]entity.Technician, error) {
	return h.technicians.List(c.Request().Context(), req.ActiveOnly, req.Limit)
}

// SetTechnicianActiveRequest flips a technician's active flag.
type SetTechnicianActiveRequest struct {
	ID     int64 `param:"id" validate:"required"`
	Active *bool `json:"active" validate:"required"`
}

func (r *SetTechnicianActiveRequest) Validate() error {
	return validate.Struct(r)
}

// SetActive activates or deactivates a technician.
func (h *TechnicianHandler) SetActive(c echo.Context, req *SetTechnicianActiveRequest) error {
	return h.technicians.SetActive(c.Request().Context(), req.ID, *req.Active)
}
