package handler

import (
	"github.com/abidbilal/deskservice/internal/server"
	"github.com/abidbilal/deskservice/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Customers   *CustomerHandler
	Technicians *TechnicianHandler
	Orders      *ServiceOrderHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		Auth:        NewAuthHandler(s, services.Auth),
		Customers:   NewCustomerHandler(s, services.Customers),
		Technicians: NewTechnicianHandler(s, services.Technicians),
		Orders:      NewServiceOrderHandler(s, services.Orders),
	}
}
