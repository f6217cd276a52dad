// Package service holds the business rules of the desk service. Services
// validate and normalize input before it reaches a repository; repositories
// never see untrimmed or out-of-enumeration values.
package service

import (
	"github.com/abidbilal/deskservice/internal/repository"
	"github.com/abidbilal/deskservice/internal/server"
)

// Services bundles every service for injection into handlers.
type Services struct {
	Customers   *CustomerService
	Technicians *TechnicianService
	Orders      *ServiceOrderService
	Auth        *AuthService
}

// NewServices wires services to their repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Customers:   NewCustomerService(repos.Customers),
		Technicians: NewTechnicianService(repos.Technicians),
		Orders:      NewServiceOrderService(repos.Orders),
		Auth:        NewAuthService(repos.Users, s.Config.Auth),
	}
}
