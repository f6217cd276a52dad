package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/errs"
	"github.com/abidbilal/deskservice/internal/repository"
)

// ServiceOrderStore is the persistence surface ServiceOrderService needs.
type ServiceOrderStore interface {
	Create(ctx context.Context, order *entity.ServiceOrder) (int64, error)
	List(ctx context.Context, status entity.OrderStatus, limit int) ([]entity.ServiceOrder, error)
	AssignTechnician(ctx context.Context, orderID, technicianID int64) error
	UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error
	Delete(ctx context.Context, orderID int64) error
}

// ServiceOrderService manages the order workflow.
type ServiceOrderService struct {
	store ServiceOrderStore
}

// NewServiceOrderService creates a ServiceOrderService.
func NewServiceOrderService(store ServiceOrderStore) *ServiceOrderService {
	return &ServiceOrderService{store: store}
}

// Create opens a service order and returns its identifier. The order starts
// in Pending with no technician regardless of what the caller supplied; the
// service type must be one of the known kinds.
func (s *ServiceOrderService) Create(ctx context.Context, order *entity.ServiceOrder) (int64, error) {
	order.Description = trimOptional(order.Description)
	order.Status = entity.StatusPending
	order.TechnicianID = nil

	var fieldErrors []errs.FieldError
	if order.CustomerID == 0 {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "customer_id", Error: "is required"})
	}
	if !order.ServiceType.Valid() {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: "service_type",
			Error: fmt.Sprintf("must be one of: %s", strings.Join(entity.ServiceTypeNames(), ", ")),
		})
	}
	if len(fieldErrors) > 0 {
		return 0, errs.NewValidationError("Service order is invalid", fieldErrors)
	}

	return s.store.Create(ctx, order)
}

// List returns service orders newest-first, optionally restricted to a
// single status. Non-positive limits fall back to the default page size.
func (s *ServiceOrderService) List(ctx context.Context, status entity.OrderStatus, limit int) ([]entity.ServiceOrder, error) {
	if status != "" && !status.Valid() {
		return nil, errs.NewValidationError("Unknown order status", []errs.FieldError{
			{
				Field: "status",
				Error: fmt.Sprintf("must be one of: %s", strings.Join(entity.OrderStatusNames(), ", ")),
			},
		})
	}

	if limit <= 0 {
		limit = repository.DefaultLimit
	}

	return s.store.List(ctx, status, limit)
}

// AssignTechnician puts a technician on an order. A Pending order advances
// to Assigned; any other status keeps its place in the workflow. Unknown
// identifiers change nothing and report no error.
func (s *ServiceOrderService) AssignTechnician(ctx context.Context, orderID, technicianID int64) error {
	var fieldErrors []errs.FieldError
	if orderID == 0 {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "id", Error: "is required"})
	}
	if technicianID == 0 {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "technician_id", Error: "is required"})
	}
	if len(fieldErrors) > 0 {
		return errs.NewValidationError("Order and technician identifiers are required", fieldErrors)
	}

	return s.store.AssignTechnician(ctx, orderID, technicianID)
}

// UpdateStatus moves an order to the given status. Any known status is
// accepted from any other; the workflow trusts the front desk.
func (s *ServiceOrderService) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error {
	if orderID == 0 {
		return errs.NewValidationError("Order identifier is required", []errs.FieldError{
			{Field: "id", Error: "is required"},
		})
	}
	if !status.Valid() {
		return errs.NewValidationError("Unknown order status", []errs.FieldError{
			{
				Field: "status",
				Error: fmt.Sprintf("must be one of: %s", strings.Join(entity.OrderStatusNames(), ", ")),
			},
		})
	}

	return s.store.UpdateStatus(ctx, orderID, status)
}

// Delete removes an order. An unknown identifier is a no-op.
func (s *ServiceOrderService) Delete(ctx context.Context, orderID int64) error {
	if orderID == 0 {
		return errs.NewValidationError("Order identifier is required", []errs.FieldError{
			{Field: "id", Error: "is required"},
		})
	}

	return s.store.Delete(ctx, orderID)
}
