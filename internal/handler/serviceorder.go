package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/server"
	"github.com/abidbilal/deskservice/internal/service"
)

// ServiceOrderHandler serves the order workflow endpoints.
type ServiceOrderHandler struct {
	Handler
	orders *service.ServiceOrderService
}

// NewServiceOrderHandler constructs a ServiceOrderHandler.
func NewServiceOrderHandler(s *server.Server, orders *service.ServiceOrderService) *ServiceOrderHandler {
	return &ServiceOrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

// CreateOrderRequest is the payload for opening a service order. The order
// always starts Pending with no technician; there is no way to supply
// either here.
type CreateOrderRequest struct {
	CustomerID  int64      `json:"customer_id" validate:"required"`
	ServiceType string     `json:"service_type" validate:"required"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

func (r *CreateOrderRequest) Validate() error {
	return validate.Struct(r)
}

// Create opens a service order.
func (h *ServiceOrderHandler) Create(c echo.Context, req *CreateOrderRequest) (IDResponse, error) {
	id, err := h.orders.Create(c.Request().Context(), &entity.ServiceOrder{
		CustomerID:  req.CustomerID,
		ServiceType: entity.ServiceType(req.ServiceType),
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return IDResponse{}, err
	}

	return IDResponse{ID: id}, nil
}

// ListOrdersRequest carries the optional status filter and paging.
type ListOrdersRequest struct {
	Status string `query:"status"`
	Limit  int    `query:"limit" validate:"omitempty,gt=0"`
}

func (r *ListOrdersRequest) Validate() error {
	return validate.Struct(r)
}

// List returns service orders, newest first.
func (h *ServiceOrderHandler) List(c echo.Context, req *ListOrdersRequest) ([]entity.ServiceOrder, error) {
	return h.orders.List(c.Request().Context(), entity.OrderStatus(req.Status), req.Limit)
}

// AssignTechnicianRequest binds a technician to an order.
type AssignTechnicianRequest struct {
	ID           int64 `param:"id" validate:"required"`
	TechnicianID int64 `json:"technician_id" validate:"required"`
}

func (r *AssignTechnicianRequest) Validate() error {
	return validate.Struct(r)
}

// AssignTechnician puts a technician on an order. Pending orders advance to
// Assigned.
func (h *ServiceOrderHandler) AssignTechnician(c echo.Context, req *AssignTechnicianRequest) error {
	return h.orders.AssignTechnician(c.Request().Context(), req.ID, req.TechnicianID)
}

// UpdateOrderStatusRequest moves an order to a new status.
type UpdateOrderStatusRequest struct {
	ID     int64  `param:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

func (r *UpdateOrderStatusRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateStatus moves an order to the given status.
func (h *ServiceOrderHandler) UpdateStatus(c echo.Context, req *UpdateOrderStatusRequest) error {
	return h.orders.UpdateStatus(c.Request().Context(), req.ID, entity.OrderStatus(req.Status))
}

// DeleteOrderRequest identifies the order to remove.
type DeleteOrderRequest struct {
	ID int64 `param:"id" validate:"required"`
}

func (r *DeleteOrderRequest) Validate() error {
	return validate.Struct(r)
}

// Delete removes a service order.
func (h *ServiceOrderHandler) Delete(c echo.Context, req *DeleteOrderRequest) error {
	return h.orders.Delete(c.Request().Context(), req.ID)
}
