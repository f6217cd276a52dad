package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/server"
	"github.com/abidbilal/deskservice/internal/service"
)

// validate is the shared validator instance for request payloads.
var validate = validator.New()

// IDResponse carries the identifier of a freshly created record.
type IDResponse struct {
	ID int64 `json:"id"`
}

// CustomerHandler serves the customer registry endpoints.
type CustomerHandler struct {
	Handler
	customers *service.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(s *server.Server, customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler:   NewHandler(s),
		customers: customers,
	}
}

// CreateCustomerRequest is the payload for registering a customer.
type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Phone   string  `json:"phone" validate:"required,max=50"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

func (r *CreateCustomerRequest) Validate() error {
	return validate.Struct(r)
}

// Create registers a customer.
func (h *CustomerHandler) Create(c echo.Context, req *CreateCustomerRequest) (IDResponse, error) {
	id, err := h.customers.Create(c.Request().Context(), &entity.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return IDResponse{}, err
	}

	return IDResponse{ID: id}, nil
}

// ListCustomersRequest carries the optional search and paging parameters.
type ListCustomersRequest struct {
	Search string `query:"search"`
	Limit  int    `query:"limit" validate:"omitempty,gt=0"`
}

func (r *ListCustomersRequest) Validate() error {
	return validate.Struct(r)
}

// List returns customers, newest first, optionally filtered by a search
// term matched against name, phone and email.
func (h *CustomerHandler) List(c echo.Context, req *ListCustomersRequest) ([]entity.Customer, error) {
	return h.customers.List(c.Request().Context(), req.Search, req.Limit)
}

// UpdateCustomerRequest is the payload for overwriting a customer's
// contact fields.
type UpdateCustomerRequest struct {
	ID      int64   `param:"id" validate:"required"`
	Name    string  `json:"name" validate:"required,max=200"`
	Phone   string  `json:"phone" validate:"required,max=50"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

func (r *UpdateCustomerRequest) Validate() error {
	return validate.Struct(r)
}

// Update overwrites a customer's contact fields.
func (h *CustomerHandler) Update(c echo.Context, req *UpdateCustomerRequest) error {
	return h.customers.Update(c.Request().Context(), &entity.Customer{
		ID:      req.ID,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
}

// DeleteCustomerRequest identifies the customer to remove.
type DeleteCustomerRequest struct {
	ID int64 `param:"id" validate:"required"`
}

func (r *DeleteCustomerRequest) Validate() error {
	return validate.Struct(r)
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(c echo.Context, req *DeleteCustomerRequest) error {
	return h.customers.Delete(c.Request().Context(), req.ID)
}
