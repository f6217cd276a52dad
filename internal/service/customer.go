package service

import (
	"context"
	"strings"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/errs"
	"github.com/abidbilal/deskservice/internal/repository"
)

// CustomerStore is the persistence surface CustomerService needs.
type CustomerStore interface {
	Create(ctx context.Context, customer *entity.Customer) (int64, error)
	List(ctx context.Context, search string, limit int) ([]entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, customerID int64) error
}

// CustomerService manages the customer registry.
type CustomerService struct {
	store CustomerStore
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(store CustomerStore) *CustomerService {
	return &CustomerService{store: store}
}

// Create registers a customer and returns its identifier. Name and phone are
// required; email and address collapse to absent when blank.
func (s *CustomerService) Create(ctx context.Context, customer *entity.Customer) (int64, error) {
	normalizeCustomer(customer)

	if fieldErrors := requiredCustomerFields(customer); len(fieldErrors) > 0 {
		return 0, errs.NewValidationError("Customer name and phone are required", fieldErrors)
	}

	return s.store.Create(ctx, customer)
}

// List returns customers newest-first. A non-blank search matches name,
// phone or email, case-insensitively. Non-positive limits fall back to the
// default page size.
func (s *CustomerService) List(ctx context.Context, search string, limit int) ([]entity.Customer, error) {
	if limit <= 0 {
		limit = repository.DefaultLimit
	}

	return s.store.List(ctx, strings.TrimSpace(search), limit)
}

// Update overwrites a customer's contact fields. The identifier is required;
// an unknown identifier changes nothing and reports no error.
func (s *CustomerService) Update(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == 0 {
		return errs.NewValidationError("Customer identifier is required", []errs.FieldError{
			{Field: "id", Error: "is required"},
		})
	}

	normalizeCustomer(customer)

	if fieldErrors := requiredCustomerFields(customer); len(fieldErrors) > 0 {
		return errs.NewValidationError("Customer name and phone are required", fieldErrors)
	}

	return s.store.Update(ctx, customer)
}

// Delete removes a customer. An unknown identifier is a no-op.
func (s *CustomerService) Delete(ctx context.Context, customerID int64) error {
	if customerID == 0 {
		return errs.NewValidationError("Customer identifier is required", []errs.FieldError{
			{Field: "id", Error: "is required"},
		})
	}

	return s.store.Delete(ctx, customerID)
}

func normalizeCustomer(customer *entity.Customer) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	customer.Email = trimOptional(customer.Email)
	customer.Address = trimOptional(customer.Address)
}

func requiredCustomerFields(customer *entity.Customer) []errs.FieldError {
	var fieldErrors []errs.FieldError
	if customer.Name == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "name", Error: "is required"})
	}
	if customer.Phone == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "phone", Error: "is required"})
	}
	return fieldErrors
}

// trimOptional trims an optional string and collapses blanks to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
