package repository

import (
	"context"
	"fmt"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/errs"
)

// CustomerRepository persists customers.
type CustomerRepository struct {
	db DB
}

// NewCustomerRepository creates a CustomerRepository.
func NewCustomerRepository(db DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a customer and returns the identifier the database
// assigned. Insert and identity retrieval are a single statement.
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) (int64, error) {
	query := `
		INSERT INTO customers (name, phone, email, address)
		VALUES ($1, $2, $3, $4)
		RETURNING customer_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating customer: %w", err)
	}

	return id, nil
}

// List returns customers newest-first, capped at limit. A non-empty search
// matches name, phone, or email as a case-insensitive substring. The
// result is fully materialized before returning.
func (r *CustomerRepository) List(ctx context.Context, search string, limit int) ([]entity.Customer, error) {
	var (
		query string
		args  []any
	)

	if search != "" {
		query = `
			SELECT customer_id, name, phone, email, address, created_at
			FROM customers
			WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1
			ORDER BY customer_id DESC
			LIMIT $2
		`
		args = []any{"%" + search + "%", limit}
	} else {
		query = `
			SELECT customer_id, name, phone, email, address, created_at
			FROM customers
			ORDER BY customer_id DESC
			LIMIT $1
		`
		args = []any{limit}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	customers := make([]entity.Customer, 0)
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading customers: %w", err)
	}

	return customers, nil
}

// Update overwrites name, phone, email, and address of the matching row.
// A customer without an identifier is a validation error; an identifier
// that matches no row is a silent no-op.
func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == 0 {
		return errs.NewValidationError("Customer identifier is required", []errs.FieldError{
			{Field: "id", Error: "is required"},
		})
	}

	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, address = $4
		WHERE customer_id = $5
	`

	_, err := r.db.Exec(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.ID,
	)
	if err != nil {
		return fmt.Errorf("updating customer %d: %w", customer.ID, err)
	}

	return nil
}

// Delete removes the customer row if present.
func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	query := `DELETE FROM customers WHERE customer_id = $1`

	if _, err := r.db.Exec(ctx, query, customerID); err != nil {
		return fmt.Errorf("deleting customer %d: %w", customerID, err)
	}

	return nil
}
