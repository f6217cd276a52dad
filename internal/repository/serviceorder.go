package repository

import (
	"context"
	"fmt"

	"github.com/abidbilal/deskservice/internal/entity"
)

// ServiceOrderRepository persists service orders.
type ServiceOrderRepository struct {
	db DB
}

// NewServiceOrderRepository creates a ServiceOrderRepository.
func NewServiceOrderRepository(db DB) *ServiceOrderRepository {
	return &ServiceOrderRepository{db: db}
}

// Create inserts a service order and returns the assigned identifier. The
// status column defaults to Pending; callers never set it on insert.
func (r *ServiceOrderRepository) Create(ctx context.Context, order *entity.ServiceOrder) (int64, error) {
	query := `
		INSERT INTO service_orders (customer_id, service_type, description, scheduled_at)
		VALUES ($1, $2, $3, $4)
		RETURNING order_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		order.CustomerID,
		order.ServiceType,
		order.Description,
		order.ScheduledAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating service order: %w", err)
	}

	return id, nil
}

// List returns service orders newest-first, capped at limit. A non-empty
// status filters to orders in exactly that status.
func (r *ServiceOrderRepository) List(ctx context.Context, status entity.OrderStatus, limit int) ([]entity.ServiceOrder, error) {
	const columns = `order_id, customer_id, technician_id, service_type, description, status, scheduled_at, created_at, updated_at`

	var (
		query string
		args  []any
	)

	if status != "" {
		query = `
			SELECT ` + columns + `
			FROM service_orders
			WHERE status = $1
			ORDER BY order_id DESC
			LIMIT $2
		`
		args = []any{status, limit}
	} else {
		query = `
			SELECT ` + columns + `
			FROM service_orders
			ORDER BY order_id DESC
			LIMIT $1
		`
		args = []any{limit}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing service orders: %w", err)
	}
	defer rows.Close()

	orders := make([]entity.ServiceOrder, 0)
	for rows.Next() {
		var o entity.ServiceOrder
		err := rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.TechnicianID,
			&o.ServiceType,
			&o.Description,
			&o.Status,
			&o.ScheduledAt,
			&o.CreatedAt,
			&o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning service order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading service orders: %w", err)
	}

	return orders, nil
}

// AssignTechnician binds a technician to an order. Orders still in Pending
// advance to Assigned in the same statement; any other status is left
// untouched. Unknown identifiers are a silent no-op.
func (r *ServiceOrderRepository) AssignTechnician(ctx context.Context, orderID, technicianID int64) error {
	query := `
		UPDATE service_orders
		SET technician_id = $1,
		    status = CASE WHEN status = 'Pending' THEN 'Assigned' ELSE status END,
		    updated_at = now()
		WHERE order_id = $2
	`

	if _, err := r.db.Exec(ctx, query, technicianID, orderID); err != nil {
		return fmt.Errorf("assigning technician %d to order %d: %w", technicianID, orderID, err)
	}

	return nil
}

// UpdateStatus moves an order to the given status. Unknown identifiers are a
// silent no-op.
func (r *ServiceOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error {
	query := `
		UPDATE service_orders
		SET status = $1,
		    updated_at = now()
		WHERE order_id = $2
	`

	if _, err := r.db.Exec(ctx, query, status, orderID); err != nil {
		return fmt.Errorf("updating order %d status: %w", orderID, err)
	}

	return nil
}

// Delete removes a service order. Unknown identifiers are a silent no-op.
func (r *ServiceOrderRepository) Delete(ctx context.Context, orderID int64) error {
	query := `DELETE FROM service_orders WHERE order_id = $1`

	if _, err := r.db.Exec(ctx, query, orderID); err != nil {
		return fmt.Errorf("deleting order %d: %w", orderID, err)
	}

	return nil
}
