package repository

import (
	"context"
	"fmt"

	"github.com/abidbilal/deskservice/internal/entity"
)

// TechnicianRepository persists technicians.
type TechnicianRepository struct {
	db DB
}

// NewTechnicianRepository creates a TechnicianRepository.
func NewTechnicianRepository(db DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

// Create inserts a technician and returns the assigned identifier.
func (r *TechnicianRepository) Create(ctx context.Context, tech *entity.Technician) (int64, error) {
	query := `
		INSERT INTO technicians (name, phone, skill_level, active)
		VALUES ($1, $2, $3, $4)
		RETURNING technician_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		tech.Name,
		tech.Phone,
		tech.SkillLevel,
		tech.Active,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating technician: %w", err)
	}

	return id, nil
}

// List returns technicians newest-first, capped at limit. With activeOnly
// set, inactive technicians are filtered out.
func (r *TechnicianRepository) List(ctx context.Context, activeOnly bool, limit int) ([]entity.Technician, error) {
	var (
		query string
		args  []any
	)

	if activeOnly {
		query = `
			SELECT technician_id, name, phone, skill_level, active, created_at
			FROM technicians
			WHERE active = true
			ORDER BY technician_id DESC
			LIMIT $1
		`
	} else {
		query = `
			SELECT technician_id, name, phone, skill_level, active, created_at
			FROM technicians
			ORDER BY technician_id DESC
			LIMIT $1
		`
	}
	args = []any{limit}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing technicians: %w", err)
	}
	defer rows.Close()

	technicians := make([]entity.Technician, 0)
	for rows.Next() {
		var t entity.Technician
		if err := rows.Scan(&t.ID, &t.Name, &t.Phone, &t.SkillLevel, &t.Active, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning technician: %w", err)
		}
		technicians = append(technicians, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading technicians: %w", err)
	}

	return technicians, nil
}

// SetActive flips the active flag. Unknown identifiers are a silent no-op.
func (r *TechnicianRepository) SetActive(ctx context.Context, technicianID int64, active bool) error {
	query := `UPDATE technicians SET active = $1 WHERE technician_id = $2`

	if _, err := r.db.Exec(ctx, query, active, technicianID); err != nil {
		return fmt.Errorf("setting technician %d active=%t: %w", technicianID, active, err)
	}

	return nil
}
