// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// data, abstracting SQL logic away from the service layer.
//
// Every method runs exactly one parameterized statement against the pool:
// a connection is borrowed for that statement and released on every exit
// path, and no operation spans or shares a connection with another. The
// statement is the unit of atomicity.
//
// Mutations aimed at a missing identifier (update, delete, set-active,
// assign, status change) succeed silently, mirroring UPDATE/DELETE ...
// WHERE semantics. Callers that need existence guarantees must list first.
package repository

import (
	"context"

	"github.com/abidbilal/deskservice/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of the pgx pool surface repositories use. *pgxpool.Pool
// satisfies it; tests substitute a mock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultLimit is the page size applied when a caller does not specify one.
const DefaultLimit = 100

// Repositories is the container for all repository instances.
type Repositories struct {
	Customers   *CustomerRepository
	Technicians *TechnicianRepository
	Orders      *ServiceOrderRepository
	Users       *UserRepository
}

// NewRepositories constructs the repository container on top of the
// server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	db := s.DB.Pool
	return &Repositories{
		Customers:   NewCustomerRepository(db),
		Technicians: NewTechnicianRepository(db),
		Orders:      NewServiceOrderRepository(db),
		Users:       NewUserRepository(db),
	}
}
