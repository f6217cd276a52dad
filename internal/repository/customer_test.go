package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/errs"
)

func newCustomerMock(t *testing.T) (pgxmock.PgxPoolIface, *CustomerRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewCustomerRepository(mock)
}

func strPtr(s string) *string { return &s }

func TestCustomerRepository_Create(t *testing.T) {
	mock, repo := newCustomerMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customers (name, phone, email, address)`)).
		WithArgs("Alice Smith", "555-0101", strPtr("alice@example.com"), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"customer_id"}).AddRow(int64(7)))

	id, err := repo.Create(context.Background(), &entity.Customer{
		Name:  "Alice Smith",
		Phone: "555-0101",
		Email: strPtr("alice@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_List(t *testing.T) {
	mock, repo := newCustomerMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"customer_id", "name", "phone", "email", "address", "created_at"}).
		AddRow(int64(2), "Bob Jones", "555-0102", (*string)(nil), (*string)(nil), now).
		AddRow(int64(1), "Alice Smith", "555-0101", strPtr("alice@example.com"), (*string)(nil), now)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY customer_id DESC`)).
		WithArgs(100).
		WillReturnRows(rows)

	customers, err := repo.List(context.Background(), "", 100)

	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, int64(2), customers[0].ID)
	assert.Equal(t, "Alice Smith", customers[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_ListSearch(t *testing.T) {
	mock, repo := newCustomerMock(t)

	rows := pgxmock.NewRows([]string{"customer_id", "name", "phone", "email", "address", "created_at"}).
		AddRow(int64(1), "Alice Smith", "555-0101", (*string)(nil), (*string)(nil), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE name ILIKE $1`)).
		WithArgs("%ali%", 100).
		WillReturnRows(rows)

	customers, err := repo.List(context.Background(), "ali", 100)

	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Alice Smith", customers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Update(t *testing.T) {
	mock, repo := newCustomerMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE customers`)).
		WithArgs("Alice Brown", "555-0199", (*string)(nil), (*string)(nil), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &entity.Customer{
		ID:    1,
		Name:  "Alice Brown",
		Phone: "555-0199",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_UpdateMissingID(t *testing.T) {
	_, repo := newCustomerMock(t)

	err := repo.Update(context.Background(), &entity.Customer{Name: "No ID"})

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCustomerRepository_UpdateMissingRowIsNoop(t *testing.T) {
	mock, repo := newCustomerMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE customers`)).
		WithArgs("Ghost", "555-0000", (*string)(nil), (*string)(nil), int64(999)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &entity.Customer{
		ID:    999,
		Name:  "Ghost",
		Phone: "555-0000",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Delete(t *testing.T) {
	mock, repo := newCustomerMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM customers WHERE customer_id = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 3)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
