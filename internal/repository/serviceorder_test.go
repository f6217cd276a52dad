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
)

func newOrderMock(t *testing.T) (pgxmock.PgxPoolIface, *ServiceOrderRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewServiceOrderRepository(mock)
}

func TestServiceOrderRepository_Create(t *testing.T) {
	mock, repo := newOrderMock(t)

	scheduled := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO service_orders (customer_id, service_type, description, scheduled_at)`)).
		WithArgs(int64(4), entity.ServiceTypeRepair, strPtr("Squeaky drawer slide"), &scheduled).
		WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow(int64(11)))

	id, err := repo.Create(context.Background(), &entity.ServiceOrder{
		CustomerID:  4,
		ServiceType: entity.ServiceTypeRepair,
		Description: strPtr("Squeaky drawer slide"),
		ScheduledAt: &scheduled,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceOrderRepository_ListByStatus(t *testing.T) {
	mock, repo := newOrderMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"order_id", "customer_id", "technician_id", "service_type",
		"description", "status", "scheduled_at", "created_at", "updated_at",
	}).AddRow(
		int64(11), int64(4), (*int64)(nil), entity.ServiceTypeRepair,
		strPtr("Squeaky drawer slide"), entity.StatusPending, (*time.Time)(nil), now, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = $1`)).
		WithArgs(entity.StatusPending, 100).
		WillReturnRows(rows)

	orders, err := repo.List(context.Background(), entity.StatusPending, 100)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.StatusPending, orders[0].Status)
	assert.Nil(t, orders[0].TechnicianID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceOrderRepository_AssignTechnician(t *testing.T) {
	mock, repo := newOrderMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`status = CASE WHEN status = 'Pending' THEN 'Assigned' ELSE status END`)).
		WithArgs(int64(2), int64(11)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.AssignTechnician(context.Background(), 11, 2)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceOrderRepository_UpdateStatus(t *testing.T) {
	mock, repo := newOrderMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE service_orders`)).
		WithArgs(entity.StatusCompleted, int64(11)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), 11, entity.StatusCompleted)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceOrderRepository_UpdateStatusMissingRowIsNoop(t *testing.T) {
	mock, repo := newOrderMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE service_orders`)).
		WithArgs(entity.StatusCanceled, int64(999)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(context.Background(), 999, entity.StatusCanceled)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceOrderRepository_Delete(t *testing.T) {
	mock, repo := newOrderMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM service_orders WHERE order_id = $1`)).
		WithArgs(int64(11)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 11)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
