package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/errs"
)

type fakeOrderStore struct {
	created      *entity.ServiceOrder
	listStatus   entity.OrderStatus
	listLimit    int
	assignedTo   int64
	assignedTech int64
	statusOrder  int64
	statusValue  entity.OrderStatus
	deletedID    int64
	nextID       int64
}

func (f *fakeOrderStore) Create(_ context.Context, order *entity.ServiceOrder) (int64, error) {
	f.created = order
	return f.nextID, nil
}

func (f *fakeOrderStore) List(_ context.Context, status entity.OrderStatus, limit int) ([]entity.ServiceOrder, error) {
	f.listStatus = status
	f.listLimit = limit
	return nil, nil
}

func (f *fakeOrderStore) AssignTechnician(_ context.Context, orderID, technicianID int64) error {
	f.assignedTo = orderID
	f.assignedTech = technicianID
	return nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, orderID int64, status entity.OrderStatus) error {
	f.statusOrder = orderID
	f.statusValue = status
	return nil
}

func (f *fakeOrderStore) Delete(_ context.Context, orderID int64) error {
	f.deletedID = orderID
	return nil
}

func TestServiceOrderService_CreateForcesPendingAndNoTechnician(t *testing.T) {
	store := &fakeOrderStore{nextID: 11}
	svc := NewServiceOrderService(store)

	tech := int64(3)
	id, err := svc.Create(context.Background(), &entity.ServiceOrder{
		CustomerID:   4,
		TechnicianID: &tech,
		ServiceType:  entity.ServiceTypeTuning,
		Status:       entity.StatusCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, entity.StatusPending, store.created.Status)
	assert.Nil(t, store.created.TechnicianID)
}

func TestServiceOrderService_CreateRejectsUnknownServiceType(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewServiceOrderService(store)

	_, err := svc.Create(context.Background(), &entity.ServiceOrder{
		CustomerID:  4,
		ServiceType: entity.ServiceType("Flying"),
	})

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Nil(t, store.created)
}

func TestServiceOrderService_CreateRequiresCustomer(t *testing.T) {
	svc := NewServiceOrderService(&fakeOrderStore{})

	_, err := svc.Create(context.Background(), &entity.ServiceOrder{
		ServiceType: entity.ServiceTypeRepair,
	})

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestServiceOrderService_ListRejectsUnknownStatus(t *testing.T) {
	svc := NewServiceOrderService(&fakeOrderStore{})

	_, err := svc.List(context.Background(), entity.OrderStatus("pending"), 10)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestServiceOrderService_ListNormalizesLimit(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewServiceOrderService(store)

	_, err := svc.List(context.Background(), "", -3)

	require.NoError(t, err)
	assert.Equal(t, 100, store.listLimit)
}

func TestServiceOrderService_AssignTechnician(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewServiceOrderService(store)

	require.NoError(t, svc.AssignTechnician(context.Background(), 11, 2))
	assert.Equal(t, int64(11), store.assignedTo)
	assert.Equal(t, int64(2), store.assignedTech)
}

func TestServiceOrderService_AssignTechnicianRequiresBothIDs(t *testing.T) {
	svc := NewServiceOrderService(&fakeOrderStore{})

	err := svc.AssignTechnician(context.Background(), 11, 0)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestServiceOrderService_UpdateStatusRejectsUnknown(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewServiceOrderService(store)

	err := svc.UpdateStatus(context.Background(), 11, entity.OrderStatus("Done"))

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Zero(t, store.statusOrder)
}

func TestServiceOrderService_UpdateStatusRequiresID(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewServiceOrderService(store)

	err := svc.UpdateStatus(context.Background(), 0, entity.StatusCanceled)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Zero(t, store.statusOrder)
}

func TestServiceOrderService_UpdateStatusAcceptsAnyKnownStatus(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewServiceOrderService(store)

	require.NoError(t, svc.UpdateStatus(context.Background(), 11, entity.StatusCanceled))
	assert.Equal(t, entity.StatusCanceled, store.statusValue)
}
