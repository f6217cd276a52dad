package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/errs"
)

type fakeCustomerStore struct {
	created     *entity.Customer
	updated     *entity.Customer
	deletedID   int64
	listSearch  string
	listLimit   int
	listResult  []entity.Customer
	nextID      int64
	returnedErr error
}

func (f *fakeCustomerStore) Create(_ context.Context, customer *entity.Customer) (int64, error) {
	f.created = customer
	return f.nextID, f.returnedErr
}

func (f *fakeCustomerStore) List(_ context.Context, search string, limit int) ([]entity.Customer, error) {
	f.listSearch = search
	f.listLimit = limit
	return f.listResult, f.returnedErr
}

func (f *fakeCustomerStore) Update(_ context.Context, customer *entity.Customer) error {
	f.updated = customer
	return f.returnedErr
}

func (f *fakeCustomerStore) Delete(_ context.Context, customerID int64) error {
	f.deletedID = customerID
	return f.returnedErr
}

func TestCustomerService_CreateTrimsAndCollapsesBlanks(t *testing.T) {
	store := &fakeCustomerStore{nextID: 5}
	svc := NewCustomerService(store)

	email := "  "
	address := " 12 High St "
	id, err := svc.Create(context.Background(), &entity.Customer{
		Name:    "  Alice Smith ",
		Phone:   " 555-0101 ",
		Email:   &email,
		Address: &address,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, "Alice Smith", store.created.Name)
	assert.Equal(t, "555-0101", store.created.Phone)
	assert.Nil(t, store.created.Email)
	require.NotNil(t, store.created.Address)
	assert.Equal(t, "12 High St", *store.created.Address)
}

func TestCustomerService_CreateRequiresNameAndPhone(t *testing.T) {
	store := &fakeCustomerStore{}
	svc := NewCustomerService(store)

	_, err := svc.Create(context.Background(), &entity.Customer{Name: "   "})

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Nil(t, store.created)
}

func TestCustomerService_ListNormalizesLimit(t *testing.T) {
	store := &fakeCustomerStore{}
	svc := NewCustomerService(store)

	_, err := svc.List(context.Background(), " ali ", 0)

	require.NoError(t, err)
	assert.Equal(t, 100, store.listLimit)
	assert.Equal(t, "ali", store.listSearch)
}

func TestCustomerService_UpdateRequiresID(t *testing.T) {
	store := &fakeCustomerStore{}
	svc := NewCustomerService(store)

	err := svc.Update(context.Background(), &entity.Customer{Name: "Alice", Phone: "555-0101"})

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Nil(t, store.updated)
}

func TestCustomerService_Delete(t *testing.T) {
	store := &fakeCustomerStore{}
	svc := NewCustomerService(store)

	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, int64(9), store.deletedID)
}

func TestCustomerService_DeleteRequiresID(t *testing.T) {
	svc := NewCustomerService(&fakeCustomerStore{})

	err := svc.Delete(context.Background(), 0)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}
