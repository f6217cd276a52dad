package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/server"
	"github.com/abidbilal/deskservice/internal/service"
)

type recordingCustomerStore struct {
	created []entity.Customer
}

func (s *recordingCustomerStore) Create(_ context.Context, customer *entity.Customer) (int64, error) {
	s.created = append(s.created, *customer)
	return int64(len(s.created)), nil
}

func (s *recordingCustomerStore) List(context.Context, string, int) ([]entity.Customer, error) {
	return nil, nil
}

func (s *recordingCustomerStore) Update(context.Context, *entity.Customer) error {
	return nil
}

func (s *recordingCustomerStore) Delete(context.Context, int64) error {
	return nil
}

func TestCustomerHandler_CreateBindsFreshRequestPerCall(t *testing.T) {
	store := &recordingCustomerStore{}
	h := NewCustomerHandler(&server.Server{}, service.NewCustomerService(store))

	e := echo.New()
	e.POST("/customers", Handle(h.Handler, h.Create, http.StatusCreated))

	send := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := send(`{"name":"Alice Smith","phone":"555-0101","email":"alice@example.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The second body carries no email; it must not inherit the first
	// caller's value through the registered handler.
	rec = send(`{"name":"Bob Jones","phone":"555-0202"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, store.created, 2)

	require.NotNil(t, store.created[0].Email)
	assert.Equal(t, "alice@example.com", *store.created[0].Email)

	assert.Equal(t, "Bob Jones", store.created[1].Name)
	assert.Nil(t, store.created[1].Email)
	assert.Nil(t, store.created[1].Address)
}
