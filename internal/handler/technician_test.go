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

type recordingTechnicianStore struct {
	setCalls []bool
}

func (s *recordingTechnicianStore) Create(context.Context, *entity.Technician) (int64, error) {
	return 1, nil
}

func (s *recordingTechnicianStore) List(context.Context, bool, int) ([]entity.Technician, error) {
	return nil, nil
}

func (s *recordingTechnicianStore) SetActive(_ context.Context, _ int64, active bool) error {
	s.setCalls = append(s.setCalls, active)
	return nil
}

func TestTechnicianHandler_SetActiveRequiresFieldOnEveryCall(t *testing.T) {
	store := &recordingTechnicianStore{}
	h := NewTechnicianHandler(&server.Server{}, service.NewTechnicianService(store))

	e := echo.New()
	e.PATCH("/technicians/:id/active", HandleNoContent(h.Handler, h.SetActive, http.StatusNoContent))

	send := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/technicians/2/active", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := send(`{"active":false}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// A body without "active" must fail validation even right after a
	// request that supplied it.
	rec = send(`{}`)
	assert.NotEqual(t, http.StatusNoContent, rec.Code)

	require.Len(t, store.setCalls, 1)
	assert.False(t, store.setCalls[0])
}
