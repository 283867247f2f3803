package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingsService "github.com/rsmnv/RST-BookingService/internal/service/bookings"
	"github.com/rsmnv/RST-BookingService/internal/service/bookings/models"
)

type fakeBookingsService struct {
	err error

	gotReq *models.ListBookingsRequest
}

func (s *fakeBookingsService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(_ string, _ ...interface{})  {}
func (nopLogger) Warn(_ string, _ ...interface{})  {}
func (nopLogger) Error(_ string, _ ...interface{}) {}

func doRequest(t *testing.T, service *fakeBookingsService, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(service, time.UTC, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	handler.Handle(resp, req)
	return resp
}

func TestHandle_DateShortcut(t *testing.T) {
	service := &fakeBookingsService{}

	resp := doRequest(t, service, "/api/v1/admin/bookings?date=2026-09-08")
	assert.Equal(t, http.StatusOK, resp.Code)

	require.NotNil(t, service.gotReq.StartDate)
	require.NotNil(t, service.gotReq.EndDate)
	assert.Equal(t, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), *service.gotReq.StartDate)
	assert.Equal(t, time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC), *service.gotReq.EndDate)
}

func TestHandle_FromToRange(t *testing.T) {
	service := &fakeBookingsService{}

	resp := doRequest(t, service, "/api/v1/admin/bookings?from=2026-09-01&to=2026-09-07&status=confirmed")
	assert.Equal(t, http.StatusOK, resp.Code)

	require.NotNil(t, service.gotReq.StartDate)
	require.NotNil(t, service.gotReq.EndDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *service.gotReq.StartDate)
	// верхняя граница включает весь последний день
	assert.Equal(t, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), *service.gotReq.EndDate)
	require.NotNil(t, service.gotReq.Status)
	assert.Equal(t, "confirmed", *service.gotReq.Status)
}

func TestHandle_InvalidDate(t *testing.T) {
	resp := doRequest(t, &fakeBookingsService{}, "/api/v1/admin/bookings?from=08-09-2026")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandle_InvalidStatus(t *testing.T) {
	service := &fakeBookingsService{err: bookingsService.ErrInvalidStatus}

	resp := doRequest(t, service, "/api/v1/admin/bookings?status=sleeping")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
