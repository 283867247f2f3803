package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/rsmnv/RST-BookingService/internal/usecase/get_availability"
	"github.com/rsmnv/RST-BookingService/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailability.Response
	err  error

	gotReq getAvailability.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req getAvailability.Request) (*getAvailability.Response, error) {
	u.gotReq = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(_ string, _ ...interface{})  {}
func (nopLogger) Warn(_ string, _ ...interface{})  {}
func (nopLogger) Error(_ string, _ ...interface{}) {}

func doRequest(t *testing.T, useCase *fakeUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, time.UTC, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	handler.Handle(resp, req)
	return resp
}

func TestHandle_OK(t *testing.T) {
	day := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	slotStart := day.Add(9 * time.Hour)

	useCase := &fakeUseCase{
		resp: &getAvailability.Response{
			Date:        day,
			PackageID:   "pkg-1",
			Slots:       []getAvailability.Slot{{Start: slotStart, Label: types.NewTimeString(slotStart)}},
			DurationMin: 60,
			IntervalMin: 15,
			BufferMin:   15,
		},
	}

	resp := doRequest(t, useCase, "/api/v1/availability?packageId=pkg-1&date=2026-09-08")
	assert.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, "pkg-1", useCase.gotReq.PackageID)
	assert.Equal(t, day, useCase.gotReq.Date)

	var got AvailabilityResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "2026-09-08", got.Date)
	require.Len(t, got.Slots, 1)
	assert.Equal(t, "09:00", got.Slots[0].Label)
}

func TestHandle_MissingParams(t *testing.T) {
	resp := doRequest(t, &fakeUseCase{}, "/api/v1/availability?date=2026-09-08")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(t, &fakeUseCase{}, "/api/v1/availability?packageId=pkg-1")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	resp := doRequest(t, &fakeUseCase{}, "/api/v1/availability?packageId=pkg-1&date=08-09-2026")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandle_PackageNotFound(t *testing.T) {
	useCase := &fakeUseCase{err: getAvailability.ErrPackageNotFound}

	resp := doRequest(t, useCase, "/api/v1/availability?packageId=missing&date=2026-09-08")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
