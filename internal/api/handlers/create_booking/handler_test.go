package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsmnv/RST-BookingService/internal/domain"
	createBooking "github.com/rsmnv/RST-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	booking *domain.Booking
	err     error

	gotReq createBooking.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req createBooking.Request) (*domain.Booking, error) {
	u.gotReq = req
	if u.err != nil {
		return nil, u.err
	}
	return u.booking, nil
}

type nopLogger struct{}

func (nopLogger) Info(_ string, _ ...interface{})  {}
func (nopLogger) Warn(_ string, _ ...interface{})  {}
func (nopLogger) Error(_ string, _ ...interface{}) {}

func doRequest(t *testing.T, useCase *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.Handle(resp, req)
	return resp
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	useCase := &fakeUseCase{
		booking: &domain.Booking{
			ID:           "b-1",
			PackageID:    "pkg-1",
			CustomerName: "Jane Smith",
			StartAt:      start,
			EndAt:        start.Add(time.Hour),
			Status:       domain.StatusPending,
			PackageTitle: "Deep Tissue Massage",
		},
	}

	body := `{"packageId":"pkg-1","name":"Jane Smith","email":"jane@example.com","start":"2026-09-10T10:00:00Z"}`
	resp := doRequest(t, useCase, body)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "pkg-1", useCase.gotReq.PackageID)
	assert.Equal(t, start, useCase.gotReq.StartAt)

	var got BookingResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, "pending", got.Status)
}

func TestHandle_SlotTakenConflict(t *testing.T) {
	useCase := &fakeUseCase{err: createBooking.ErrSlotTaken}

	body := `{"packageId":"pkg-1","name":"Jane Smith","email":"jane@example.com","start":"2026-09-10T10:00:00Z"}`
	resp := doRequest(t, useCase, body)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "Slot taken")
}

func TestHandle_PackageNotFound(t *testing.T) {
	useCase := &fakeUseCase{err: createBooking.ErrPackageNotFound}

	body := `{"packageId":"missing","name":"Jane Smith","email":"jane@example.com","start":"2026-09-10T10:00:00Z"}`
	resp := doRequest(t, useCase, body)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandle_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"broken json", `{`, nil},
		{"invalid start format", `{"packageId":"pkg-1","name":"Jane","email":"j@e.com","start":"10:00"}`, nil},
		{"validation error", `{"packageId":"pkg-1","name":"Jane","email":"j@e.com","start":"2026-09-10T10:00:00Z"}`, createBooking.ErrInvalidInput},
		{"start in past", `{"packageId":"pkg-1","name":"Jane","email":"j@e.com","start":"2026-09-10T10:00:00Z"}`, createBooking.ErrStartInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, &fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}
