package cancel_booking

import (
	"context"

	"github.com/rsmnv/RST-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, id string, req *models.CancelBookingRequest) error
	GetByID(ctx context.Context, id string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
