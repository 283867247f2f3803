package create_booking

import (
	"time"

	"github.com/rsmnv/RST-BookingService/internal/domain"
	createBooking "github.com/rsmnv/RST-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PackageID string  `json:"packageId"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Start     string  `json:"start"` // RFC 3339
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                string  `json:"id"`
	PackageID         string  `json:"packageId"`
	CustomerName      string  `json:"customerName"`
	CustomerEmail     string  `json:"customerEmail"`
	CustomerPhone     *string `json:"customerPhone,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	StartAt           string  `json:"startAt"` // RFC 3339
	EndAt             string  `json:"endAt"`   // RFC 3339
	Status            string  `json:"status"`
	PackageTitle      string  `json:"packageTitle"`
	PackagePriceCents int     `json:"packagePriceCents"`
	CreatedAt         string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return createBooking.Request{}, err
	}

	return createBooking.Request{
		PackageID:     r.PackageID,
		CustomerName:  r.Name,
		CustomerEmail: r.Email,
		CustomerPhone: r.Phone,
		Notes:         r.Notes,
		StartAt:       start,
	}, nil
}

// FromDomainBooking конвертирует domain модель в HTTP response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                b.ID,
		PackageID:         b.PackageID,
		CustomerName:      b.CustomerName,
		CustomerEmail:     b.CustomerEmail,
		CustomerPhone:     b.CustomerPhone,
		Notes:             b.Notes,
		StartAt:           b.StartAt.Format(time.RFC3339),
		EndAt:             b.EndAt.Format(time.RFC3339),
		Status:            string(b.Status),
		PackageTitle:      b.PackageTitle,
		PackagePriceCents: b.PackagePriceCents,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
	}
}
