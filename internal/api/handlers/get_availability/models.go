package get_availability

import (
	"time"

	"github.com/rsmnv/RST-BookingService/internal/domain"
	getAvailability "github.com/rsmnv/RST-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date        string         `json:"date"`      // "2026-09-08"
	PackageID   string         `json:"packageId"`
	Slots       []SlotResponse `json:"slots"`
	DurationMin int            `json:"durationMin"`
	IntervalMin int            `json:"intervalMin"`
	BufferMin   int            `json:"bufferMin"`
}

// SlotResponse один предлагаемый слот
type SlotResponse struct {
	Start time.Time `json:"start"` // Абсолютное время начала (RFC 3339)
	Label string    `json:"label"` // "HH:MM" в бизнес-таймзоне
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start: slot.Start,
			Label: slot.Label.String(),
		})
	}

	return &AvailabilityResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		PackageID:   resp.PackageID,
		Slots:       slots,
		DurationMin: resp.DurationMin,
		IntervalMin: resp.IntervalMin,
		BufferMin:   resp.BufferMin,
	}
}
