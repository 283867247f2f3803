package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a client booking for a single treatment package.
// StartAt/EndAt are absolute timestamps; the end time is fixed at creation
// from the package duration and does not change if the package is edited later.
type Booking struct {
	ID        string
	PackageID string

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string

	StartAt time.Time
	EndAt   time.Time
	Status  BookingStatus

	// Denormalized package data for history
	PackageTitle      string
	PackagePriceCents int

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occupies returns true if the booking takes up space on the calendar
func (b *Booking) Occupies() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsValidStatus reports whether s is one of the known booking statuses
func IsValidStatus(s BookingStatus) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// CanTransition reports whether a booking may move from one status to another.
// Cancellation goes through Booking.Cancel, not a plain status update.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed
	case StatusConfirmed:
		return to == StatusPending
	default:
		return false
	}
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
