package domain

// Default booking configuration values
const (
	DefaultSlotIntervalMinutes = 15 // шаг генерации слотов
	DefaultBufferMinutes       = 15 // обязательная пауза после бронирования
)

// Business validation constants
const (
	MinutesPerDay = 1440

	MinWeekday = 0 // Sunday
	MaxWeekday = 6 // Saturday

	MaxNotesLength         = 500
	MaxReasonLength        = 500
	MaxCustomerNameLength  = 200
	MaxCustomerEmailLength = 320
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses список статусов, занимающих место в расписании.
// Используется при подсчёте доступных слотов и в проверке конфликтов.
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
