package get_availability

import (
	"time"

	"github.com/rsmnv/RST-BookingService/internal/domain"
	"github.com/rsmnv/RST-BookingService/pkg/interval"
	"github.com/rsmnv/RST-BookingService/pkg/types"
)

// generateSlots перебирает кандидатов внутри свободных интервалов с шагом
// step и оставляет тех, чье окно [m, m+duration+buffer) не выходит за
// интервал, не пересекается с занятыми окнами бронирований и не находится
// в прошлом.
func generateSlots(
	free []interval.Interval,
	bookings []*domain.Booking,
	day time.Time,
	now time.Time,
	duration, buffer, step int,
) []Slot {
	occupied := occupiedIntervals(bookings, day, buffer)
	window := duration + buffer

	// Слоты в прошлом отсекаются только для текущего дня. Неполная минута
	// округляется вверх: кандидат в минуту "сейчас" уже начался.
	minStart := -1
	if sameDay(day, now) {
		localNow := now.In(day.Location())
		minStart = minutesSinceMidnight(localNow)
		if localNow.Second() > 0 || localNow.Nanosecond() > 0 {
			minStart++
		}
	}

	slots := make([]Slot, 0)
	for _, freeIv := range free {
		for m := freeIv.Start; m+window <= freeIv.End; m += step {
			if m < minStart {
				continue
			}

			candidate := interval.Interval{Start: m, End: m + window}
			if overlapsAny(candidate, occupied) {
				continue
			}

			start := time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, day.Location())
			slots = append(slots, Slot{
				Start: start,
				Label: types.NewTimeString(start),
			})
		}
	}

	return slots
}

// occupiedIntervals переводит бронирования в занятые окна дня в минутах.
// Окно бронирования [StartAt, EndAt+buffer); сегменты, выходящие за сутки,
// обрезаются до границ дня.
func occupiedIntervals(bookings []*domain.Booking, day time.Time, buffer int) []interval.Interval {
	dayEnd := day.AddDate(0, 0, 1)

	occupied := make([]interval.Interval, 0, len(bookings))
	for _, booking := range bookings {
		end := booking.EndAt.Add(time.Duration(buffer) * time.Minute)
		if iv, ok := clipToDay(booking.StartAt, end, day, dayEnd); ok {
			occupied = append(occupied, iv)
		}
	}

	return occupied
}

func overlapsAny(candidate interval.Interval, occupied []interval.Interval) bool {
	for _, iv := range occupied {
		if interval.Overlaps(candidate, iv) {
			return true
		}
	}
	return false
}

func sameDay(day, now time.Time) bool {
	localNow := now.In(day.Location())
	return day.Year() == localNow.Year() && day.Month() == localNow.Month() && day.Day() == localNow.Day()
}
