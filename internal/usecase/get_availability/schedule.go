package get_availability

import (
	"time"

	"github.com/rsmnv/RST-BookingService/internal/domain"
	"github.com/rsmnv/RST-BookingService/pkg/interval"
)

// resolveFreeIntervals строит свободные интервалы дня в минутах от полуночи.
// База — объединение активных правил дня недели (пустая база = день закрыт).
// Из базы вычитаются еженедельные блокировки, действующие на дату, и разовые
// блокировки, обрезанные до границ суток.
func resolveFreeIntervals(
	rules []*domain.AvailabilityRule,
	recurring []*domain.RecurringBlock,
	timeBlocks []*domain.TimeBlock,
	day time.Time,
	dayEnd time.Time,
	minLength int,
) []interval.Interval {
	if len(rules) == 0 {
		return nil
	}

	base := make([]interval.Interval, 0, len(rules))
	for _, rule := range rules {
		base = append(base, interval.Interval{Start: rule.StartMinutes, End: rule.EndMinutes})
	}

	cuts := make([]interval.Interval, 0, len(recurring)+len(timeBlocks))

	for _, block := range recurring {
		if !block.AppliesOn(day) {
			continue
		}
		cuts = append(cuts, interval.Interval{Start: block.StartMinutes, End: block.EndMinutes})
	}

	for _, block := range timeBlocks {
		if cut, ok := clipToDay(block.StartAt, block.EndAt, day, dayEnd); ok {
			cuts = append(cuts, cut)
		}
	}

	return interval.Subtract(base, cuts, minLength)
}

// clipToDay обрезает абсолютный интервал [start, end) до границ суток
// [day, dayEnd) и переводит его в минуты от полуночи. Интервал, проходящий
// через полночь, дает каждому затронутому дню свой обрезанный сегмент.
func clipToDay(start, end, day, dayEnd time.Time) (interval.Interval, bool) {
	if !start.Before(dayEnd) || !end.After(day) {
		return interval.Interval{}, false
	}

	startMin := 0
	if start.After(day) {
		startMin = minutesSinceMidnight(start.In(day.Location()))
	}

	endMin := domain.MinutesPerDay
	if end.Before(dayEnd) {
		endMin = minutesSinceMidnight(end.In(day.Location()))
	}

	return interval.Interval{Start: startMin, End: endMin}, true
}

func minutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
