package domain

import "time"

// AvailabilityRule represents one open working-hour window for a weekday.
// Weekday follows time.Weekday numbering (0=Sunday..6=Saturday). Times are
// minutes since local midnight. Several rules per weekday are allowed and
// overlapping windows are treated as a union.
type AvailabilityRule struct {
	ID           int64
	Weekday      int
	StartMinutes int
	EndMinutes   int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecurringBlock represents a standing weekly closure (e.g. a nightly
// "closed" window) bounded by an optional effective date range.
type RecurringBlock struct {
	ID           int64
	Weekday      int
	StartMinutes int
	EndMinutes   int
	StartsOn     time.Time
	EndsOn       *time.Time
	Reason       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AppliesOn returns true if the block is in effect on the given calendar date.
// StartsOn is inclusive; EndsOn is inclusive or open when nil.
func (b *RecurringBlock) AppliesOn(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	startsOn := time.Date(b.StartsOn.Year(), b.StartsOn.Month(), b.StartsOn.Day(), 0, 0, 0, 0, date.Location())
	if day.Before(startsOn) {
		return false
	}
	if b.EndsOn == nil {
		return true
	}
	endsOn := time.Date(b.EndsOn.Year(), b.EndsOn.Month(), b.EndsOn.Day(), 0, 0, 0, 0, date.Location())
	return !day.After(endsOn)
}

// TimeBlock represents an ad-hoc closure with absolute bounds (holiday,
// personal appointment). Independent of any weekday pattern.
type TimeBlock struct {
	ID        int64
	StartAt   time.Time
	EndAt     time.Time
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeeklySchedule groups the three schedule inputs for the admin surface
type WeeklySchedule struct {
	Rules           []*AvailabilityRule
	RecurringBlocks []*RecurringBlock
	TimeBlocks      []*TimeBlock
}
