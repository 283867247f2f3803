package domain

import "time"

// Package represents a bookable treatment or training package.
// DurationMinutes drives slot generation; PriceCents is denormalized into
// bookings at creation time so later edits do not rewrite history.
type Package struct {
	ID              string
	Title           string
	Slug            string
	Description     string
	Features        []string
	PriceCents      int
	DurationMinutes int
	ImageURL        *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Price returns the package price in major currency units
func (p *Package) Price() float64 {
	return float64(p.PriceCents) / 100
}
