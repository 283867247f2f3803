package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsmnv/RST-BookingService/internal/domain"
	"github.com/rsmnv/RST-BookingService/internal/infra/storage/pkgcatalog"
	"github.com/rsmnv/RST-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  []*domain.Booking

	lastOverlapFrom time.Time
	lastOverlapTo   time.Time
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.ID == "" {
		booking.ID = "generated-id"
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	r.created = append(r.created, booking)
	return booking, nil
}

func (r *fakeBookingRepo) GetOverlapping(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	r.lastOverlapFrom = start
	r.lastOverlapTo = end

	overlapping := make([]*domain.Booking, 0)
	for _, b := range append(r.existing, r.created...) {
		if b.StartAt.Before(end) && b.EndAt.After(start) {
			overlapping = append(overlapping, b)
		}
	}
	return overlapping, nil
}

type fakePackageRepo struct {
	pkg *domain.Package
}

func (r *fakePackageRepo) GetByID(_ context.Context, _ string) (*domain.Package, error) {
	if r.pkg == nil {
		return nil, pkgcatalog.ErrPackageNotFound
	}
	return r.pkg, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(_ string, _ ...interface{})  {}
func (nopLogger) Warn(_ string, _ ...interface{})  {}
func (nopLogger) Error(_ string, _ ...interface{}) {}

func testPackage() *domain.Package {
	return &domain.Package{
		ID:              "pkg-1",
		Title:           "Sports Massage",
		Slug:            "sports-massage",
		DurationMinutes: 60,
		PriceCents:      8500,
		IsActive:        true,
	}
}

func validRequest(start time.Time) Request {
	return Request{
		PackageID:     "pkg-1",
		CustomerName:  "Jane Smith",
		CustomerEmail: "jane@example.com",
		StartAt:       start,
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	now := time.Date(2026, 9, 8, 8, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)

	repo := &fakeBookingRepo{}
	txm := &fakeTxManager{}
	uc := NewUseCase(repo, &fakePackageRepo{pkg: testPackage()}, txm, &fakeTimeProvider{now: now}, 15, nopLogger{})

	req := validRequest(start)
	req.CustomerPhone = ptr.Ptr("+44 7700 900123")
	req.Notes = ptr.Ptr("First visit")

	booking, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, start, booking.StartAt)
	assert.Equal(t, start.Add(60*time.Minute), booking.EndAt)
	assert.Equal(t, "Sports Massage", booking.PackageTitle)
	assert.Equal(t, 8500, booking.PackagePriceCents)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, 1, txm.calls)

	// Конфликт проверяется по окну с буфером справа
	assert.Equal(t, start, repo.lastOverlapFrom)
	assert.Equal(t, start.Add(75*time.Minute), repo.lastOverlapTo)
}

func TestExecute_SlotTakenConflict(t *testing.T) {
	now := time.Date(2026, 9, 8, 8, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)

	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				ID:      "b-1",
				StartAt: start.Add(30 * time.Minute),
				EndAt:   start.Add(90 * time.Minute),
				Status:  domain.StatusPending,
			},
		},
	}
	uc := NewUseCase(repo, &fakePackageRepo{pkg: testPackage()}, &fakeTxManager{}, &fakeTimeProvider{now: now}, 15, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(start))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, repo.created)
}

func TestExecute_BufferOnlyOverlapConflicts(t *testing.T) {
	now := time.Date(2026, 9, 8, 8, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)

	// Существующее бронирование начинается ровно в конце новой услуги:
	// пересечение только по буферу, но это все равно конфликт
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				ID:      "b-1",
				StartAt: start.Add(60 * time.Minute),
				EndAt:   start.Add(120 * time.Minute),
				Status:  domain.StatusConfirmed,
			},
		},
	}
	uc := NewUseCase(repo, &fakePackageRepo{pkg: testPackage()}, &fakeTxManager{}, &fakeTimeProvider{now: now}, 15, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(start))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_BackToBackAfterExistingAllowed(t *testing.T) {
	now := time.Date(2026, 9, 8, 8, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)

	// Существующее бронирование заканчивается ровно в момент начала нового:
	// буфер требуется только после нового бронирования, не перед ним
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				ID:      "b-1",
				StartAt: start.Add(-60 * time.Minute),
				EndAt:   start,
				Status:  domain.StatusConfirmed,
			},
		},
	}
	uc := NewUseCase(repo, &fakePackageRepo{pkg: testPackage()}, &fakeTxManager{}, &fakeTimeProvider{now: now}, 15, nopLogger{})

	booking, err := uc.Execute(context.Background(), validRequest(start))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, booking.Status)
}

func TestExecute_SecondBookingSameSlotConflicts(t *testing.T) {
	now := time.Date(2026, 9, 8, 8, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)

	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakePackageRepo{pkg: testPackage()}, &fakeTxManager{}, &fakeTimeProvider{now: now}, 15, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(start))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest(start))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, repo.created, 1)
}

func TestExecute_StartInPast(t *testing.T) {
	now := time.Date(2026, 9, 8, 8, 0, 0, 0, time.UTC)

	uc := NewUseCase(&fakeBookingRepo{}, &fakePackageRepo{pkg: testPackage()}, &fakeTxManager{}, &fakeTimeProvider{now: now}, 15, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(now.Add(-time.Minute)))
	assert.ErrorIs(t, err, ErrStartInPast)
}

func TestExecute_PackageNotFound(t *testing.T) {
	now := time.Date(2026, 9, 8, 8, 0, 0, 0, time.UTC)

	uc := NewUseCase(&fakeBookingRepo{}, &fakePackageRepo{}, &fakeTxManager{}, &fakeTimeProvider{now: now}, 15, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(now.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestExecute_InactivePackageNotFound(t *testing.T) {
	now := time.Date(2026, 9, 8, 8, 0, 0, 0, time.UTC)

	pkg := testPackage()
	pkg.IsActive = false
	uc := NewUseCase(&fakeBookingRepo{}, &fakePackageRepo{pkg: pkg}, &fakeTxManager{}, &fakeTimeProvider{now: now}, 15, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(now.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2026, 9, 8, 8, 0, 0, 0, time.UTC)
	start := now.Add(time.Hour)

	uc := NewUseCase(&fakeBookingRepo{}, &fakePackageRepo{pkg: testPackage()}, &fakeTxManager{}, &fakeTimeProvider{now: now}, 15, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty package id", func(r *Request) { r.PackageID = "" }},
		{"empty name", func(r *Request) { r.CustomerName = "  " }},
		{"empty email", func(r *Request) { r.CustomerEmail = "" }},
		{"invalid email", func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{"zero start", func(r *Request) { r.StartAt = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(start)
			tt.mutate(&req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
