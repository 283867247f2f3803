// Package create_booking создает бронирование с атомарной проверкой конфликта:
// внутри сериализуемой транзакции запрашиваются пересекающиеся бронирования
// (с блокировкой строк), и вставка происходит только если окно свободно.
package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rsmnv/RST-BookingService/internal/domain"
	"github.com/rsmnv/RST-BookingService/internal/infra/storage/pkgcatalog"
)

// UseCase usecase создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	packageRepo  PackageRepository
	txManager    TxManager
	timeProvider TimeProvider
	bufferMin    int
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	txManager TxManager,
	timeProvider TimeProvider,
	bufferMin int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		packageRepo:  packageRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		bufferMin:    bufferMin,
		logger:       logger,
	}
}

// Execute создает бронирование в статусе pending. Конфликт проверяется по
// окну [start, end+buffer) против окон существующих бронирований [start, end):
// новое бронирование резервирует паузу после себя, но не требует её перед собой.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*domain.Booking, error) {
	uc.logger.Info("[Execute] Creating booking for package %s at %s", req.PackageID, req.StartAt.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[Execute] Validation failed: %v", err)
		return nil, err
	}

	if req.StartAt.Before(uc.timeProvider.Now()) {
		uc.logger.Warn("[Execute] Start time %s is in the past", req.StartAt.Format(time.RFC3339))
		return nil, ErrStartInPast
	}

	pkg, err := uc.packageRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, pkgcatalog.ErrPackageNotFound) {
			uc.logger.Warn("[Execute] Package %s not found", req.PackageID)
			return nil, fmt.Errorf("%w: package %s", ErrPackageNotFound, req.PackageID)
		}
		uc.logger.Error("[Execute] Failed to get package %s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: get package: %v", ErrInternal, err)
	}

	if !pkg.IsActive {
		uc.logger.Warn("[Execute] Package %s is not active", req.PackageID)
		return nil, fmt.Errorf("%w: package %s", ErrPackageNotFound, req.PackageID)
	}

	endAt := req.StartAt.Add(time.Duration(pkg.DurationMinutes) * time.Minute)
	endWithBuffer := endAt.Add(time.Duration(uc.bufferMin) * time.Minute)

	booking := &domain.Booking{
		PackageID:         pkg.ID,
		CustomerName:      strings.TrimSpace(req.CustomerName),
		CustomerEmail:     strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:     req.CustomerPhone,
		Notes:             req.Notes,
		StartAt:           req.StartAt,
		EndAt:             endAt,
		Status:            domain.StatusPending,
		PackageTitle:      pkg.Title,
		PackagePriceCents: pkg.PriceCents,
	}

	// Проверка конфликта и вставка атомарны: SERIALIZABLE изоляция плюс
	// блокировка найденных строк закрывают гонку двух одновременных запросов
	// на один слот
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.StartAt, endWithBuffer)
		if err != nil {
			return fmt.Errorf("%w: get overlapping bookings: %w", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("[Execute] Slot conflict: %d overlapping bookings for [%s, %s)",
				len(overlapping), req.StartAt.Format(time.RFC3339), endWithBuffer.Format(time.RFC3339))
			return ErrSlotTaken
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: create booking: %w", ErrInternal, err)
		}

		booking = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("[Execute] Transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction: %v", ErrInternal, err)
	}

	uc.logger.Info("[Execute] Created booking %s for package %s at %s", booking.ID, pkg.ID, req.StartAt.Format(time.RFC3339))

	return booking, nil
}
