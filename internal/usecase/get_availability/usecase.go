// Package get_availability вычисляет доступные слоты начала услуги на дату:
// рабочие часы дня минус блокировки дают свободные интервалы, по которым с
// фиксированным шагом перебираются кандидаты с учетом занятых бронирований,
// буфера после услуги и текущего времени.
package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rsmnv/RST-BookingService/internal/infra/storage/pkgcatalog"
)

// UseCase usecase получения доступных слотов
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	packageRepo  PackageRepository
	timeProvider TimeProvider
	location     *time.Location
	intervalMin  int
	bufferMin    int
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	timeProvider TimeProvider,
	location *time.Location,
	intervalMin int,
	bufferMin int,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		packageRepo:  packageRepo,
		timeProvider: timeProvider,
		location:     location,
		intervalMin:  intervalMin,
		bufferMin:    bufferMin,
		logger:       logger,
	}
}

// Execute возвращает доступные слоты для пакета на указанную дату.
// День без активных правил считается закрытым и дает пустой список слотов.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("[Execute] Getting availability for package %s on %s", req.PackageID, req.Date.Format("2006-01-02"))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[Execute] Validation failed: %v", err)
		return nil, err
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

	// Границы суток в бизнес-таймзоне
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	dayEnd := day.AddDate(0, 0, 1)
	weekday := int(day.Weekday())

	rules, err := uc.scheduleRepo.GetActiveRulesForWeekday(ctx, weekday)
	if err != nil {
		uc.logger.Error("[Execute] Failed to get rules for weekday %d: %v", weekday, err)
		return nil, fmt.Errorf("%w: get availability rules: %v", ErrInternal, err)
	}

	response := &Response{
		Date:        day,
		PackageID:   pkg.ID,
		Slots:       []Slot{},
		BufferMin:   uc.bufferMin,
		IntervalMin: uc.intervalMin,
		DurationMin: pkg.DurationMinutes,
	}

	// Нет правил — день закрыт
	if len(rules) == 0 {
		uc.logger.Info("[Execute] No active rules for weekday %d, day is closed", weekday)
		return response, nil
	}

	recurring, err := uc.scheduleRepo.GetRecurringBlocksForWeekday(ctx, weekday)
	if err != nil {
		uc.logger.Error("[Execute] Failed to get recurring blocks for weekday %d: %v", weekday, err)
		return nil, fmt.Errorf("%w: get recurring blocks: %v", ErrInternal, err)
	}

	timeBlocks, err := uc.scheduleRepo.GetTimeBlocksInRange(ctx, day, dayEnd)
	if err != nil {
		uc.logger.Error("[Execute] Failed to get time blocks: %v", err)
		return nil, fmt.Errorf("%w: get time blocks: %v", ErrInternal, err)
	}

	free := resolveFreeIntervals(rules, recurring, timeBlocks, day, dayEnd, uc.intervalMin)
	if len(free) == 0 {
		uc.logger.Info("[Execute] No free intervals on %s", day.Format("2006-01-02"))
		return response, nil
	}

	// Занятое окно растет вправо на буфер, поэтому бронирование, закончившееся
	// до полуночи, может занимать начало этих суток — запрашиваем с запасом
	bookings, err := uc.bookingRepo.GetOverlapping(ctx, day.Add(-time.Duration(uc.bufferMin)*time.Minute), dayEnd)
	if err != nil {
		uc.logger.Error("[Execute] Failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: get bookings: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	response.Slots = generateSlots(free, bookings, day, now, pkg.DurationMinutes, uc.bufferMin, uc.intervalMin)

	uc.logger.Info("[Execute] Found %d available slots for package %s on %s", len(response.Slots), pkg.ID, day.Format("2006-01-02"))

	return response, nil
}
