package get_availability

import (
	"context"
	"time"

	"github.com/rsmnv/RST-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория входных данных расписания
type ScheduleRepository interface {
	// GetActiveRulesForWeekday возвращает активные правила рабочих часов дня недели
	GetActiveRulesForWeekday(ctx context.Context, weekday int) ([]*domain.AvailabilityRule, error)
	// GetRecurringBlocksForWeekday возвращает еженедельные блокировки дня недели
	GetRecurringBlocksForWeekday(ctx context.Context, weekday int) ([]*domain.RecurringBlock, error)
	// GetTimeBlocksInRange возвращает разовые блокировки, пересекающие [from, to)
	GetTimeBlocksInRange(ctx context.Context, from, to time.Time) ([]*domain.TimeBlock, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOverlapping возвращает занимающие расписание бронирования в [start, end)
	GetOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// PackageRepository интерфейс репозитория каталога пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Package, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
