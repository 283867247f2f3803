package create_booking

import (
	"context"
	"time"

	"github.com/rsmnv/RST-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создает бронирование; использует транзакцию из контекста, если есть
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetOverlapping возвращает занимающие расписание бронирования в [start, end).
	// Внутри транзакции блокирует найденные строки (FOR UPDATE)
	GetOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// PackageRepository интерфейс репозитория каталога пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Package, error)
}

// TxManager интерфейс менеджера транзакций: проверка конфликта и вставка
// бронирования выполняются атомарно
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
