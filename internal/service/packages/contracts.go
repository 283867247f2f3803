package packages

import (
	"context"

	"github.com/rsmnv/RST-BookingService/internal/domain"
)

// PackageRepository интерфейс репозитория каталога пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Package, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
