package get_package

import (
	"context"

	"github.com/rsmnv/RST-BookingService/internal/service/packages/models"
)

type PackagesService interface {
	GetByID(ctx context.Context, id string) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
