package list_packages

import (
	"context"

	"github.com/rsmnv/RST-BookingService/internal/service/packages/models"
)

type PackagesService interface {
	List(ctx context.Context) (*models.PackageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
