package packages

import (
	"context"
	"errors"
	"fmt"

	packageRepo "github.com/rsmnv/RST-BookingService/internal/infra/storage/pkgcatalog"
	"github.com/rsmnv/RST-BookingService/internal/service/packages/models"
)

// Service сервис каталога пакетов (публичная поверхность)
type Service struct {
	packageRepo PackageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(packageRepo PackageRepository, logger Logger) *Service {
	return &Service{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// List получает опубликованные пакеты каталога
func (s *Service) List(ctx context.Context) (*models.PackageListResponse, error) {
	s.logger.Info("List: fetching active packages")

	packages, err := s.packageRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d packages", len(packages))
	return models.FromDomainPackageList(packages), nil
}

// GetByID получает пакет по ID. Неопубликованные пакеты наружу не отдаются
func (s *Service) GetByID(ctx context.Context, id string) (*models.PackageResponse, error) {
	s.logger.Info("GetByID: fetching package id=%s", id)

	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("GetByID: package id=%s not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetByID: repository error for package id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !pkg.IsActive {
		s.logger.Warn("GetByID: package id=%s is not active", id)
		return nil, ErrPackageNotFound
	}

	return models.FromDomainPackage(pkg), nil
}
