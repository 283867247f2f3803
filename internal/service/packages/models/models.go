package models

import (
	"github.com/rsmnv/RST-BookingService/internal/domain"
)

// PackageResponse ответ с данными пакета услуги
type PackageResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"`
	Features        []string `json:"features"`
	PriceCents      int      `json:"priceCents"`
	DurationMinutes int      `json:"durationMinutes"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
}

// PackageListResponse ответ со списком пакетов
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// FromDomainPackage конвертирует domain модель в DTO
func FromDomainPackage(p *domain.Package) *PackageResponse {
	if p == nil {
		return nil
	}

	features := p.Features
	if features == nil {
		features = []string{}
	}

	return &PackageResponse{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Description:     p.Description,
		Features:        features,
		PriceCents:      p.PriceCents,
		DurationMinutes: p.DurationMinutes,
		ImageURL:        p.ImageURL,
	}
}

// FromDomainPackageList конвертирует список domain моделей в DTO
func FromDomainPackageList(packages []*domain.Package) *PackageListResponse {
	resp := &PackageListResponse{
		Packages: make([]PackageResponse, 0, len(packages)),
	}

	for _, pkg := range packages {
		if pkgResp := FromDomainPackage(pkg); pkgResp != nil {
			resp.Packages = append(resp.Packages, *pkgResp)
		}
	}

	return resp
}
