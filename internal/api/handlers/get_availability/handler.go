package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/rsmnv/RST-BookingService/internal/api/handlers"
	"github.com/rsmnv/RST-BookingService/internal/domain"
	getAvailability "github.com/rsmnv/RST-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingPackageID = "packageId query parameter is required"
	msgMissingDate      = "date query parameter is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgPackageNotFound  = "package not found"
)

type Handler struct {
	useCase  GetAvailabilityUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/availability?packageId=...&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID := r.URL.Query().Get("packageId")
	if packageID == "" {
		handlers.RespondBadRequest(w, msgMissingPackageID)
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Дата интерпретируется в бизнес-таймзоне
	date, err := time.ParseInLocation(domain.DateFormat, dateParam, h.location)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateParam, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), getAvailability.Request{
		PackageID: packageID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrPackageNotFound):
			h.logger.Warn("GET /availability - Package not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability - Failed: package_id=%s, date=%s, error=%v", packageID, dateParam, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d slots for package_id=%s, date=%s", len(result.Slots), packageID, dateParam)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
