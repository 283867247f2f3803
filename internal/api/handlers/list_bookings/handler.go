package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/rsmnv/RST-BookingService/internal/api/handlers"
	"github.com/rsmnv/RST-BookingService/internal/domain"
	bookingsService "github.com/rsmnv/RST-BookingService/internal/service/bookings"
	"github.com/rsmnv/RST-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgInvalidStatus = "invalid status filter"
)

type Handler struct {
	service  BookingsService
	location *time.Location
	logger   Logger
}

func NewHandler(service BookingsService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/bookings?date=...&from=...&to=...&status=...&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	// date — сокращение для одного дня, эквивалент from=date&to=date
	if date := query.Get("date"); date != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, date, h.location)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		endOfDay := parsed.AddDate(0, 0, 1)
		req.StartDate = &parsed
		req.EndDate = &endOfDay
	}

	if from := query.Get("from"); from != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, from, h.location)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &parsed
	}

	if to := query.Get("to"); to != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, to, h.location)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		// Верхняя граница эксклюзивна: запрошенный день включается целиком
		endOfDay := parsed.AddDate(0, 0, 1)
		req.EndDate = &endOfDay
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidStatus):
			h.logger.Warn("GET /admin/bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
