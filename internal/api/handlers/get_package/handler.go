package get_package

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rsmnv/RST-BookingService/internal/api/handlers"
	packagesService "github.com/rsmnv/RST-BookingService/internal/service/packages"
)

const msgPackageNotFound = "package not found"

type Handler struct {
	service PackagesService
	logger  Logger
}

func NewHandler(service PackagesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID := mux.Vars(r)["packageId"]

	result, err := h.service.GetByID(r.Context(), packageID)
	if err != nil {
		switch {
		case errors.Is(err, packagesService.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id} - Package not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		default:
			h.logger.Error("GET /packages/{id} - Failed: package_id=%s, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
