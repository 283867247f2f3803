package get_availability

import (
	"fmt"
	"strings"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if strings.TrimSpace(req.PackageID) == "" {
		return fmt.Errorf("%w: packageId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
