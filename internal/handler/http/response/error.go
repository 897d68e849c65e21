package response

import (
	"errors"
	"net/http"

	"github.com/shiftmind/shiftmind-backend-go/internal/domain/calendar"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/employee"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/shift"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this business")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftMissingDate):
		BadRequest(w, "Shift has no date assigned", nil)
	case errors.Is(err, shift.ErrInvalidStartTime):
		BadRequest(w, "Start time must be in HH:MM format", nil)

	// Calendar domain errors
	case errors.Is(err, calendar.ErrProfileNotFound):
		NotFound(w, "Seasonal profile not found")
	case errors.Is(err, calendar.ErrOverrideNotFound):
		NotFound(w, "Calendar override not found")
	case errors.Is(err, calendar.ErrEventNotFound):
		NotFound(w, "Business event not found")
	case errors.Is(err, calendar.ErrIncompleteMultiplierData):
		BadRequest(w, "Multiplier data must cover all 24 hours", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
