package employee

import (
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest(*r)
	return create.Validate()
}

type EmployeeResponse struct {
	ID         string   `json:"id"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}
	if e.HourlyRate != nil {
		rate, _ := e.HourlyRate.Float64()
		resp.HourlyRate = &rate
	}
	return resp
}
