package calendar

import (
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/timeutil"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/validator"
)

func validateMultiplierMap(field string, multipliers map[string]float64, requireFull bool) validator.ValidationErrors {
	var errs validator.ValidationErrors

	covered := 0
	for h := 0; h < HoursPerDay; h++ {
		v, ok := hourValue(multipliers, h)
		if !ok {
			continue
		}
		covered++
		if v < MinMultiplier || v > MaxMultiplier {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "multipliers must be between 0 and 10",
			})
			return errs
		}
	}

	if requireFull && covered < HoursPerDay {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: "multiplier data must cover all 24 hours",
		})
	} else if !requireFull && covered == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: "at least one valid hour entry is required",
		})
	}

	return errs
}

type CreateDemandProfileRequest struct {
	Name        string             `json:"name"`
	Kind        string             `json:"profile_type"`
	Multipliers map[string]float64 `json:"multiplier_data"`
	IsActive    *bool              `json:"is_active,omitempty"`
	Priority    int                `json:"priority"`
}

func (r *CreateDemandProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Kind, ProfileKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "profile_type",
			Message: "profile_type must be one of weekly, monthly, seasonal, holiday",
		})
	}

	errs = append(errs, validateMultiplierMap("multiplier_data", r.Multipliers, true)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDemandProfileRequest struct {
	Name        string             `json:"name"`
	Kind        string             `json:"profile_type"`
	Multipliers map[string]float64 `json:"multiplier_data"`
	IsActive    *bool              `json:"is_active,omitempty"`
	Priority    int                `json:"priority"`
}

func (r *UpdateDemandProfileRequest) Validate() error {
	create := CreateDemandProfileRequest(*r)
	return create.Validate()
}

type DemandProfileResponse struct {
	ID          string             `json:"id"`
	BusinessID  string             `json:"business_id"`
	Name        string             `json:"name"`
	Kind        string             `json:"profile_type"`
	Multipliers map[string]float64 `json:"multiplier_data"`
	IsActive    bool               `json:"is_active"`
	Priority    int                `json:"priority"`
}

func ToDemandProfileResponse(p DemandProfile) DemandProfileResponse {
	return DemandProfileResponse{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		Name:        p.Name,
		Kind:        string(p.Kind),
		Multipliers: p.Multipliers,
		IsActive:    p.IsActive,
		Priority:    p.Priority,
	}
}

type CreateCalendarOverrideRequest struct {
	Date        string             `json:"date"`
	Kind        string             `json:"override_type"`
	Multiplier  *float64           `json:"multiplier,omitempty"`
	CustomHours map[string]float64 `json:"custom_hours,omitempty"`
	Description string             `json:"description"`
	IsActive    *bool              `json:"is_active,omitempty"`
}

func (r *CreateCalendarOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Kind, OverrideKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "override_type",
			Message: "override_type must be one of holiday, closure, special_hours, high_demand",
		})
	}

	if r.Multiplier == nil && len(r.CustomHours) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "multiplier",
			Message: "either multiplier or custom_hours is required",
		})
	}

	if r.Multiplier != nil && (*r.Multiplier < MinMultiplier || *r.Multiplier > MaxMultiplier) {
		errs = append(errs, validator.ValidationError{
			Field:   "multiplier",
			Message: "multiplier must be between 0 and 10",
		})
	}

	if r.Multiplier == nil && len(r.CustomHours) > 0 {
		errs = append(errs, validateMultiplierMap("custom_hours", r.CustomHours, false)...)
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCalendarOverrideRequest struct {
	Date        string             `json:"date"`
	Kind        string             `json:"override_type"`
	Multiplier  *float64           `json:"multiplier,omitempty"`
	CustomHours map[string]float64 `json:"custom_hours,omitempty"`
	Description string             `json:"description"`
	IsActive    *bool              `json:"is_active,omitempty"`
}

func (r *UpdateCalendarOverrideRequest) Validate() error {
	create := CreateCalendarOverrideRequest(*r)
	return create.Validate()
}

type CalendarOverrideResponse struct {
	ID          string             `json:"id"`
	BusinessID  string             `json:"business_id"`
	Date        string             `json:"date"`
	Kind        string             `json:"override_type"`
	Multiplier  *float64           `json:"multiplier,omitempty"`
	CustomHours map[string]float64 `json:"custom_hours,omitempty"`
	Description string             `json:"description"`
	IsActive    bool               `json:"is_active"`
}

func ToCalendarOverrideResponse(o CalendarOverride) CalendarOverrideResponse {
	return CalendarOverrideResponse{
		ID:          o.ID,
		BusinessID:  o.BusinessID,
		Date:        timeutil.DateKey(o.Date),
		Kind:        string(o.Kind),
		Multiplier:  o.Multiplier,
		CustomHours: o.CustomHours,
		Description: o.Description,
		IsActive:    o.IsActive,
	}
}

type CreateBusinessEventRequest struct {
	Name           string         `json:"name"`
	Kind           string         `json:"event_type"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	ExpectedImpact *float64       `json:"expected_impact,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Location       *string        `json:"location,omitempty"`
	IsRecurring    bool           `json:"is_recurring"`
	Recurrence     map[string]any `json:"recurrence_pattern,omitempty"`
}

func (r *CreateBusinessEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_type",
			Message: "event_type is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.ExpectedImpact != nil && *r.ExpectedImpact < -100 {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_impact",
			Message: "expected_impact must not be below -100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBusinessEventRequest struct {
	Name           string         `json:"name"`
	Kind           string         `json:"event_type"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	ExpectedImpact *float64       `json:"expected_impact,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Location       *string        `json:"location,omitempty"`
	IsRecurring    bool           `json:"is_recurring"`
	Recurrence     map[string]any `json:"recurrence_pattern,omitempty"`
}

func (r *UpdateBusinessEventRequest) Validate() error {
	create := CreateBusinessEventRequest(*r)
	return create.Validate()
}

type BusinessEventResponse struct {
	ID             string         `json:"id"`
	BusinessID     string         `json:"business_id"`
	Name           string         `json:"name"`
	Kind           string         `json:"event_type"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	ExpectedImpact *float64       `json:"expected_impact,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Location       *string        `json:"location,omitempty"`
	IsRecurring    bool           `json:"is_recurring"`
	Recurrence     map[string]any `json:"recurrence_pattern,omitempty"`
}

func ToBusinessEventResponse(e BusinessEvent) BusinessEventResponse {
	return BusinessEventResponse{
		ID:             e.ID,
		BusinessID:     e.BusinessID,
		Name:           e.Name,
		Kind:           e.Kind,
		StartDate:      timeutil.DateKey(e.StartDate),
		EndDate:        timeutil.DateKey(e.EndDate),
		ExpectedImpact: e.ExpectedImpact,
		Description:    e.Description,
		Location:       e.Location,
		IsRecurring:    e.IsRecurring,
		Recurrence:     e.Recurrence,
	}
}

// DayMultipliersResponse is the effective curve for one date after profiles,
// overrides and events have been composed.
type DayMultipliersResponse struct {
	Date        string             `json:"date"`
	Multipliers map[string]float64 `json:"multipliers"`
}
