package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/calendar"
	"github.com/shiftmind/shiftmind-backend-go/internal/handler/http/middleware"
	"github.com/shiftmind/shiftmind-backend-go/internal/handler/http/response"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/validator"
)

type CalendarHandler interface {
	ListProfiles(w http.ResponseWriter, r *http.Request)
	CreateProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	DeleteProfile(w http.ResponseWriter, r *http.Request)

	ListOverrides(w http.ResponseWriter, r *http.Request)
	CreateOverride(w http.ResponseWriter, r *http.Request)
	UpdateOverride(w http.ResponseWriter, r *http.Request)
	DeleteOverride(w http.ResponseWriter, r *http.Request)

	ListEvents(w http.ResponseWriter, r *http.Request)
	CreateEvent(w http.ResponseWriter, r *http.Request)
	UpdateEvent(w http.ResponseWriter, r *http.Request)
	DeleteEvent(w http.ResponseWriter, r *http.Request)

	ResolveDay(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// ListProfiles implements CalendarHandler
func (h *calendarHandlerImpl) ListProfiles(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	results, err := h.calendarService.ListProfiles(r.Context(), businessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateProfile implements CalendarHandler
func (h *calendarHandlerImpl) CreateProfile(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	var req calendar.CreateDemandProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.CreateProfile(r.Context(), businessID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Seasonal profile created successfully", result)
}

// UpdateProfile implements CalendarHandler
func (h *calendarHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Profile ID is required", nil)
		return
	}

	var req calendar.UpdateDemandProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.UpdateProfile(r.Context(), id, businessID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteProfile implements CalendarHandler
func (h *calendarHandlerImpl) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Profile ID is required", nil)
		return
	}

	if err := h.calendarService.DeleteProfile(r.Context(), id, businessID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Seasonal profile deleted successfully", nil)
}

// ListOverrides implements CalendarHandler
func (h *calendarHandlerImpl) ListOverrides(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	results, err := h.calendarService.ListOverrides(r.Context(), businessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateOverride implements CalendarHandler
func (h *calendarHandlerImpl) CreateOverride(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	var req calendar.CreateCalendarOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.CreateOverride(r.Context(), businessID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Calendar override created successfully", result)
}

// UpdateOverride implements CalendarHandler
func (h *calendarHandlerImpl) UpdateOverride(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Override ID is required", nil)
		return
	}

	var req calendar.UpdateCalendarOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.UpdateOverride(r.Context(), id, businessID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteOverride implements CalendarHandler
func (h *calendarHandlerImpl) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Override ID is required", nil)
		return
	}

	if err := h.calendarService.DeleteOverride(r.Context(), id, businessID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar override deleted successfully", nil)
}

// ListEvents implements CalendarHandler
func (h *calendarHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	results, err := h.calendarService.ListEvents(r.Context(), businessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateEvent implements CalendarHandler
func (h *calendarHandlerImpl) CreateEvent(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	var req calendar.CreateBusinessEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.CreateEvent(r.Context(), businessID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Business event created successfully", result)
}

// UpdateEvent implements CalendarHandler
func (h *calendarHandlerImpl) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Event ID is required", nil)
		return
	}

	var req calendar.UpdateBusinessEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.UpdateEvent(r.Context(), id, businessID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteEvent implements CalendarHandler
func (h *calendarHandlerImpl) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Event ID is required", nil)
		return
	}

	if err := h.calendarService.DeleteEvent(r.Context(), id, businessID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business event deleted successfully", nil)
}

// ResolveDay implements CalendarHandler
func (h *calendarHandlerImpl) ResolveDay(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	date := chi.URLParam(r, "date")
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.calendarService.ResolveDay(r.Context(), businessID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
