package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/costing"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/shift"
	"github.com/shiftmind/shiftmind-backend-go/internal/handler/http/middleware"
	"github.com/shiftmind/shiftmind-backend-go/internal/handler/http/response"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/validator"
)

type ScheduleHandler interface {
	ListShifts(w http.ResponseWriter, r *http.Request)
	CreateShift(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
	RelocateShift(w http.ResponseWriter, r *http.Request)
	GetWeekSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService costing.ScheduleService
}

func NewScheduleHandler(scheduleService costing.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// ListShifts implements ScheduleHandler
func (h *scheduleHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	results, err := h.scheduleService.ListShifts(r.Context(), businessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateShift implements ScheduleHandler
func (h *scheduleHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CreateShift(r.Context(), businessID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", result)
}

// UpdateShift implements ScheduleHandler
func (h *scheduleHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.UpdateShift(r.Context(), id, businessID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteShift implements ScheduleHandler
func (h *scheduleHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.scheduleService.DeleteShift(r.Context(), id, businessID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// RelocateShift implements ScheduleHandler
func (h *scheduleHandlerImpl) RelocateShift(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req shift.RelocateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.RelocateShift(r.Context(), id, businessID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWeekSchedule implements ScheduleHandler
func (h *scheduleHandlerImpl) GetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	week := chi.URLParam(r, "week")
	if _, ok := validator.IsValidWeek(week); !ok {
		response.BadRequest(w, "Week must be in YYYY-WNN format", nil)
		return
	}

	opts := costing.WeekScheduleOptions{}
	if b := r.URL.Query().Get("weekly_budget"); b != "" {
		budget, err := strconv.ParseFloat(b, 64)
		if err != nil || budget < 0 {
			response.BadRequest(w, "weekly_budget must be a non-negative number", nil)
			return
		}
		opts.WeeklyBudget = budget
	}
	if c := r.URL.Query().Get("include_cancelled"); c != "" {
		opts.IncludeCancelled = c == "true" || c == "1"
	}

	result, err := h.scheduleService.GetWeekSchedule(r.Context(), businessID, week, opts)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
