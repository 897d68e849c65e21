package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftmind/shiftmind-backend-go/internal/domain/forecast"
	"github.com/shiftmind/shiftmind-backend-go/internal/handler/http/middleware"
	"github.com/shiftmind/shiftmind-backend-go/internal/handler/http/response"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/validator"
)

type ForecastHandler interface {
	GenerateWeekForecast(w http.ResponseWriter, r *http.Request)
}

type forecastHandlerImpl struct {
	forecastService forecast.ForecastService
}

func NewForecastHandler(forecastService forecast.ForecastService) ForecastHandler {
	return &forecastHandlerImpl{
		forecastService: forecastService,
	}
}

// GenerateWeekForecast implements ForecastHandler
func (h *forecastHandlerImpl) GenerateWeekForecast(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.BusinessID(r.Context())

	week := chi.URLParam(r, "week")
	if _, ok := validator.IsValidWeek(week); !ok {
		response.BadRequest(w, "Week must be in YYYY-WNN format", nil)
		return
	}

	lookbackWeeks := 0
	if l := r.URL.Query().Get("lookback_weeks"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 || parsed > 52 {
			response.BadRequest(w, "lookback_weeks must be between 1 and 52", nil)
			return
		}
		lookbackWeeks = parsed
	}

	result, err := h.forecastService.GenerateWeekForecast(r.Context(), businessID, week, lookbackWeeks)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
