package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/shiftmind/shiftmind-backend-go/internal/config"
	"github.com/shiftmind/shiftmind-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	calendarHandler CalendarHandler,
	forecastHandler ForecastHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftmind"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// every route is scoped by the business_id query parameter
		r.Group(func(r chi.Router) {
			r.Use(middleware.BusinessRequired)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Put("/{id}", employeeHandler.UpdateEmployee)
				r.Delete("/{id}", employeeHandler.DeleteEmployee)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListShifts)
				r.Post("/", scheduleHandler.CreateShift)
				r.Put("/{id}", scheduleHandler.UpdateShift)
				r.Delete("/{id}", scheduleHandler.DeleteShift)
				r.Post("/{id}/relocate", scheduleHandler.RelocateShift)
			})

			r.Get("/schedule/{week}", scheduleHandler.GetWeekSchedule)

			r.Route("/calendar", func(r chi.Router) {
				r.Route("/seasonal-profiles", func(r chi.Router) {
					r.Get("/", calendarHandler.ListProfiles)
					r.Post("/", calendarHandler.CreateProfile)
					r.Put("/{id}", calendarHandler.UpdateProfile)
					r.Delete("/{id}", calendarHandler.DeleteProfile)
				})

				r.Route("/overrides", func(r chi.Router) {
					r.Get("/", calendarHandler.ListOverrides)
					r.Post("/", calendarHandler.CreateOverride)
					r.Put("/{id}", calendarHandler.UpdateOverride)
					r.Delete("/{id}", calendarHandler.DeleteOverride)
				})

				r.Route("/events", func(r chi.Router) {
					r.Get("/", calendarHandler.ListEvents)
					r.Post("/", calendarHandler.CreateEvent)
					r.Put("/{id}", calendarHandler.UpdateEvent)
					r.Delete("/{id}", calendarHandler.DeleteEvent)
				})

				r.Get("/multipliers/{date}", calendarHandler.ResolveDay)
			})

			r.Get("/forecast/{week}", forecastHandler.GenerateWeekForecast)
		})
	})
	return r
}
