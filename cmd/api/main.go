package main

import (
	"fmt"
	"net/http"

	"github.com/shiftmind/shiftmind-backend-go/internal/config"
	appHTTP "github.com/shiftmind/shiftmind-backend-go/internal/handler/http"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/database"
	"github.com/shiftmind/shiftmind-backend-go/internal/repository/postgresql"
	calendarService "github.com/shiftmind/shiftmind-backend-go/internal/service/calendar"
	employeeService "github.com/shiftmind/shiftmind-backend-go/internal/service/employee"
	forecastService "github.com/shiftmind/shiftmind-backend-go/internal/service/forecast"
	scheduleService "github.com/shiftmind/shiftmind-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	profileRepo := postgresql.NewDemandProfileRepository(db)
	overrideRepo := postgresql.NewCalendarOverrideRepository(db)
	eventRepo := postgresql.NewBusinessEventRepository(db)
	demandHistoryRepo := postgresql.NewDemandHistoryRepository(db)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, shiftRepo)
	scheduleSvc := scheduleService.NewScheduleService(shiftRepo, employeeRepo)
	calendarSvc := calendarService.NewCalendarService(profileRepo, overrideRepo, eventRepo)
	forecastSvc := forecastService.NewForecastService(demandHistoryRepo, profileRepo, overrideRepo, eventRepo, cfg.Forecast.DefaultLookbackWeeks)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	forecastHandler := appHTTP.NewForecastHandler(forecastSvc)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		scheduleHandler,
		calendarHandler,
		forecastHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
