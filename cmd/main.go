package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers/cancel_move_reservation"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/create_move_reservation"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/create_visit_reservation"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/get_dongs"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/get_donghos"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/get_move_calendar"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/get_move_event"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/get_move_slots"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/get_my_reservation"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/get_visit_calendar"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/get_visit_event"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/get_visit_slots"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/move_login"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/move_logout"
	"github.com/m04kA/APT-ReservationService/internal/api/handlers/move_selection"
	"github.com/m04kA/APT-ReservationService/internal/api/middleware"
	"github.com/m04kA/APT-ReservationService/internal/config"
	"github.com/m04kA/APT-ReservationService/internal/integrations/customerapi"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	"github.com/m04kA/APT-ReservationService/internal/integrations/previsitapi"
	"github.com/m04kA/APT-ReservationService/internal/service/events"
	"github.com/m04kA/APT-ReservationService/internal/service/movesession"
	"github.com/m04kA/APT-ReservationService/internal/service/reservations"
	"github.com/m04kA/APT-ReservationService/internal/service/units"
	"github.com/m04kA/APT-ReservationService/internal/session"
	uc_create_move_reservation "github.com/m04kA/APT-ReservationService/internal/usecase/create_move_reservation"
	uc_create_visit_reservation "github.com/m04kA/APT-ReservationService/internal/usecase/create_visit_reservation"
	uc_get_move_calendar "github.com/m04kA/APT-ReservationService/internal/usecase/get_move_calendar"
	uc_get_visit_calendar "github.com/m04kA/APT-ReservationService/internal/usecase/get_visit_calendar"
	uc_get_visit_slots "github.com/m04kA/APT-ReservationService/internal/usecase/get_visit_slots"
	"github.com/m04kA/APT-ReservationService/pkg/logger"
	"github.com/m04kA/APT-ReservationService/pkg/metrics"
)

const configPath = "config.toml"

// uuidPattern ограничивает {uuid} в маршрутах, чтобы /move/{uuid}
// не перехватывал защищенные маршруты вида /move/calendar
const uuidPattern = "[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}"

func main() {
	// 1. Загрузка конфигурации
	cfg, err := config.Load(configPath)
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	// 2. Инициализация логгера
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		stdlog.Fatalf("Failed to init logger: %v", err)
	}
	defer log.Close()

	log.Info("Starting APT-ReservationService")

	// 3. Инициализация метрик
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled: service=%s path=%s", cfg.Metrics.ServiceName, cfg.Metrics.Path)
	}

	// 4. Клиенты backend API
	previsitClient := previsitapi.NewClient(
		cfg.PrevisitAPI.URL,
		time.Duration(cfg.PrevisitAPI.Timeout)*time.Second,
		metricsCollector,
		log,
	)

	moveFactory := moveapi.NewFactory(
		cfg.MoveAPI.URL,
		time.Duration(cfg.MoveAPI.Timeout)*time.Second,
		metricsCollector,
		log,
	)

	tokens := customerapi.NewTokenStore(cfg.CustomerAPI.AccessToken, cfg.CustomerAPI.RefreshToken)
	customerClient := customerapi.NewClient(
		cfg.CustomerAPI.URL,
		time.Duration(cfg.CustomerAPI.Timeout)*time.Second,
		tokens,
		metricsCollector,
		log,
	)

	// 5. Хранилище сессий
	sessionStore := session.NewStore(
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		session.RealTimeProvider{},
		metricsCollector,
	)

	// 6. Сервисы
	// Публичная информация о событии въезда запрашивается
	// анонимным клиентом без авторизации
	eventsService := events.NewService(previsitClient, moveFactory.NewClient(), log)
	unitsService := units.NewService(customerClient, log)
	moveSessionService := movesession.NewService(sessionStore, moveFactory, log)
	reservationsService := reservations.NewService(log)

	// 7. Use cases
	getVisitCalendarUseCase := uc_get_visit_calendar.NewUseCase(eventsService, previsitClient, log)
	getVisitSlotsUseCase := uc_get_visit_slots.NewUseCase(eventsService, previsitClient, log)
	createVisitReservationUseCase := uc_create_visit_reservation.NewUseCase(eventsService, previsitClient, log)
	getMoveCalendarUseCase := uc_get_move_calendar.NewUseCase(moveSessionService, log)
	createMoveReservationUseCase := uc_create_move_reservation.NewUseCase(moveSessionService, log)

	// 8. Handlers
	getVisitEventHandler := get_visit_event.NewHandler(eventsService, log)
	getVisitCalendarHandler := get_visit_calendar.NewHandler(getVisitCalendarUseCase, log)
	getVisitSlotsHandler := get_visit_slots.NewHandler(getVisitSlotsUseCase, log)
	createVisitReservationHandler := create_visit_reservation.NewHandler(createVisitReservationUseCase, log)
	getDongsHandler := get_dongs.NewHandler(unitsService, log)
	getDonghosHandler := get_donghos.NewHandler(unitsService, log)

	getMoveEventHandler := get_move_event.NewHandler(eventsService, log)
	moveLoginHandler := move_login.NewHandler(moveSessionService, cfg.Session.CookieMaxAgeSec, log)
	moveLogoutHandler := move_logout.NewHandler(moveSessionService, log)
	getMoveCalendarHandler := get_move_calendar.NewHandler(getMoveCalendarUseCase, log)
	getMoveSlotsHandler := get_move_slots.NewHandler(moveSessionService, log)
	moveSelectionHandler := move_selection.NewHandler(moveSessionService, log)
	createMoveReservationHandler := create_move_reservation.NewHandler(createMoveReservationUseCase, log)
	getMyReservationHandler := get_my_reservation.NewHandler(reservationsService, log)
	cancelMoveReservationHandler := cancel_move_reservation.NewHandler(reservationsService, log)

	// 9. Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты: события, календарь и слоты сеансов
	// предварительного визита, справочники домов/квартир, вход
	api.HandleFunc("/visit/{uuid:"+uuidPattern+"}", getVisitEventHandler.Handle).
		Methods(http.MethodGet)
	api.HandleFunc("/visit/project/{projectId:[0-9]+}/{uuid:"+uuidPattern+"}", getVisitEventHandler.HandleForProject).
		Methods(http.MethodGet)
	api.HandleFunc("/visit/{uuid:"+uuidPattern+"}/calendar", getVisitCalendarHandler.Handle).
		Methods(http.MethodGet)
	api.HandleFunc("/visit/{uuid:"+uuidPattern+"}/slots", getVisitSlotsHandler.Handle).
		Methods(http.MethodGet)
	api.HandleFunc("/visit/{uuid:"+uuidPattern+"}/reservations", createVisitReservationHandler.Handle).
		Methods(http.MethodPost)

	api.HandleFunc("/projects/{projectId:[0-9]+}/dongs", getDongsHandler.Handle).
		Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId:[0-9]+}/donghos", getDonghosHandler.Handle).
		Methods(http.MethodGet)

	api.HandleFunc("/move/{uuid:"+uuidPattern+"}", getMoveEventHandler.Handle).
		Methods(http.MethodGet)
	api.HandleFunc("/move/{uuid:"+uuidPattern+"}/login", moveLoginHandler.Handle).
		Methods(http.MethodPost)

	// Защищенные маршруты: требуют cookie активной сессии
	protected := api.PathPrefix("/move").Subrouter()
	protected.Use(middleware.Session(sessionStore, log))

	protected.HandleFunc("/logout", moveLogoutHandler.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar", getMoveCalendarHandler.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots", getMoveSlotsHandler.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/selection", moveSelectionHandler.HandleState).Methods(http.MethodGet)
	protected.HandleFunc("/selection", moveSelectionHandler.HandleClear).Methods(http.MethodDelete)
	protected.HandleFunc("/selection/date", moveSelectionHandler.HandleDate).Methods(http.MethodPost)
	protected.HandleFunc("/selection/time", moveSelectionHandler.HandleTime).Methods(http.MethodPost)
	protected.HandleFunc("/selection/line", moveSelectionHandler.HandleLine).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", createMoveReservationHandler.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/my-reservation", getMyReservationHandler.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", cancelMoveReservationHandler.Handle).
		Methods(http.MethodDelete)

	// 10. HTTP-сервер
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed: %v", err)
		}
	}()

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
