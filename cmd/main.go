package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createScheduleHandler "github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers/create_schedule"
	deactivateScheduleHandler "github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers/deactivate_schedule"
	deactivateSchedulesHandler "github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers/deactivate_schedules"
	getDayGridHandler "github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers/get_day_grid"
	getScheduleHandler "github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers/get_schedule"
	getScheduleGridHandler "github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers/get_schedule_grid"
	getSchedulesHandler "github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers/get_schedules"
	updateScheduleHandler "github.com/m04kA/ClubCourt-ScheduleService/internal/api/handlers/update_schedule"
	"github.com/m04kA/ClubCourt-ScheduleService/internal/api/middleware"
	"github.com/m04kA/ClubCourt-ScheduleService/internal/config"
	courtRepo "github.com/m04kA/ClubCourt-ScheduleService/internal/infra/storage/court"
	scheduleRepo "github.com/m04kA/ClubCourt-ScheduleService/internal/infra/storage/schedule"
	schedulesService "github.com/m04kA/ClubCourt-ScheduleService/internal/service/schedules"
	buildDayGridUC "github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/build_day_grid"
	buildGridUC "github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/build_grid"
	createScheduleUC "github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/create_schedule"
	updateScheduleUC "github.com/m04kA/ClubCourt-ScheduleService/internal/usecase/update_schedule"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/logger"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/metrics"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/ClubCourt-ScheduleService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ClubCourt-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		scheduleRepository *scheduleRepo.Repository
		courtRepository    *courtRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		scheduleRepository = scheduleRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	scheduleSvc := schedulesService.NewService(
		scheduleRepository,
		log,
	)

	// Инициализируем use cases
	createScheduleUseCase := createScheduleUC.NewUseCase(
		scheduleRepository,
		txMgr,
		log,
	)

	updateScheduleUseCase := updateScheduleUC.NewUseCase(
		scheduleRepository,
		txMgr,
		log,
	)

	buildGridUseCase := buildGridUC.NewUseCase(
		scheduleRepository,
		courtRepository,
		log,
	)

	buildDayGridUseCase := buildDayGridUC.NewUseCase(
		scheduleRepository,
		courtRepository,
		log,
	)

	// Инициализируем handlers
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	updateSchedule := updateScheduleHandler.NewHandler(updateScheduleUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	getSchedules := getSchedulesHandler.NewHandler(scheduleSvc, log)
	deactivateSchedule := deactivateScheduleHandler.NewHandler(scheduleSvc, log)
	deactivateSchedules := deactivateSchedulesHandler.NewHandler(scheduleSvc, log)
	getScheduleGrid := getScheduleGridHandler.NewHandler(buildGridUseCase, log)
	getDayGrid := getDayGridHandler.NewHandler(buildDayGridUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Расписание ---
	// Создание занятия
	api.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)

	// Пакетная деактивация занятий (до /{scheduleId}, иначе mux сматчит "deactivate" как ID)
	api.HandleFunc("/schedules/deactivate", deactivateSchedules.Handle).Methods(http.MethodPost)

	// Список занятий за период
	api.HandleFunc("/schedules", getSchedules.Handle).Methods(http.MethodGet)

	// Получение занятия по ID
	api.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)

	// Обновление занятия
	api.HandleFunc("/schedules/{scheduleId}", updateSchedule.Handle).Methods(http.MethodPut)

	// Деактивация занятия (soft delete)
	api.HandleFunc("/schedules/{scheduleId}/deactivate", deactivateSchedule.Handle).Methods(http.MethodPatch)

	// --- Сетка занятости ---
	// Недельная сетка (или однодневная по pickDate)
	api.HandleFunc("/schedule-grid", getScheduleGrid.Handle).Methods(http.MethodGet)

	// Однодневная сетка для мобильного клиента
	api.HandleFunc("/schedule-grid/day", getDayGrid.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
