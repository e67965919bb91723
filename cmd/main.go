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

	createStocksHandler "github.com/m04kA/SMC-EventStockService/internal/api/handlers/create_recurring_stocks"
	deleteStockHandler "github.com/m04kA/SMC-EventStockService/internal/api/handlers/delete_stock"
	exportCalendarHandler "github.com/m04kA/SMC-EventStockService/internal/api/handlers/export_offer_calendar"
	getOfferStocksHandler "github.com/m04kA/SMC-EventStockService/internal/api/handlers/get_offer_stocks"
	previewStocksHandler "github.com/m04kA/SMC-EventStockService/internal/api/handlers/preview_recurring_stocks"
	"github.com/m04kA/SMC-EventStockService/internal/api/middleware"
	"github.com/m04kA/SMC-EventStockService/internal/config"
	stockRepo "github.com/m04kA/SMC-EventStockService/internal/infra/storage/stock"
	offerServiceClient "github.com/m04kA/SMC-EventStockService/internal/integrations/offerservice"
	stocksService "github.com/m04kA/SMC-EventStockService/internal/service/stocks"
	"github.com/m04kA/SMC-EventStockService/internal/stockgen"
	"github.com/m04kA/SMC-EventStockService/internal/timezone"
	createStocksUC "github.com/m04kA/SMC-EventStockService/internal/usecase/create_recurring_stocks"
	previewStocksUC "github.com/m04kA/SMC-EventStockService/internal/usecase/preview_recurring_stocks"
	"github.com/m04kA/SMC-EventStockService/internal/usecase/recurrence_plan"
	"github.com/m04kA/SMC-EventStockService/pkg/dbmetrics"
	"github.com/m04kA/SMC-EventStockService/pkg/logger"
	"github.com/m04kA/SMC-EventStockService/pkg/metrics"
	"github.com/m04kA/SMC-EventStockService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-EventStockService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены).
	// Коллекторы передаются как интерфейсы: nil *metrics.Metrics в интерфейсе не равен nil
	var (
		dbCollector        dbmetrics.Collector
		generationObserver createStocksUC.GenerationObserver
		metricsCollector   *metrics.Metrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
		generationObserver = metricsCollector
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

	// Обертка нужна и без метрик: через нее работает txmanager
	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)

	// Инициализируем интеграционных клиентов
	offerClient := offerServiceClient.NewClient(
		cfg.OfferService.URL,
		time.Duration(cfg.OfferService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (OfferService=%s timeout=%ds)",
		cfg.OfferService.URL, cfg.OfferService.Timeout)

	// Инициализируем репозитории
	stockRepository := stockRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Генерация стоков
	planner := recurrence_plan.NewPlanner(
		offerClient,
		stockgen.NewExpander(),
		timezone.LocalToUTC,
		recurrence_plan.Limits{
			MaxStocksPerRequest:   cfg.Generation.MaxStocksPerRequest,
			MaxIntervalDays:       cfg.Generation.MaxIntervalDays,
			DefaultDepartmentCode: cfg.Generation.DefaultDepartmentCode,
		},
		log,
	)

	// Инициализируем сервисы
	stockSvc := stocksService.NewService(
		stockRepository,
		txMgr,
		offerClient,
		log,
	)

	// Инициализируем use cases
	createStocksUseCase := createStocksUC.NewUseCase(
		planner,
		stockRepository,
		txMgr,
		generationObserver,
		cfg.Generation.MaxStocksPerOffer,
		log,
	)
	previewStocksUseCase := previewStocksUC.NewUseCase(planner, log)

	// Инициализируем handlers
	createStocks := createStocksHandler.NewHandler(createStocksUseCase, log)
	previewStocks := previewStocksHandler.NewHandler(previewStocksUseCase, log)
	getOfferStocks := getOfferStocksHandler.NewHandler(stockSvc, log)
	exportCalendar := exportCalendarHandler.NewHandler(stockSvc, log)
	deleteStock := deleteStockHandler.NewHandler(stockSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Генерация стоков по правилу повторения ---
	api.HandleFunc("/offers/{offerId}/stocks/recurrence", createStocks.Handle).Methods(http.MethodPost)
	api.HandleFunc("/offers/{offerId}/stocks/recurrence/preview", previewStocks.Handle).Methods(http.MethodPost)

	// --- Стоки оффера ---
	api.HandleFunc("/offers/{offerId}/stocks", getOfferStocks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/offers/{offerId}/stocks.ics", exportCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stocks/{stockId}", deleteStock.Handle).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

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
