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
	"github.com/redis/go-redis/v9"

	deleteFlowRecordHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/delete_flow_record"
	flowBackHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/flow_back"
	flowInputHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/flow_input"
	getFlowHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/get_flow"
	getFlowRecordHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/get_flow_record"
	getStepSchemaHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/get_step_schema"
	lookupAddressHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/lookup_address"
	matchProvidersHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/match_providers"
	putFlowRecordHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/put_flow_record"
	startFlowHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/start_flow"
	submitFlowHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/submit_flow"
	validateStepHandler "github.com/m04kA/SMC-IntakeService/internal/api/handlers/validate_step"
	"github.com/m04kA/SMC-IntakeService/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeService/internal/cache"
	"github.com/m04kA/SMC-IntakeService/internal/config"
	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/flows/abonnement"
	"github.com/m04kA/SMC-IntakeService/internal/infra/storage/flowstore"
	accountServiceClient "github.com/m04kA/SMC-IntakeService/internal/integrations/accountservice"
	addressServiceClient "github.com/m04kA/SMC-IntakeService/internal/integrations/addressservice"
	pricingServiceClient "github.com/m04kA/SMC-IntakeService/internal/integrations/pricingservice"
	providerServiceClient "github.com/m04kA/SMC-IntakeService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-IntakeService/internal/schema"
	intakeService "github.com/m04kA/SMC-IntakeService/internal/service/intake"
	recordsService "github.com/m04kA/SMC-IntakeService/internal/service/records"
	matchProvidersUC "github.com/m04kA/SMC-IntakeService/internal/usecase/match_providers"
	"github.com/m04kA/SMC-IntakeService/pkg/logger"
	"github.com/m04kA/SMC-IntakeService/pkg/metrics"
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

	log.Info("Starting SMC-IntakeService...")
	log.Info("Configuration loaded from config.toml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Метрики передаются в слои как интерфейсы; при выключенных метриках остаются nil
	var (
		metricsCollector *metrics.Metrics
		storeMetrics     flowstore.Metrics
		matchMetrics     matchProvidersUC.Metrics
		submitMetrics    intakeService.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		storeMetrics = metricsCollector
		matchMetrics = metricsCollector
		submitMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем backend хранилища
	var backend flowstore.Backend
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		backend = flowstore.NewPostgresBackend(db)

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		redisBackend, err := flowstore.NewRedisBackend(flowstore.RedisConfig{
			Client:    client,
			KeyPrefix: cfg.Storage.KeyPrefix,
		})
		if err != nil {
			log.Fatal("Failed to initialize redis backend: %v", err)
		}
		defer redisBackend.Close()
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

		backend = redisBackend

	default:
		log.Warn("Using in-memory storage, state is lost on restart")
		backend = flowstore.NewMemoryBackend()
	}

	store := flowstore.NewStore(backend, log, storeMetrics)

	// Загружаем схемы шагов
	steps := schema.Default()
	if cfg.Schemas.File != "" {
		steps, err = schema.LoadFile(cfg.Schemas.File)
		if err != nil {
			log.Fatal("Failed to load step schemas: %v", err)
		}
	}
	registry := schema.NewRegistry(steps)
	log.Info("Step schemas loaded: %v", registry.Names())

	if cfg.Schemas.Watch && cfg.Schemas.File != "" {
		watcher := schema.NewWatcher(cfg.Schemas.File, registry, log)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Error("Schema watcher stopped: %v", err)
			}
		}()
	}

	// Инициализируем интеграционных клиентов
	addressClient := addressServiceClient.NewClient(
		cfg.AddressService.URL,
		cfg.AddressService.TimeoutDuration(),
		log,
	)
	providerClient := providerServiceClient.NewClient(
		cfg.ProviderService.URL,
		cfg.ProviderService.TimeoutDuration(),
		log,
	)
	pricingClient := pricingServiceClient.NewClient(
		cfg.PricingService.URL,
		cfg.PricingService.TimeoutDuration(),
		log,
	)
	accountClient := accountServiceClient.NewClient(
		cfg.AccountService.URL,
		cfg.AccountService.TimeoutDuration(),
		log,
	)
	log.Info("Integration clients initialized (AddressService=%s, ProviderService=%s, PricingService=%s, AccountService=%s)",
		cfg.AddressService.URL, cfg.ProviderService.URL, cfg.PricingService.URL, cfg.AccountService.URL)

	// Конфигурация цен загружается один раз на весь процесс
	pricingCache := cache.New[*pricingServiceClient.Config](pricingClient.GetConfig)

	// Инициализируем use cases
	matchProvidersUseCase := matchProvidersUC.NewUseCase(
		providerClient,
		cfg.Matching.TopTierLimit,
		matchMetrics,
		log,
	)

	abonnementActions := abonnement.NewActions(
		addressClient,
		accountClient,
		pricingCache,
		matchProvidersUseCase,
		abonnement.Config{MaxAdvanceDays: cfg.Planning.MaxAdvanceDays},
		log,
	)

	// Инициализируем сервисы
	recordsSvc := recordsService.NewService(store, log)
	intakeSvc := intakeService.NewService(
		[]intakeService.FlowDefinition{{
			Name:  domain.FlowAbonnement,
			Steps: abonnement.Steps,
			Bind: func(schemas []*domain.StepSchema, scope *flowstore.Scoped) error {
				return abonnementActions.Bind(schemas, scope.Flows(), scope.Global())
			},
		}},
		registry,
		store,
		submitMetrics,
		log,
	)

	// Инициализируем handlers
	getStepSchema := getStepSchemaHandler.NewHandler(registry, log)
	validateStep := validateStepHandler.NewHandler(registry, log)
	matchProviders := matchProvidersHandler.NewHandler(matchProvidersUseCase, log)
	lookupAddress := lookupAddressHandler.NewHandler(addressClient, registry, log)
	getFlowRecord := getFlowRecordHandler.NewHandler(recordsSvc, log)
	putFlowRecord := putFlowRecordHandler.NewHandler(recordsSvc, log)
	deleteFlowRecord := deleteFlowRecordHandler.NewHandler(recordsSvc, log)
	startFlow := startFlowHandler.NewHandler(intakeSvc, log)
	flowInput := flowInputHandler.NewHandler(intakeSvc, log)
	submitFlow := submitFlowHandler.NewHandler(intakeSvc, log)
	flowBack := flowBackHandler.NewHandler(intakeSvc, log)
	getFlow := getFlowHandler.NewHandler(intakeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix; все маршруты привязаны к профилю клиента (X-Profile-ID)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Profile)

	// --- Схемы и валидация шагов ---
	api.HandleFunc("/steps/{step}/schema", getStepSchema.Handle).Methods(http.MethodGet)
	api.HandleFunc("/steps/{step}/validate", validateStep.Handle).Methods(http.MethodPost)

	// --- Подбор исполнителей и адреса ---
	api.HandleFunc("/providers/match", matchProviders.Handle).Methods(http.MethodPost)
	api.HandleFunc("/addresses/lookup", lookupAddress.Handle).Methods(http.MethodPost)

	// --- Сохраненные записи flow ---
	api.HandleFunc("/flows/{flow}/record", getFlowRecord.Handle).Methods(http.MethodGet)
	api.HandleFunc("/flows/{flow}/record", putFlowRecord.Handle).Methods(http.MethodPut)
	api.HandleFunc("/flows/{flow}/record", deleteFlowRecord.Handle).Methods(http.MethodDelete)

	// --- Сессия flow ---
	api.HandleFunc("/flows/{flow}/start", startFlow.Handle).Methods(http.MethodPost)
	api.HandleFunc("/flows/{flow}/input", flowInput.Handle).Methods(http.MethodPost)
	api.HandleFunc("/flows/{flow}/submit", submitFlow.Handle).Methods(http.MethodPost)
	api.HandleFunc("/flows/{flow}/back", flowBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/flows/{flow}", getFlow.Handle).Methods(http.MethodGet)

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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
