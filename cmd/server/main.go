package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alcyxob/fitness-ai/internal/api"
	"github.com/alcyxob/fitness-ai/internal/cache"
	"github.com/alcyxob/fitness-ai/internal/config"
	"github.com/alcyxob/fitness-ai/internal/generator"
	"github.com/alcyxob/fitness-ai/internal/logging"
	"github.com/alcyxob/fitness-ai/internal/metrics"
	"github.com/alcyxob/fitness-ai/internal/oauth"
	"github.com/alcyxob/fitness-ai/internal/repository"
	"github.com/alcyxob/fitness-ai/internal/repository/mongo"
	"github.com/alcyxob/fitness-ai/internal/repository/postgres"
	"github.com/alcyxob/fitness-ai/internal/service"
	"github.com/alcyxob/fitness-ai/internal/storage"
	"github.com/alcyxob/fitness-ai/internal/tracing"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	catalogCacheSize       = 1 << 20 // 1MB
	catalogCacheTTLSeconds = 600
	shutdownTimeout        = 5 * time.Second
)

// @title Fitness AI API
// @version 1.0
// @description Generates workout lists with AI and keeps them per user.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	configPath := flag.String("config", ".", "directory holding config.yaml and .env")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.Logging.File,
		LogToStdout:      cfg.Logging.Stdout,
		LogLevel:         cfg.Logging.Level,
		LogFormatJSON:    cfg.Logging.JSON,
		SentryDSN:        cfg.Logging.SentryDSN,
		SentryServerName: "fitness-ai",
		Environment:      cfg.Logging.Environment,
	})
	log.Println("starting fitness ai server...")

	ctx := context.Background()
	closers := []func() error{
		func() error {
			logging.Flush(2 * time.Second)
			return nil
		},
	}

	// --- Tracing ---
	if cfg.Tracing.Enabled && os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Fatalln("tracing enabled, but honeycomb api key not set")
	}
	otelShutdown, err := tracing.Setup(cfg.Tracing.Enabled, "fitness-ai")
	if err != nil {
		log.Fatalf("could not set up tracing: %s", err)
	}
	closers = append(closers, func() error {
		otelShutdown()
		return nil
	})

	// --- Database Connection ---
	dbPool, err := postgres.NewPool(ctx, postgres.NewPoolParams{
		URL:            cfg.Database.URL,
		MaxConns:       cfg.Database.MaxConns,
		TracingEnabled: cfg.Tracing.Enabled,
	})
	if err != nil {
		log.Fatalf("could not create db pool: %s", err)
	}
	closers = append(closers, func() error {
		dbPool.Close()
		return nil
	})
	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}
	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, dbPool); err != nil {
			log.Fatalf("could not migrate db: %s", err)
		}
		log.Println("database schema is up to date")
	}

	// --- Metrics ---
	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "fitness_ai"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitness", "server", promRegistry)

	// --- Generation Audit (MongoDB) ---
	var auditRepo repository.GenerationRepository
	if cfg.Mongo.Enabled {
		mongoClient, err := mongo.ConnectDB(ctx, cfg.Mongo.URI)
		if err != nil {
			log.Fatalf("could not connect to MongoDB: %s", err)
		}
		closers = append(closers, func() error {
			return mongo.DisconnectDB(mongoClient)
		})
		auditDB := mongoClient.Database(cfg.Mongo.Name)
		auditRepo = mongo.NewGenerationRepo(auditDB)

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			mongo.EnsureGenerationIndexes(ctx, mongo.GenerationCollection(auditDB))
			log.Println("generation audit indexes ensured")
		}()
	} else {
		log.Println("generation audit disabled")
	}

	// --- Redis: list cache and generation rate limit ---
	var listCache cache.WorkoutListCache = cache.NoopWorkoutListCache{}
	var limiter cache.GenerationLimiter = cache.NoopGenerationLimiter{}
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if cfg.Tracing.Enabled {
			rdb.AddHook(redisotel.NewTracingHook())
		}
		closers = append(closers, rdb.Close)

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Errorf("failed to ping redis: %s", err)
		}

		listCache = cache.NewRedisWorkoutListCache(rdb, cfg.Redis.CacheTTL, metricsManager)
		if cfg.Generation.RatePerMinute > 0 {
			limiter = cache.NewRedisGenerationLimiter(redis_rate.NewLimiter(rdb), cfg.Generation.RatePerMinute)
		}
	} else {
		log.Println("redis disabled, workout lists are not cached and generation is not rate limited")
	}
	catalogCache := cache.NewCatalogCache(catalogCacheSize, catalogCacheTTLSeconds, metricsManager)

	// --- Exercise Generator ---
	gateway, err := generator.NewGeminiGateway(ctx, generator.Params{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		log.Fatalf("could not create gemini client: %s", err)
	}

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(dbPool)
	referenceRepo := postgres.NewReferenceRepo(dbPool)
	workoutListRepo := postgres.NewWorkoutListRepo(dbPool)
	exerciseRepo := postgres.NewExerciseRepo(dbPool)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	referenceService := service.NewReferenceService(referenceRepo, catalogCache)
	workoutService := service.NewWorkoutService(service.WorkoutServiceParams{
		Tx:         postgres.NewTransactor(dbPool),
		Lists:      workoutListRepo,
		Exercises:  exerciseRepo,
		References: referenceRepo,
		Generator:  gateway,
		Audit:      auditRepo,
		Cache:      listCache,
		Limiter:    limiter,
		Metrics:    metricsManager,
	})

	var generationService service.GenerationService
	if auditRepo != nil {
		generationService = service.NewGenerationService(auditRepo)
	}

	// --- Export Storage (S3) ---
	var exportService service.ExportService
	if cfg.S3.Enabled() {
		fileStorage, err := storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("could not initialize S3 storage: %s", err)
		}
		exportService = service.NewExportService(workoutService, fileStorage, cfg.S3.PresignExpiry)
	} else {
		log.Println("no export bucket configured, export route disabled")
	}

	// --- Gin Engine & Routes ---
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := api.NewRouter(api.RouteParams{
		AuthService:       authService,
		WorkoutService:    workoutService,
		ReferenceService:  referenceService,
		ExportService:     exportService,
		GenerationService: generationService,
		Google:            oauth.NewGoogleVerifier(cfg.OAuth.GoogleClientID),
		Strava:            oauth.NewStravaExchanger(cfg.OAuth.StravaClientID, cfg.OAuth.StravaClientSecret, oauth.StravaEndpoint),
		Metrics:           metricsManager,
		Registry:          promRegistry,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	err = server.Shutdown(ctxShutdown)
	for i := len(closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, closers[i]())
	}
	if err != nil {
		log.Errorf("unclean shutdown: %s", err)
		os.Exit(1)
	}

	log.Println("server exiting")
}
