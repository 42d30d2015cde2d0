package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-synth-exchange/internal/facades"
	"github.com/sbilibin2017/gw-synth-exchange/internal/handlers"
	"github.com/sbilibin2017/gw-synth-exchange/internal/jwt"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/middlewares"
	"github.com/sbilibin2017/gw-synth-exchange/internal/repositories"
	"github.com/sbilibin2017/gw-synth-exchange/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-synth-exchange API
// @version 1.0.0
// @description Settlement engine for synthetic asset exchange: oracle-priced conversions, waiting periods and drift reconciliation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// appConfig holds all application, database, Redis, Kafka, logging, and JWT
// configuration.
type appConfig struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	RateTTLSecond int

	JWTSecretKey      string
	JWTAdminSecretKey string
	JWTExpSecond      int
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (cfg appConfig, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "database")
	if cfg.PgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config, also backs the oracle rate feed
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cfg.RateTTLSecond, err = strconv.Atoi(getEnv("RATE_TTL_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; events are skipped when no brokers are configured
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "synth-exchange-events")

	// JWT config: the account secret signs user tokens, the admin secret
	// signs configuration and oracle capability tokens
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTAdminSecretKey = getEnv("JWT_ADMIN_SECRET_KEY", "my_super_admin_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server. It
// sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg appConfig) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PgHost, cfg.PgPort, cfg.PgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis, the oracle rate feed
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for exchange and settlement events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", cfg.KafkaTopic)
	} else {
		logger.Log.Warn("No Kafka brokers configured, event publishing disabled")
	}

	// Initialize JWT services: one per capability
	accountJWT := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)
	adminJWT := jwt.New(cfg.JWTAdminSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	entryReadRepo := repositories.NewEntryReadRepository(db, txGetter)
	entryWriteRepo := repositories.NewEntryWriteRepository(db, txGetter)
	balanceWriteRepo := repositories.NewBalanceWriteRepository(db, txGetter)
	balanceReadRepo := repositories.NewBalanceReadRepository(db, txGetter)
	configRepo := repositories.NewEngineConfigRepository(db, txGetter)
	rateCacheRepo := repositories.NewRateCacheRepository(rdb, time.Duration(cfg.RateTTLSecond)*time.Second)

	// Oracle facade on top of the rate feed
	oracle := facades.NewRateOracleFacade(rateCacheRepo)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, accountJWT)
	quoteService := services.NewQuoteService(oracle, configRepo)
	waitingService := services.NewWaitingPeriodService(entryReadRepo, configRepo, nil)
	settleService := services.NewSettlementService(
		entryReadRepo, entryWriteRepo, balanceWriteRepo, oracle, configRepo, kafkaWriter, nil)
	exchangeService := services.NewExchangeService(
		configRepo, oracle, quoteService, settleService, waitingService,
		balanceWriteRepo, entryWriteRepo, balanceReadRepo, kafkaWriter, nil)
	adminService := services.NewAdminService(configRepo, configRepo, rateCacheRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	exchangeHandler := handlers.NewExchangeHandler(accountJWT, exchangeService)
	quoteHandler := handlers.NewQuoteHandler(accountJWT, quoteService)
	waitingPeriodHandler := handlers.NewWaitingPeriodHandler(accountJWT, waitingService)
	balanceHandler := handlers.NewGetBalanceHandler(balanceReadRepo, accountJWT)
	settleHandler := handlers.NewSettleHandler(settleService)
	getConfigHandler := handlers.NewGetConfigHandler(adminService)
	setWaitingPeriodHandler := handlers.NewSetWaitingPeriodHandler(adminService)
	setFeeRateHandler := handlers.NewSetFeeRateHandler(adminService)
	setEnabledHandler := handlers.NewSetEnabledHandler(adminService)
	publishRateHandler := handlers.NewPublishRateHandler(adminService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes; settlement is permissionless
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
		r.With(txMiddleware).Post("/settle", settleHandler)

		// Account routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(accountJWT))
			r.With(txMiddleware).Post("/exchange", exchangeHandler)
			r.Get("/exchange/quote", quoteHandler)
			r.Get("/exchange/waiting-period", waitingPeriodHandler)
			r.Get("/balance", balanceHandler)
		})

		// Admin routes: configuration and oracle publishing
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(adminJWT))
			r.Get("/admin/config", getConfigHandler)
			r.With(txMiddleware).Put("/admin/config/waiting-period", setWaitingPeriodHandler)
			r.With(txMiddleware).Put("/admin/config/fee-rate", setFeeRateHandler)
			r.With(txMiddleware).Put("/admin/config/enabled", setEnabledHandler)
			r.Post("/admin/rates", publishRateHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
