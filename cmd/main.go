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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/datanexus/crm-service/internal/handlers"
	"github.com/datanexus/crm-service/internal/jwt"
	"github.com/datanexus/crm-service/internal/logger"
	"github.com/datanexus/crm-service/internal/middlewares"
	"github.com/datanexus/crm-service/internal/migrations"
	"github.com/datanexus/crm-service/internal/repositories"
	"github.com/datanexus/crm-service/internal/services"
	"github.com/datanexus/crm-service/internal/uploads"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title crm-service API
// @version 1.0.0
// @description Service for managing accounts and their customer records
// @host localhost:3000
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, userCacheTTL,
		kafkaAddr, kafkaTopic,
		s3Region, s3Endpoint, s3AccessKey, s3SecretKey, s3Bucket, s3PublicBaseURL,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, userCacheTTL,
		kafkaAddr, kafkaTopic,
		s3Region, s3Endpoint, s3AccessKey, s3SecretKey, s3Bucket, s3PublicBaseURL,
		jwtSecretKey, jwtExpSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, S3, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	userCacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	s3Region, s3Endpoint, s3AccessKey, s3SecretKey, s3Bucket, s3PublicBaseURL string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "3000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "crm")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if userCacheTTLSecond, err = strconv.Atoi(getEnv("USER_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config; empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "customer-events")

	// S3 config
	s3Region = getEnv("S3_REGION", "us-east-1")
	s3Endpoint = getEnv("S3_ENDPOINT", "")
	s3AccessKey = getEnv("S3_ACCESS_KEY", "")
	s3SecretKey = getEnv("S3_SECRET_KEY", "")
	s3Bucket = getEnv("S3_BUCKET", "avatars")
	s3PublicBaseURL = getEnv("S3_PUBLIC_BASE_URL", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, S3, and HTTP server.
// It runs migrations, sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	userCacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	s3Region, s3Endpoint, s3AccessKey, s3SecretKey, s3Bucket, s3PublicBaseURL string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Run migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka event writer, optional
	var events services.KafkaWriter
	if kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		events = kw
		logger.Log.Infof("Publishing customer events to %s, topic %s", kafkaAddr, kafkaTopic)
	}

	// S3 uploader for profile images
	uploader, err := uploads.NewS3Uploader(ctx, uploads.Config{
		Region:        s3Region,
		Endpoint:      s3Endpoint,
		AccessKey:     s3AccessKey,
		SecretKey:     s3SecretKey,
		Bucket:        s3Bucket,
		PublicBaseURL: s3PublicBaseURL,
	})
	if err != nil {
		logger.Log.Errorw("S3 uploader init failed", "error", err)
		return err
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	userCacheRepo := repositories.NewUserCacheRepository(rdb, time.Duration(userCacheTTLSecond)*time.Second)
	customerReadRepo := repositories.NewCustomerReadRepository(db)
	customerWriteRepo := repositories.NewCustomerWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	currentUserService := services.NewCurrentUserService(userReadRepo, userCacheRepo)
	customerService := services.NewCustomerService(customerReadRepo, customerWriteRepo, events)
	profileService := services.NewProfileService(uploader, userWriteRepo, userReadRepo, userCacheRepo)

	// Initialize handlers
	welcomeHandler := handlers.NewWelcomeHandler()
	signupHandler := handlers.NewSignupHandler(authService, jwtSvc)
	loginHandler := handlers.NewLoginHandler(authService, jwtSvc)
	signoutHandler := handlers.NewSignoutHandler()
	homeHandler := handlers.NewHomeHandler(customerService)
	viewHandler := handlers.NewCustomerViewHandler(customerService)
	addHandler := handlers.NewCustomerAddHandler(customerService)
	updateHandler := handlers.NewCustomerUpdateHandler(customerService)
	deleteHandler := handlers.NewCustomerDeleteHandler(customerService)
	searchHandler := handlers.NewCustomerSearchHandler(customerService)
	profileHandler := handlers.NewProfileImageHandler(profileService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CurrentUserMiddleware(jwtSvc, currentUserService))

	// Public routes
	r.Get("/", welcomeHandler)
	r.Post("/signup", signupHandler)
	r.Post("/login", loginHandler)
	r.Get("/signout", signoutHandler)
	r.Get("/health", healthHandler)

	// Gated routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))

		r.Get("/home", homeHandler)
		r.Get("/view/{id}", viewHandler)
		r.Get("/edit/{id}", viewHandler)
		r.Post("/search", searchHandler)
		r.Post("/update-profile", profileHandler)

		// Mutations run inside a per-request transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))

			r.Post("/user/add", addHandler)
			r.Put("/edit/{id}", updateHandler)
			r.Delete("/edit/{id}", deleteHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
