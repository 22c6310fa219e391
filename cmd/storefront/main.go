package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/auth"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/cache"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/catalog"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
	h "github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/http"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/publisher"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/service"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/store"
)

type Config struct {
	HTTPPort        string
	CatalogDBPath   string
	MigrationsPath  string
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    string
	JWTSecret       string
	SessionTTL      time.Duration
	DeliveryFee     string
	OwnerName       string
	OwnerEmail      string
	OwnerPassword   string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		CatalogDBPath:   getEnv("CATALOG_DB_PATH", "storefront.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "migrations"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		JWTSecret:       getEnv("JWT_SECRET", "dev-only-secret"),
		SessionTTL:      24 * time.Hour,
		DeliveryFee:     getEnv("DELIVERY_FEE", "5.99"),
		OwnerName:       getEnv("OWNER_NAME", "Restaurant Owner"),
		OwnerEmail:      getEnv("OWNER_EMAIL", "owner@foodhub.com"),
		OwnerPassword:   getEnv("OWNER_PASSWORD", "changeme"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	deliveryFee, err := decimal.NewFromString(cfg.DeliveryFee)
	if err != nil {
		log.Fatalf("Invalid DELIVERY_FEE %q: %v", cfg.DeliveryFee, err)
	}

	// Catalog: sqlite reference data, seeded by migrations
	repo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run catalog migrations: %v", err)
	}
	log.Printf("Catalog ready at %s", cfg.CatalogDBPath)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	catalogService := catalog.NewService(repo, cache.NewRedisCache(redisClient))

	authenticator := auth.NewMemoryAuthenticator()
	if err := authenticator.Seed(cfg.OwnerName, cfg.OwnerEmail, cfg.OwnerPassword, domain.RoleOwner); err != nil {
		log.Fatalf("Failed to seed owner account: %v", err)
	}

	var events publisher.EventPublisher = publisher.NopPublisher{}
	if cfg.KafkaBrokers != "" {
		kp := publisher.NewKafkaPublisher(splitBrokers(cfg.KafkaBrokers)...)
		defer kp.Close()
		events = kp
		log.Printf("Publishing order events to %s", cfg.KafkaBrokers)
	}

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.SessionTTL)

	svc := service.NewStorefrontService(
		store.NewMemoryStore(),
		catalogService,
		authenticator,
		tokens,
		events,
		deliveryFee,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      h.NewRouter(svc, tokens, cfg.RequestTimeout),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func splitBrokers(brokers string) []string {
	var result []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			result = append(result, b)
		}
	}
	return result
}
