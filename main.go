package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campusforge/showcase-backend/api"
	"github.com/campusforge/showcase-backend/auth"
	"github.com/campusforge/showcase-backend/database"
	"github.com/campusforge/showcase-backend/rolestore"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "showcase"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "showcase"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	verifier, err := newVerifier()
	if err != nil {
		fmt.Printf("Error initializing token verifier: %v\n", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		fmt.Printf("Error connecting to role store: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(api.Dependencies{
		DB:       database.New(db),
		Verifier: verifier,
		Roles:    rolestore.NewRedisStore(redisClient),
	})
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// newVerifier selects the token verifier: OIDC against the identity
// provider in production, a shared-secret HS256 verifier for local
// development.
func newVerifier() (auth.Verifier, error) {
	switch getEnv("AUTH_MODE", "hs256") {
	case "oidc":
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return auth.NewOIDCVerifier(ctx,
			os.Getenv("AUTH_ISSUER"),
			os.Getenv("AUTH_AUDIENCE"),
		)
	default:
		return auth.NewHS256Verifier(os.Getenv("JWT_SECRET"))
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
