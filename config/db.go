package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// LoadEnv loads the .env file matching APP_ENV. A missing file is not fatal:
// in production the variables usually come from the real environment.
func LoadEnv() {
	if os.Getenv("APP_ENV") == "production" {
		_ = godotenv.Load(".env.production")
		return
	}
	_ = godotenv.Load(".env")
}

// ConnectDB dials MongoDB using MONGO_URI and returns the database handle.
// The handle is passed down to the controllers; nothing global is kept.
func ConnectDB() (*mongo.Database, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI not set in environment variables")
	}

	timeout := defaultTimeout
	if raw := os.Getenv("MONGO_TIMEOUT"); raw != "" {
		duration, err := time.ParseDuration(raw + "s")
		if err != nil {
			return nil, fmt.Errorf("invalid MONGO_TIMEOUT value: %w", err)
		}
		timeout = duration
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "farmstats"
	}

	return client.Database(dbName), nil
}
