package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
	MaxConns uint64
}

// ConfigFromEnv reads store config from environment variables.
func ConfigFromEnv() Config {
	uri := os.Getenv("MONGO_URL")
	if uri == "" {
		// default local
		uri = "mongodb://localhost:27017"
	}
	db := os.Getenv("MONGO_DB")
	if db == "" {
		db = "mycats"
	}
	return Config{URI: uri, Database: db, Timeout: 5 * time.Second, MaxConns: 20}
}

// Connect opens a mongo client and verifies connectivity with a ping.
func Connect(cfg Config) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxConns).
		SetConnectTimeout(cfg.Timeout)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}
