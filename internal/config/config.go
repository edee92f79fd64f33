package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DatabaseType string

const (
	MongoDB DatabaseType = "mongodb"
	SQLite  DatabaseType = "sqlite"
)

const defaultTokenTTLMinutes = 30

type Config struct {
	JwtKey       []byte
	TokenTTL     time.Duration
	DatabaseType DatabaseType
	// MongoDB config
	MongoURI string
	// SQLite config
	SQLitePath string
	// Common configs
	DatabaseName string
	Port         string
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is not set")
	}

	tokenTTL := defaultTokenTTLMinutes * time.Minute
	if raw := os.Getenv("TOKEN_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL_MINUTES must be a positive integer, got %q", raw)
		}
		tokenTTL = time.Duration(minutes) * time.Minute
	}

	databaseName := os.Getenv("DATABASE_NAME")
	if databaseName == "" {
		databaseName = "todos"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	// Determine database type
	dbType := os.Getenv("DATABASE_TYPE")
	if dbType == "" {
		dbType = string(SQLite) // Default to SQLite
	}

	config := &Config{
		JwtKey:       []byte(jwtSecret),
		TokenTTL:     tokenTTL,
		DatabaseType: DatabaseType(dbType),
		DatabaseName: databaseName,
		Port:         port,
	}

	// Configure based on database type
	if config.DatabaseType == MongoDB {
		mongoURI := os.Getenv("MONGODB_URI")
		if mongoURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is not set")
		}
		config.MongoURI = mongoURI
	} else if config.DatabaseType == SQLite {
		sqlitePath := os.Getenv("SQLITE_PATH")
		if sqlitePath == "" {
			// Default to a data directory in the current directory
			sqlitePath = filepath.Join("data", fmt.Sprintf("%s.db", databaseName))
		}
		config.SQLitePath = sqlitePath
	} else {
		return nil, fmt.Errorf("unsupported DATABASE_TYPE: %s", dbType)
	}

	return config, nil
}
