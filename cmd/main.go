package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-api/db"
	"todo-api/internal/auth"
	"todo-api/internal/config"
	"todo-api/internal/todo"
	"todo-api/internal/user"
	"todo-api/internal/web"
	"todo-api/middleware"
)

// Global loggers for different output streams
var (
	infoLogger  = log.New(os.Stdout, "", log.LstdFlags)
	errorLogger = log.New(os.Stderr, "", log.LstdFlags)
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		errorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	factory, closeDB, err := setupStorage(cfg)
	if err != nil {
		errorLogger.Fatalf("Failed to set up storage: %v", err)
	}
	defer closeDB()

	userRepo := factory.NewUserRepository()
	todoRepo := factory.NewTodoRepository()

	// Create database manager for serialized write access
	dbManager := db.NewManager()
	defer dbManager.Stop()

	// Initialize services
	tokenService := auth.NewTokenService(cfg.JwtKey, cfg.TokenTTL)
	authService := auth.NewAuthService(userRepo, tokenService)
	userService := user.NewUserService(userRepo, dbManager)
	todoService := todo.NewTodoService(todoRepo, dbManager)

	// Initialize handlers and middleware
	authHandlers := auth.NewAuthHandlers(authService)
	userHandlers := user.NewUserHandlers(userService)
	todoHandlers := todo.NewTodoHandlers(todoService)
	mw := middleware.NewMiddleware(authService)

	router := web.SetupRoutes(authHandlers, userHandlers, todoHandlers, mw)
	loggedRouter := middleware.LoggingMiddleware(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: loggedRouter,
	}

	go func() {
		infoLogger.Printf("Server is starting on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errorLogger.Fatalf("Server ListenAndServe error: %v", err)
		}
	}()

	waitForShutdown(server)
}

// setupStorage connects the configured backend and returns the repository
// factory plus a close function for the underlying connection.
func setupStorage(cfg *config.Config) (*db.RepositoryFactory, func(), error) {
	if cfg.DatabaseType == config.MongoDB {
		infoLogger.Println("Using MongoDB database")
		client, err := db.ConnectToMongo(cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.EnsureMongoIndexes(ctx, client, cfg.DatabaseName); err != nil {
			return nil, nil, err
		}

		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				errorLogger.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}
		return db.NewRepositoryFactory(nil, client, cfg.DatabaseName), closeFn, nil
	}

	infoLogger.Println("Using SQLite database")
	sqliteDB, err := db.ConnectToSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := db.InitializeSchema(sqliteDB); err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := sqliteDB.Close(); err != nil {
			errorLogger.Printf("Error closing SQLite database: %v", err)
		}
	}
	return db.NewRepositoryFactory(sqliteDB, nil, cfg.DatabaseName), closeFn, nil
}

func waitForShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	infoLogger.Println("Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		errorLogger.Printf("Server Shutdown error: %v", err)
		return
	}
	infoLogger.Println("Server stopped")
}
