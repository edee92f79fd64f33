package db

import (
	"context"
	"database/sql"
	"errors"

	"todo-api/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned for any lookup miss. For owner-scoped todo
	// lookups it also covers records owned by someone else; callers cannot
	// tell the two apart.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("record already exists")

	// ErrConstraint is returned for other integrity failures, e.g. a todo
	// whose owner_id points at no user.
	ErrConstraint = errors.New("constraint violation")
)

// Repository defines a common interface for all repositories
type Repository interface {
	Close() error
}

// UserRepository defines the interface for user operations
type UserRepository interface {
	Repository
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	SetDisabled(ctx context.Context, id int, disabled bool) error
}

// TodoRepository defines the interface for todo operations. All single-record
// lookups filter on owner as part of the query predicate itself.
type TodoRepository interface {
	Repository
	FindByIDAndOwner(ctx context.Context, id, ownerID int) (*models.Todo, error)
	FindAllByOwner(ctx context.Context, ownerID int) ([]models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	Delete(ctx context.Context, id int) error
}

// RepositoryFactory creates repositories based on the database type
type RepositoryFactory struct {
	SQLiteDB    *sql.DB
	MongoClient *mongo.Client
	DBName      string
}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory(sqliteDB *sql.DB, mongoClient *mongo.Client, dbName string) *RepositoryFactory {
	return &RepositoryFactory{
		SQLiteDB:    sqliteDB,
		MongoClient: mongoClient,
		DBName:      dbName,
	}
}

// NewUserRepository creates a new user repository
func (f *RepositoryFactory) NewUserRepository() UserRepository {
	if f.SQLiteDB != nil {
		return NewSQLiteUserRepository(f.SQLiteDB)
	}
	return NewMongoUserRepository(f.MongoClient, f.DBName, "users")
}

// NewTodoRepository creates a new todo repository
func (f *RepositoryFactory) NewTodoRepository() TodoRepository {
	if f.SQLiteDB != nil {
		return NewSQLiteTodoRepository(f.SQLiteDB)
	}
	return NewMongoTodoRepository(f.MongoClient, f.DBName, "todos")
}
