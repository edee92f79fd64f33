package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo-api/models"

	"github.com/mattn/go-sqlite3"
)

// mapSQLiteError translates driver-level constraint failures into the
// package sentinels.
func mapSQLiteError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrDuplicate
		case sqlite3.ErrConstraintForeignKey:
			return ErrConstraint
		}
	}
	return err
}

// SQLiteUserRepository implements the UserRepository interface for SQLite
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Close closes the database connection
func (r *SQLiteUserRepository) Close() error {
	return r.db.Close()
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var email sql.NullString

	err := row.Scan(&user.ID, &user.Username, &email, &user.Disabled, &user.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}

	if email.Valid {
		user.Email = &email.String
	}
	return &user, nil
}

// FindByID finds a user by ID
func (r *SQLiteUserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT id, username, email, disabled, password_hash FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// FindByUsername finds a user by username
func (r *SQLiteUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, email, disabled, password_hash FROM users WHERE username = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

// Create inserts a new user and returns it with its assigned ID
func (r *SQLiteUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `INSERT INTO users (username, email, disabled, password_hash) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.Disabled, user.PasswordHash)
	if err != nil {
		return nil, mapSQLiteError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error reading inserted user id: %w", err)
	}
	user.ID = int(id)
	return user, nil
}

// SetDisabled toggles the disabled flag on a user
func (r *SQLiteUserRepository) SetDisabled(ctx context.Context, id int, disabled bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET disabled = ? WHERE id = ?`, disabled, id)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SQLiteTodoRepository implements the TodoRepository interface for SQLite
type SQLiteTodoRepository struct {
	db *sql.DB
}

// NewSQLiteTodoRepository creates a new SQLiteTodoRepository
func NewSQLiteTodoRepository(db *sql.DB) *SQLiteTodoRepository {
	return &SQLiteTodoRepository{db: db}
}

// Close closes the database connection
func (r *SQLiteTodoRepository) Close() error {
	return r.db.Close()
}

// FindByIDAndOwner finds a todo by ID scoped to its owner. The owner filter
// is part of the query predicate, so a record owned by someone else is
// indistinguishable from a missing one.
func (r *SQLiteTodoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int) (*models.Todo, error) {
	query := `SELECT id, title, description, completed, owner_id FROM todos WHERE id = ? AND owner_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, ownerID)

	var todo models.Todo
	err := row.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Completed, &todo.OwnerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning todo: %w", err)
	}
	return &todo, nil
}

// FindAllByOwner finds all todos owned by a user, in insertion order
func (r *SQLiteTodoRepository) FindAllByOwner(ctx context.Context, ownerID int) ([]models.Todo, error) {
	query := `SELECT id, title, description, completed, owner_id FROM todos WHERE owner_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying todos: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Completed, &todo.OwnerID); err != nil {
			return nil, fmt.Errorf("error scanning todo: %w", err)
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// Create inserts a new todo and returns it with its assigned ID
func (r *SQLiteTodoRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `INSERT INTO todos (title, description, completed, owner_id) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, todo.Title, todo.Description, todo.Completed, todo.OwnerID)
	if err != nil {
		return nil, mapSQLiteError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error reading inserted todo id: %w", err)
	}
	todo.ID = int(id)
	return todo, nil
}

// Update writes all fields of an existing todo
func (r *SQLiteTodoRepository) Update(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `UPDATE todos SET title = ?, description = ?, completed = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, todo.Title, todo.Description, todo.Completed, todo.ID)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error checking updated rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return todo, nil
}

// Delete removes a todo by ID
func (r *SQLiteTodoRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting todo: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
