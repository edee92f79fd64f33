package todo

import (
	"context"
	"errors"
	"fmt"

	"todo-api/db"
	"todo-api/models"
)

// TodoService implements the todo operations. Every single-record access
// resolves through an owner-scoped lookup, so a caller can never touch a
// record that is not theirs.
type TodoService struct {
	repo    db.TodoRepository
	manager *db.Manager
}

// NewTodoService creates a new TodoService
func NewTodoService(repo db.TodoRepository, manager *db.Manager) *TodoService {
	return &TodoService{repo: repo, manager: manager}
}

// List returns all todos owned by a user, oldest first.
func (s *TodoService) List(ctx context.Context, ownerID int) ([]models.Todo, error) {
	todos, err := s.repo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	return todos, nil
}

// Get resolves a single owned todo. An absent record and a record owned by
// another user produce the identical not-found error.
func (s *TodoService) Get(ctx context.Context, id, ownerID int) (*models.Todo, error) {
	todo, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, &models.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("error finding todo: %w", err)
	}
	return todo, nil
}

// Create validates and persists a new todo for the given owner.
func (s *TodoService) Create(ctx context.Context, in models.TodoCreate, ownerID int) (*models.Todo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	todo := &models.Todo{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		OwnerID:     ownerID,
	}

	created, err := s.manager.CreateTodo(s.repo, ctx, todo)
	if err != nil {
		if errors.Is(err, db.ErrConstraint) {
			return nil, &models.ConstraintError{Message: "Todo owner does not exist"}
		}
		return nil, fmt.Errorf("error creating todo: %w", err)
	}
	return created, nil
}

// Update resolves an owned todo and applies only the fields present in the
// patch. An empty patch is a no-op that returns the record unchanged.
func (s *TodoService) Update(ctx context.Context, id int, patch models.TodoUpdate, ownerID int) (*models.Todo, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	todo, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	patch.Apply(todo)

	updated, err := s.manager.UpdateTodo(s.repo, ctx, todo)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, &models.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("error updating todo: %w", err)
	}
	return updated, nil
}

// Delete resolves an owned todo and removes it. Absence is always the gate's
// not-found error, never a silent no-op.
func (s *TodoService) Delete(ctx context.Context, id, ownerID int) error {
	if _, err := s.Get(ctx, id, ownerID); err != nil {
		return err
	}

	if err := s.manager.DeleteTodo(s.repo, ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &models.NotFoundError{ID: id}
		}
		return fmt.Errorf("error deleting todo: %w", err)
	}
	return nil
}
