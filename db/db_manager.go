package db

import (
	"context"
	"log"

	"todo-api/models"
)

// Operation represents a database operation that needs to be executed
type Operation struct {
	Execute func() error
	Result  chan error
}

// OperationWithResult represents a database operation that returns a result
type OperationWithResult struct {
	Execute func() (interface{}, error)
	Result  chan OperationResult
}

// OperationResult contains the result of an operation
type OperationResult struct {
	Data  interface{}
	Error error
}

// Manager serializes write access to the database. SQLite allows a single
// writer, so all mutations funnel through one worker goroutine.
type Manager struct {
	opQueue       chan Operation
	resultOpQueue chan OperationWithResult
	stopping      chan struct{}
}

// NewManager creates a new database manager
func NewManager() *Manager {
	m := &Manager{
		opQueue:       make(chan Operation, 100),
		resultOpQueue: make(chan OperationWithResult, 100),
		stopping:      make(chan struct{}),
	}

	// Start the worker goroutine
	go m.worker()
	log.Println("Database access manager started")

	return m
}

// worker processes operations one at a time
func (m *Manager) worker() {
	for {
		select {
		case op := <-m.opQueue:
			op.Result <- op.Execute()
		case op := <-m.resultOpQueue:
			data, err := op.Execute()
			op.Result <- OperationResult{Data: data, Error: err}
		case <-m.stopping:
			return
		}
	}
}

// ExecuteOperation executes a database operation on the worker goroutine
func (m *Manager) ExecuteOperation(execute func() error) error {
	resultChan := make(chan error, 1)
	m.opQueue <- Operation{
		Execute: execute,
		Result:  resultChan,
	}
	return <-resultChan
}

// ExecuteOperationWithResult executes a database operation that returns a result
func (m *Manager) ExecuteOperationWithResult(execute func() (interface{}, error)) (interface{}, error) {
	resultChan := make(chan OperationResult, 1)
	m.resultOpQueue <- OperationWithResult{
		Execute: execute,
		Result:  resultChan,
	}
	result := <-resultChan
	return result.Data, result.Error
}

// Stop stops the database manager
func (m *Manager) Stop() {
	close(m.stopping)
}

// Methods for specific repository operations

// CreateUser serializes access to user creation
func (m *Manager) CreateUser(repo UserRepository, ctx context.Context, user *models.User) (*models.User, error) {
	result, err := m.ExecuteOperationWithResult(func() (interface{}, error) {
		return repo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.User), nil
}

// SetUserDisabled serializes access to the disabled flag
func (m *Manager) SetUserDisabled(repo UserRepository, ctx context.Context, id int, disabled bool) error {
	return m.ExecuteOperation(func() error {
		return repo.SetDisabled(ctx, id, disabled)
	})
}

// CreateTodo serializes access to todo creation
func (m *Manager) CreateTodo(repo TodoRepository, ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	result, err := m.ExecuteOperationWithResult(func() (interface{}, error) {
		return repo.Create(ctx, todo)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Todo), nil
}

// UpdateTodo serializes access to todo updates
func (m *Manager) UpdateTodo(repo TodoRepository, ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	result, err := m.ExecuteOperationWithResult(func() (interface{}, error) {
		return repo.Update(ctx, todo)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Todo), nil
}

// DeleteTodo serializes access to todo deletion
func (m *Manager) DeleteTodo(repo TodoRepository, ctx context.Context, id int) error {
	return m.ExecuteOperation(func() error {
		return repo.Delete(ctx, id)
	})
}
