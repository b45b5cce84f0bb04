package repositories

import (
	"context"
	"errors"

	"github.com/sulta24/backend-hw1/models"
)

// Sentinel errors returned by repository implementations. Services translate
// these into domain errors; repositories stay free of HTTP semantics.
var (
	// ErrNotFound is returned when no row matches the query. For tasks this
	// covers both "no such id" and "owned by someone else" — the two cases
	// are indistinguishable on purpose.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned when an insert violates the username
	// uniqueness constraint.
	ErrDuplicateUsername = errors.New("username already exists")
)

// TransactionManager manages database transactions
type TransactionManager interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) (Transaction, error)

	// InTransaction executes a function within a transaction
	// Automatically commits if function succeeds, rolls back on error
	InTransaction(ctx context.Context, fn func(ctx context.Context, tx Transaction) error) error
}

// Transaction represents a database transaction
type Transaction interface {
	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Context returns the transaction context
	Context() context.Context
}

// UserRepository handles user data operations
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID.
	// Returns ErrDuplicateUsername when the username is taken.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TaskRepository handles task data operations. Every method takes the owner
// id as a mandatory parameter: there is no way to address a task without
// saying whose it must be.
type TaskRepository interface {
	// Create inserts a new task and fills in the generated ID.
	Create(ctx context.Context, task *models.Task) error

	// GetByID retrieves a task by (id, owner) pair
	GetByID(ctx context.Context, id, ownerID int64) (*models.Task, error)

	// ListByOwner retrieves the owner's tasks with pagination
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*models.Task, error)

	// Update persists the task's mutable fields, scoped to (id, owner) pair
	Update(ctx context.Context, task *models.Task) error

	// Delete removes a task by (id, owner) pair
	Delete(ctx context.Context, id, ownerID int64) error
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Users UserRepository
	Tasks TaskRepository
}
