package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sulta24/backend-hw1/models"
	"github.com/sulta24/backend-hw1/repositories"
	"go.uber.org/zap"
)

// TaskRepository implements the repositories.TaskRepository interface.
// Every query filters by owner_id: a row owned by someone else scans the
// same as a row that does not exist.
type TaskRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *DB, logger *zap.Logger) repositories.TaskRepository {
	return &TaskRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new task and fills in the generated ID
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (title, description, completed, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	executor := GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query,
		task.Title,
		task.Description,
		task.Completed,
		task.OwnerID,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)

	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	r.logger.Debug("task created",
		zap.Int64("id", task.ID),
		zap.Int64("owner_id", task.OwnerID))
	return nil
}

// GetByID retrieves a task by (id, owner) pair
func (r *TaskRepository) GetByID(ctx context.Context, id, ownerID int64) (*models.Task, error) {
	query := `
		SELECT id, title, description, completed, owner_id, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND owner_id = $2
	`

	executor := GetExecutor(ctx, r.db)
	task := &models.Task{}

	err := executor.QueryRowContext(ctx, query, id, ownerID).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.OwnerID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListByOwner retrieves the owner's tasks with pagination
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*models.Task, error) {
	query := `
		SELECT id, title, description, completed, owner_id, created_at, updated_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, ownerID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task := &models.Task{}
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.OwnerID,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// Update persists the task's mutable fields, scoped to (id, owner) pair
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks
		SET title = $3,
		    description = $4,
		    completed = $5,
		    updated_at = $6
		WHERE id = $1 AND owner_id = $2
	`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		task.Completed,
		task.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("task updated", zap.Int64("id", task.ID))
	return nil
}

// Delete removes a task by (id, owner) pair
func (r *TaskRepository) Delete(ctx context.Context, id, ownerID int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("task deleted", zap.Int64("id", id))
	return nil
}
