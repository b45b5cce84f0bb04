package services

import (
	"context"
	"errors"
	"time"

	"github.com/sulta24/backend-hw1/models"
	"github.com/sulta24/backend-hw1/repositories"
	"go.uber.org/zap"
)

const (
	// DefaultListLimit is applied when the caller does not specify one
	DefaultListLimit = 100
)

// UpdateTaskInput carries a partial update. Nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskService handles task CRUD scoped to an owning user
type TaskService interface {
	Create(ctx context.Context, ownerID int64, title string, description *string, completed bool) (*models.Task, error)
	Get(ctx context.Context, ownerID, taskID int64) (*models.Task, error)
	List(ctx context.Context, ownerID int64, skip, limit int) ([]*models.Task, error)
	Update(ctx context.Context, ownerID, taskID int64, input UpdateTaskInput) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID int64) error
}

// TaskServiceImpl implements TaskService
type TaskServiceImpl struct {
	tasks  repositories.TaskRepository
	txMgr  repositories.TransactionManager
	logger *zap.Logger
}

// NewTaskService creates a new task service
func NewTaskService(tasks repositories.TaskRepository, txMgr repositories.TransactionManager, logger *zap.Logger) *TaskServiceImpl {
	return &TaskServiceImpl{
		tasks:  tasks,
		txMgr:  txMgr,
		logger: logger,
	}
}

// Create creates a new task owned by ownerID
func (s *TaskServiceImpl) Create(ctx context.Context, ownerID int64, title string, description *string, completed bool) (*models.Task, error) {
	task := models.NewTask(ownerID, title, description, completed)

	err := s.txMgr.InTransaction(ctx, func(ctx context.Context, _ repositories.Transaction) error {
		return s.tasks.Create(ctx, task)
	})
	if err != nil {
		return nil, WrapInternal("failed to create task", err)
	}

	s.logger.Debug("task created",
		zap.Int64("task_id", task.ID),
		zap.Int64("owner_id", ownerID))
	return task, nil
}

// Get fetches a single task owned by ownerID
func (s *TaskServiceImpl) Get(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, WrapInternal("failed to get task", err)
	}
	return task, nil
}

// List returns a page of the owner's tasks. Negative skip is treated
// as zero; a non-positive limit falls back to the default page size.
func (s *TaskServiceImpl) List(ctx context.Context, ownerID int64, skip, limit int) ([]*models.Task, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	tasks, err := s.tasks.ListByOwner(ctx, ownerID, skip, limit)
	if err != nil {
		return nil, WrapInternal("failed to list tasks", err)
	}
	return tasks, nil
}

// Update applies a partial update to a task owned by ownerID.
// The read and write run in one transaction so concurrent updates
// cannot interleave.
func (s *TaskServiceImpl) Update(ctx context.Context, ownerID, taskID int64, input UpdateTaskInput) (*models.Task, error) {
	var task *models.Task

	err := s.txMgr.InTransaction(ctx, func(ctx context.Context, _ repositories.Transaction) error {
		existing, err := s.tasks.GetByID(ctx, taskID, ownerID)
		if err != nil {
			return err
		}

		if input.Title != nil {
			existing.Title = *input.Title
		}
		if input.Description != nil {
			existing.Description = input.Description
		}
		if input.Completed != nil {
			existing.Completed = *input.Completed
		}
		existing.UpdatedAt = time.Now()

		if err := s.tasks.Update(ctx, existing); err != nil {
			return err
		}

		task = existing
		return nil
	})

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, WrapInternal("failed to update task", err)
	}

	s.logger.Debug("task updated", zap.Int64("task_id", taskID))
	return task, nil
}

// Delete removes a task owned by ownerID
func (s *TaskServiceImpl) Delete(ctx context.Context, ownerID, taskID int64) error {
	err := s.txMgr.InTransaction(ctx, func(ctx context.Context, _ repositories.Transaction) error {
		return s.tasks.Delete(ctx, taskID, ownerID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTaskNotFound
		}
		return WrapInternal("failed to delete task", err)
	}

	s.logger.Debug("task deleted", zap.Int64("task_id", taskID))
	return nil
}
