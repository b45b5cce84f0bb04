package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sulta24/backend-hw1/models"
	"github.com/sulta24/backend-hw1/repositories"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTaskRepository is a mock implementation of repositories.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id, ownerID int64) (*models.Task, error) {
	args := m.Called(ctx, id, ownerID)
	if task := args.Get(0); task != nil {
		return task.(*models.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*models.Task, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]*models.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id, ownerID int64) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

// fakeTxManager runs the transactional function directly without a database
type fakeTxManager struct{}

func (fakeTxManager) Begin(ctx context.Context) (repositories.Transaction, error) {
	return fakeTx{ctx: ctx}, nil
}

func (fakeTxManager) InTransaction(ctx context.Context, fn func(ctx context.Context, tx repositories.Transaction) error) error {
	return fn(ctx, fakeTx{ctx: ctx})
}

type fakeTx struct {
	ctx context.Context
}

func (fakeTx) Commit() error              { return nil }
func (fakeTx) Rollback() error            { return nil }
func (t fakeTx) Context() context.Context { return t.ctx }
