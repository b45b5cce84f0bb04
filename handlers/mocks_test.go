package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sulta24/backend-hw1/app"
	"github.com/sulta24/backend-hw1/models"
	"github.com/sulta24/backend-hw1/services"
	"go.uber.org/zap"
)

// MockAuthService is a mock implementation of services.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Resolve(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTaskService is a mock implementation of services.TaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, ownerID int64, title string, description *string, completed bool) (*models.Task, error) {
	args := m.Called(ctx, ownerID, title, description, completed)
	if task := args.Get(0); task != nil {
		return task.(*models.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	if task := args.Get(0); task != nil {
		return task.(*models.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context, ownerID int64, skip, limit int) ([]*models.Task, error) {
	args := m.Called(ctx, ownerID, skip, limit)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]*models.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, ownerID, taskID int64, input services.UpdateTaskInput) (*models.Task, error) {
	args := m.Called(ctx, ownerID, taskID, input)
	if task := args.Get(0); task != nil {
		return task.(*models.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

func testDeps(auth services.AuthService, tasks services.TaskService) *app.Dependencies {
	return &app.Dependencies{
		Logger:      zap.NewNop(),
		AuthService: auth,
		TaskService: tasks,
	}
}
