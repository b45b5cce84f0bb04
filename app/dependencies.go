package app

import (
	"context"
	"fmt"

	"github.com/sulta24/backend-hw1/config"
	"github.com/sulta24/backend-hw1/middleware"
	"github.com/sulta24/backend-hw1/repositories"
	"github.com/sulta24/backend-hw1/repositories/postgres"
	"github.com/sulta24/backend-hw1/services"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger

	// Repository Factory
	RepoFactory *postgres.RepositoryFactory

	// Repositories
	Users     repositories.UserRepository
	Tasks     repositories.TaskRepository
	TxManager repositories.TransactionManager

	// Services
	AuthService services.AuthService
	TaskService services.TaskService

	// Auth
	AuthMiddleware *middleware.AuthMiddleware
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := deps.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	deps.initServices(cfg)
	deps.initAuth()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initDatabase initializes the PostgreSQL database connection and factory
func (d *Dependencies) initDatabase(ctx context.Context, cfg *config.Config) error {
	factory, err := postgres.NewRepositoryFactory(cfg, d.Logger)
	if err != nil {
		return fmt.Errorf("failed to create repository factory: %w", err)
	}

	d.RepoFactory = factory
	d.DB = factory.GetDB()

	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if err := d.DB.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

// initRepositories initializes all repository instances
func (d *Dependencies) initRepositories() error {
	repos := d.RepoFactory.NewRepositories()

	d.Users = repos.Users
	d.Tasks = repos.Tasks
	d.TxManager = d.RepoFactory.GetTransactionManager()

	d.Logger.Info("repositories initialized")
	return nil
}

// initServices initializes the domain services
func (d *Dependencies) initServices(cfg *config.Config) {
	hasher := services.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := services.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, d.Logger)

	d.AuthService = services.NewAuthService(
		d.Users,
		d.TxManager,
		hasher,
		tokens,
		cfg.Auth.TokenTTL,
		d.Logger,
	)
	d.TaskService = services.NewTaskService(d.Tasks, d.TxManager, d.Logger)

	d.Logger.Info("services initialized")
}

// initAuth wires the auth middleware to the auth service
func (d *Dependencies) initAuth() {
	d.AuthMiddleware = middleware.NewAuthMiddleware(d.AuthService, d.Logger)
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	var errs []error

	if d.RepoFactory != nil {
		if err := d.RepoFactory.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		} else {
			d.Logger.Info("database connection closed")
		}
	}

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}

	return nil
}
