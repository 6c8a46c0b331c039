package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db          *gorm.DB
	redisClient *redis.Client

	user           repositories.UserRepository
	roadmap        repositories.RoadmapRepository
	candidateAlert repositories.CandidateAlertRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewPostgreSQLRepository creates a new repository manager with all sub-repositories
func NewPostgreSQLRepository(config RepositoryConfig) repositories.RepositoryManager {
	repo := &PostgreSQLRepository{
		db:          config.DB,
		redisClient: config.RedisClient,
	}

	repo.user = NewUserPostgreSQL(config.DB)
	repo.roadmap = NewRoadmapPostgreSQL(config.DB)
	repo.candidateAlert = NewCandidateAlertPostgreSQL(config.DB)

	return repo
}

// Initialize runs schema migrations.
func (r *PostgreSQLRepository) Initialize(ctx context.Context) error {
	err := r.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Roadmap{},
		&models.CandidateAlert{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (r *PostgreSQLRepository) User() repositories.UserRepository {
	return r.user
}

func (r *PostgreSQLRepository) Roadmap() repositories.RoadmapRepository {
	return r.roadmap
}

func (r *PostgreSQLRepository) CandidateAlert() repositories.CandidateAlertRepository {
	return r.candidateAlert
}

// WithTransaction executes a function within a database transaction
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &PostgreSQLRepository{
			db:          tx,
			redisClient: r.redisClient,
		}
		txRepo.user = NewUserPostgreSQL(tx)
		txRepo.roadmap = NewRoadmapPostgreSQL(tx)
		txRepo.candidateAlert = NewCandidateAlertPostgreSQL(tx)

		return fn(txRepo)
	})
}

// Ping checks the health of the database connection
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close closes the database connection. The Redis client is owned by the
// caller and closed separately.
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
