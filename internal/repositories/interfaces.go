package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
)

// ErrNotFound is returned by every repository when the requested record
// does not exist. Backends translate their driver errors into it so the
// service layer never depends on a storage driver.
var ErrNotFound = errors.New("record not found")

// CandidateFilters narrows candidate directory queries.
type CandidateFilters struct {
	// Skill matches case-insensitively against career goal, name, and
	// interests. Empty means no filter.
	Skill string

	// MinScore keeps candidates at or above the given readiness score.
	MinScore *int

	Limit  int
	Offset int
}

// UserRepository manages user accounts and their gamification state.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error

	// UpdateGamification persists only the scoring columns, leaving the
	// rest of the profile untouched.
	UpdateGamification(ctx context.Context, id string, score, streak int, badges []models.Badge, lastActivity time.Time) error

	// Delete removes the account permanently.
	Delete(ctx context.Context, id string) error

	ListStudents(ctx context.Context, filters CandidateFilters) ([]models.User, error)
	CountStudents(ctx context.Context) (int64, error)

	// DeleteStudents removes every student account. Used by the demo
	// reset operation.
	DeleteStudents(ctx context.Context) (int64, error)
}

// RoadmapRepository manages generated roadmaps.
type RoadmapRepository interface {
	Create(ctx context.Context, roadmap *models.Roadmap) error
	GetByID(ctx context.Context, id string) (*models.Roadmap, error)

	// ListByUser returns the user's roadmaps newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Roadmap, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, roadmap *models.Roadmap) error
}

// CandidateAlertRepository records registration alerts for the HR feed.
type CandidateAlertRepository interface {
	Create(ctx context.Context, alert *models.CandidateAlert) error
	ListRecent(ctx context.Context, limit int) ([]models.CandidateAlert, error)
}

// Repository aggregates all repositories behind one handle.
type Repository interface {
	User() UserRepository
	Roadmap() RoadmapRepository
	CandidateAlert() CandidateAlertRepository

	// WithTransaction runs fn inside a storage transaction. The
	// Repository passed to fn routes all calls through that transaction.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager owns backend lifecycle concerns such as migrations.
type RepositoryManager interface {
	Repository
	Initialize(ctx context.Context) error
}
