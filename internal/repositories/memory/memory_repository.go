// Package memory provides an in-process Repository backend. It powers the
// demo storage mode and doubles as the test double for the service layer,
// sharing error semantics with the postgres backend.
package memory

import (
	"context"
	"sync"

	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
)

// MemoryRepository implements repositories.RepositoryManager entirely
// in memory.
type MemoryRepository struct {
	mu sync.RWMutex

	user           *userMemory
	roadmap        *roadmapMemory
	candidateAlert *candidateAlertMemory
}

func NewMemoryRepository() repositories.RepositoryManager {
	repo := &MemoryRepository{}
	repo.user = newUserMemory(&repo.mu)
	repo.roadmap = newRoadmapMemory(&repo.mu)
	repo.candidateAlert = newCandidateAlertMemory(&repo.mu)
	return repo
}

func (r *MemoryRepository) Initialize(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) User() repositories.UserRepository {
	return r.user
}

func (r *MemoryRepository) Roadmap() repositories.RoadmapRepository {
	return r.roadmap
}

func (r *MemoryRepository) CandidateAlert() repositories.CandidateAlertRepository {
	return r.candidateAlert
}

// WithTransaction runs fn against the same store. The shared mutex keeps
// individual operations consistent; multi-step rollback is not supported
// in this backend.
func (r *MemoryRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(r)
}

func (r *MemoryRepository) Ping(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) Close() error {
	return nil
}
