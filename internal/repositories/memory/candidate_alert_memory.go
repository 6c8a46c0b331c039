package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
)

type candidateAlertMemory struct {
	mu     *sync.RWMutex
	alerts []models.CandidateAlert
}

func newCandidateAlertMemory(mu *sync.RWMutex) *candidateAlertMemory {
	return &candidateAlertMemory{mu: mu}
}

func (r *candidateAlertMemory) Create(ctx context.Context, alert *models.CandidateAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	r.alerts = append(r.alerts, *alert)
	return nil
}

func (r *candidateAlertMemory) ListRecent(ctx context.Context, limit int) ([]models.CandidateAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	// Newest first
	out := make([]models.CandidateAlert, 0, limit)
	for i := len(r.alerts) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.alerts[i])
	}
	return out, nil
}

var _ repositories.CandidateAlertRepository = (*candidateAlertMemory)(nil)
