package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
)

type roadmapMemory struct {
	mu       *sync.RWMutex
	roadmaps map[string]models.Roadmap
}

func newRoadmapMemory(mu *sync.RWMutex) *roadmapMemory {
	return &roadmapMemory{
		mu:       mu,
		roadmaps: make(map[string]models.Roadmap),
	}
}

func (r *roadmapMemory) Create(ctx context.Context, roadmap *models.Roadmap) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if roadmap.CreatedAt.IsZero() {
		roadmap.CreatedAt = now
	}
	roadmap.UpdatedAt = now

	r.roadmaps[roadmap.ID] = cloneRoadmap(*roadmap)
	return nil
}

func (r *roadmapMemory) GetByID(ctx context.Context, id string) (*models.Roadmap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roadmap, ok := r.roadmaps[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := cloneRoadmap(roadmap)
	return &out, nil
}

func (r *roadmapMemory) ListByUser(ctx context.Context, userID string) ([]models.Roadmap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Roadmap
	for _, roadmap := range r.roadmaps {
		if roadmap.UserID == userID {
			out = append(out, cloneRoadmap(roadmap))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *roadmapMemory) CountByUser(ctx context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, roadmap := range r.roadmaps {
		if roadmap.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *roadmapMemory) Update(ctx context.Context, roadmap *models.Roadmap) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.roadmaps[roadmap.ID]; !ok {
		return repositories.ErrNotFound
	}
	roadmap.UpdatedAt = time.Now()
	r.roadmaps[roadmap.ID] = cloneRoadmap(*roadmap)
	return nil
}

func cloneRoadmap(roadmap models.Roadmap) models.Roadmap {
	phases := make([]models.Phase, len(roadmap.Phases))
	for i, p := range roadmap.Phases {
		p.Topics = append([]string(nil), p.Topics...)
		p.Resources = append([]models.Resource(nil), p.Resources...)
		phases[i] = p
	}
	roadmap.Phases = phases

	projects := make([]models.Project, len(roadmap.Projects))
	for i, p := range roadmap.Projects {
		p.Tools = append([]string(nil), p.Tools...)
		projects[i] = p
	}
	roadmap.Projects = projects

	return roadmap
}
