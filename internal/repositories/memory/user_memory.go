package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
)

type userMemory struct {
	mu    *sync.RWMutex
	users map[string]models.User
}

func newUserMemory(mu *sync.RWMutex) *userMemory {
	return &userMemory{
		mu:    mu,
		users: make(map[string]models.User),
	}
}

func (r *userMemory) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.users[user.ID] = cloneUser(*user)
	return nil
}

func (r *userMemory) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := cloneUser(user)
	return &out, nil
}

func (r *userMemory) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			out := cloneUser(user)
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *userMemory) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *userMemory) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = cloneUser(*user)
	return nil
}

func (r *userMemory) UpdateGamification(ctx context.Context, id string, score, streak int, badges []models.Badge, lastActivity time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repositories.ErrNotFound
	}

	user.ReadinessScore = score
	user.Streak = streak
	user.Badges = append([]models.Badge(nil), badges...)
	user.LastActivity = lastActivity
	user.UpdatedAt = time.Now()
	r.users[id] = user
	return nil
}

func (r *userMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *userMemory) ListStudents(ctx context.Context, filters repositories.CandidateFilters) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var students []models.User
	for _, user := range r.users {
		if user.Role != models.RoleStudent {
			continue
		}
		if !matchesSkill(user, filters.Skill) {
			continue
		}
		if filters.MinScore != nil && user.ReadinessScore < *filters.MinScore {
			continue
		}
		students = append(students, cloneUser(user))
	}

	sort.Slice(students, func(i, j int) bool {
		return students[i].ReadinessScore > students[j].ReadinessScore
	})

	if filters.Offset > 0 {
		if filters.Offset >= len(students) {
			return []models.User{}, nil
		}
		students = students[filters.Offset:]
	}
	if filters.Limit > 0 && filters.Limit < len(students) {
		students = students[:filters.Limit]
	}

	return students, nil
}

func (r *userMemory) CountStudents(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, user := range r.users {
		if user.Role == models.RoleStudent {
			count++
		}
	}
	return count, nil
}

func (r *userMemory) DeleteStudents(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, user := range r.users {
		if user.Role == models.RoleStudent {
			delete(r.users, id)
			removed++
		}
	}
	return removed, nil
}

func matchesSkill(user models.User, skill string) bool {
	if skill == "" {
		return true
	}
	needle := strings.ToLower(skill)

	if strings.Contains(strings.ToLower(user.CareerGoal), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(user.Name), needle) {
		return true
	}
	for _, interest := range user.Interests {
		if strings.Contains(strings.ToLower(interest), needle) {
			return true
		}
	}
	return false
}

func cloneUser(user models.User) models.User {
	user.Interests = append([]string(nil), user.Interests...)
	user.Badges = append([]models.Badge(nil), user.Badges...)
	return user
}
