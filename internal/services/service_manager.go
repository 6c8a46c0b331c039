package services

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mr-pathfinder/roadmap-service/internal/ai"
	"github.com/mr-pathfinder/roadmap-service/internal/auth"
	"github.com/mr-pathfinder/roadmap-service/internal/cache"
	"github.com/mr-pathfinder/roadmap-service/internal/events"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
	"github.com/mr-pathfinder/roadmap-service/internal/validator"
)

// ServiceManager owns service construction and shutdown.
type ServiceManager interface {
	Auth() AuthService
	Roadmap() RoadmapService
	Candidate() CandidateService
	Quiz() QuizService
	Shutdown() error
}

// Dependencies carries everything the services need. All fields are
// required except CacheManager, which defaults to a disabled cache.
type Dependencies struct {
	Repo         repositories.Repository
	Passwords    *auth.PasswordService
	Tokens       *auth.TokenService
	Generator    ai.Generator
	Publisher    events.EventPublisher
	CacheManager *cache.CacheManager
	Validator    *validator.Validator
	Logger       *slog.Logger
}

type serviceManager struct {
	deps Dependencies

	auth      AuthService
	roadmap   RoadmapService
	candidate CandidateService
	quiz      QuizService

	shutdown bool
	mu       sync.Mutex
}

func NewServiceManager(deps Dependencies) (ServiceManager, error) {
	if deps.Repo == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if deps.Passwords == nil || deps.Tokens == nil {
		return nil, fmt.Errorf("auth services are required")
	}
	if deps.Generator == nil {
		return nil, fmt.Errorf("ai generator is required")
	}
	if deps.Publisher == nil {
		return nil, fmt.Errorf("event publisher is required")
	}
	if deps.Validator == nil {
		return nil, fmt.Errorf("validator is required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.CacheManager == nil {
		deps.CacheManager = cache.NewCacheManager(nil)
	}

	m := &serviceManager{deps: deps}
	m.auth = NewAuthService(deps.Repo, deps.Passwords, deps.Tokens, deps.Publisher, deps.CacheManager, deps.Validator, deps.Logger)
	m.roadmap = NewRoadmapService(deps.Repo, deps.Generator, deps.CacheManager, deps.Validator, deps.Logger)
	m.candidate = NewCandidateService(deps.Repo, deps.Passwords, deps.Publisher, deps.CacheManager, deps.Validator, deps.Logger)
	m.quiz = NewQuizService(deps.Generator, deps.Validator, deps.Logger)

	return m, nil
}

func (m *serviceManager) Auth() AuthService {
	return m.auth
}

func (m *serviceManager) Roadmap() RoadmapService {
	return m.roadmap
}

func (m *serviceManager) Candidate() CandidateService {
	return m.candidate
}

func (m *serviceManager) Quiz() QuizService {
	return m.quiz
}

func (m *serviceManager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shutdown {
		return nil
	}
	m.shutdown = true

	if err := m.deps.Publisher.Close(); err != nil {
		return fmt.Errorf("closing event publisher: %w", err)
	}
	return nil
}
