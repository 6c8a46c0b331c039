package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mr-pathfinder/roadmap-service/internal/ai"
	"github.com/mr-pathfinder/roadmap-service/internal/auth"
	"github.com/mr-pathfinder/roadmap-service/internal/cache"
	"github.com/mr-pathfinder/roadmap-service/internal/events"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories/memory"
	"github.com/mr-pathfinder/roadmap-service/internal/validator"
)

// stubGenerator returns canned text or an error, standing in for the
// AI provider.
type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

type testEnv struct {
	repo      repositories.Repository
	manager   ServiceManager
	publisher *events.MockEventPublisher
	generator *stubGenerator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memory.NewMemoryRepository()
	publisher := events.NewMockEventPublisher(logger)
	generator := &stubGenerator{err: ai.ErrProviderUnavailable}

	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars")
	require.NoError(t, err)

	manager, err := NewServiceManager(Dependencies{
		Repo:         repo,
		Passwords:    auth.NewPasswordServiceForTest(bcrypt.MinCost),
		Tokens:       tokens,
		Generator:    generator,
		Publisher:    publisher,
		CacheManager: cache.NewCacheManager(nil),
		Validator:    validator.New(),
		Logger:       logger,
	})
	require.NoError(t, err)

	return &testEnv{
		repo:      repo,
		manager:   manager,
		publisher: publisher,
		generator: generator,
	}
}

func validRegisterRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:       "Asha Kumar",
		Email:      "asha@example.com",
		Password:   "password123",
		Phone:      "987-654-3210",
		Role:       models.RoleStudent,
		Education:  "BTech",
		Interests:  []string{"Artificial Intelligence"},
		SkillLevel: models.SkillBeginner,
		CareerGoal: "AI Engineer",
		Consent:    true,
	}
}

func registerStudent(t *testing.T, env *testEnv) *models.User {
	t.Helper()

	resp, err := env.manager.Auth().Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	return resp.User
}
