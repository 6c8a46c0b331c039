package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mr-pathfinder/roadmap-service/internal/ai"
	"github.com/mr-pathfinder/roadmap-service/internal/auth"
	"github.com/mr-pathfinder/roadmap-service/internal/cache"
	"github.com/mr-pathfinder/roadmap-service/internal/events"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories/memory"
	"github.com/mr-pathfinder/roadmap-service/internal/validator"
)

// newCachedTestEnv is newTestEnv with a live miniredis-backed cache so the
// read-through and invalidation paths are exercised for real.
func newCachedTestEnv(t *testing.T) (*testEnv, *cache.CacheManager) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memory.NewMemoryRepository()
	publisher := events.NewMockEventPublisher(logger)
	generator := &stubGenerator{err: ai.ErrProviderUnavailable}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cacheMgr := cache.NewCacheManager(client)

	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars")
	require.NoError(t, err)

	manager, err := NewServiceManager(Dependencies{
		Repo:         repo,
		Passwords:    auth.NewPasswordServiceForTest(bcrypt.MinCost),
		Tokens:       tokens,
		Generator:    generator,
		Publisher:    publisher,
		CacheManager: cacheMgr,
		Validator:    validator.New(),
		Logger:       logger,
	})
	require.NoError(t, err)

	return &testEnv{
		repo:      repo,
		manager:   manager,
		publisher: publisher,
		generator: generator,
	}, cacheMgr
}

func TestAuthService_GetProfile_ReadsThroughCache(t *testing.T) {
	env, cacheMgr := newCachedTestEnv(t)
	ctx := context.Background()

	user := registerStudent(t, env)

	// A pre-seeded cache entry is served as-is.
	cached := *user
	cached.Name = "Cached Copy"
	require.NoError(t, cacheMgr.Profile.Set(ctx, user.ID, &cached, time.Minute))

	got, err := env.manager.Auth().GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cached Copy", got.Name)

	// A profile update drops the entry; the next read is fresh.
	name := "Fresh Name"
	_, err = env.manager.Auth().UpdateProfile(ctx, user.ID, &models.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)

	got, err = env.manager.Auth().GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Name", got.Name)
}

func TestRoadmapService_List_ReadsThroughCache(t *testing.T) {
	env, cacheMgr := newCachedTestEnv(t)
	ctx := context.Background()

	user := registerStudent(t, env)
	generateRoadmap(t, env, user.ID)

	// A pre-seeded cache entry is served as-is.
	require.NoError(t, cacheMgr.Roadmap.Set(ctx, user.ID, []models.Roadmap{}, time.Minute))

	got, err := env.manager.Roadmap().List(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Generating another roadmap drops the entry.
	generateRoadmap(t, env, user.ID)

	got, err = env.manager.Roadmap().List(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRoadmapService_UpdateProgress_InvalidatesCaches(t *testing.T) {
	env, cacheMgr := newCachedTestEnv(t)
	ctx := context.Background()

	user := registerStudent(t, env)
	roadmap := generateRoadmap(t, env, user.ID)

	stale := *user
	stale.ReadinessScore = 1
	require.NoError(t, cacheMgr.Profile.Set(ctx, user.ID, &stale, time.Minute))
	require.NoError(t, cacheMgr.Roadmap.Set(ctx, user.ID, []models.Roadmap{}, time.Minute))

	_, err := env.manager.Roadmap().UpdateProgress(ctx, user.ID, &models.UpdateProgressRequest{
		RoadmapID: roadmap.ID,
		ItemID:    roadmap.Phases[0].ID,
		Type:      models.ItemPhase,
		Completed: true,
	})
	require.NoError(t, err)

	roadmaps, err := env.manager.Roadmap().List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, roadmaps, 1)
	assert.True(t, roadmaps[0].Phases[0].Completed)

	profile, err := env.manager.Auth().GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 55, profile.ReadinessScore)
}
