package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
)

func generateRoadmap(t *testing.T, env *testEnv, userID string) *models.Roadmap {
	t.Helper()

	roadmap, err := env.manager.Roadmap().Generate(context.Background(), userID, &models.GenerateRoadmapRequest{
		Interests:  []string{"Artificial Intelligence"},
		CareerGoal: "AI Engineer",
	})
	require.NoError(t, err)
	return roadmap
}

func TestRoadmapService_Generate_FallbackWhenProviderDown(t *testing.T) {
	env := newTestEnv(t)
	user := registerStudent(t, env)

	// The stub generator fails by default, so this exercises the
	// fallback catalog end to end.
	roadmap := generateRoadmap(t, env, user.ID)

	assert.Equal(t, "AI Mastery Roadmap", roadmap.Title)
	assert.Equal(t, user.ID, roadmap.UserID)
	assert.NotEmpty(t, roadmap.Phases)
	assert.NotEmpty(t, roadmap.Projects)
	for _, phase := range roadmap.Phases {
		assert.NotEmpty(t, phase.ID)
		assert.False(t, phase.Completed)
	}
}

func TestRoadmapService_Generate_UsesProviderOutput(t *testing.T) {
	env := newTestEnv(t)
	user := registerStudent(t, env)

	env.generator.err = nil
	env.generator.text = "```json\n" + `{
		"title": "Custom AI Path",
		"description": "tailored",
		"phases": [
			{"phaseName": "Phase 1: Python", "duration": "Weeks 1-2", "topics": ["Syntax"],
			 "resources": [{"title": "Video: Python", "url": "https://example.com", "type": "video"}]}
		],
		"projects": [
			{"title": "Classifier", "problemStatement": "Build one.", "tools": ["Python"],
			 "implementationGuide": "Step 1", "githubLink": "https://github.com/x/y"}
		]
	}` + "\n```"

	roadmap := generateRoadmap(t, env, user.ID)
	assert.Equal(t, "Custom AI Path", roadmap.Title)
	require.Len(t, roadmap.Phases, 1)
	assert.Equal(t, "Phase 1: Python", roadmap.Phases[0].Name)
}

func TestRoadmapService_Generate_LimitReached(t *testing.T) {
	env := newTestEnv(t)
	user := registerStudent(t, env)

	for i := 0; i < MaxRoadmapsPerUser; i++ {
		generateRoadmap(t, env, user.ID)
	}

	_, err := env.manager.Roadmap().Generate(context.Background(), user.ID, &models.GenerateRoadmapRequest{
		Interests: []string{"Web Development"},
	})
	assert.ErrorIs(t, err, ErrRoadmapLimitReached)
}

func TestRoadmapService_List(t *testing.T) {
	env := newTestEnv(t)
	user := registerStudent(t, env)

	generateRoadmap(t, env, user.ID)
	generateRoadmap(t, env, user.ID)

	roadmaps, err := env.manager.Roadmap().List(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, roadmaps, 2)
}

func TestRoadmapService_UpdateProgress_PhaseCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerStudent(t, env)
	roadmap := generateRoadmap(t, env, user.ID)

	req := &models.UpdateProgressRequest{
		RoadmapID: roadmap.ID,
		ItemID:    roadmap.Phases[0].ID,
		Type:      models.ItemPhase,
		Completed: true,
	}

	resp, err := env.manager.Roadmap().UpdateProgress(ctx, user.ID, req)
	require.NoError(t, err)

	assert.True(t, resp.Roadmap.Phases[0].Completed)
	assert.Equal(t, initialReadinessScore+completionScoreIncrement, resp.ReadinessScore)
	assert.Equal(t, initialStreak+1, resp.Streak)

	// Completing the same phase again is a no-op for scoring.
	resp, err = env.manager.Roadmap().UpdateProgress(ctx, user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, initialReadinessScore+completionScoreIncrement, resp.ReadinessScore)
	assert.Equal(t, initialStreak+1, resp.Streak)
}

func TestRoadmapService_UpdateProgress_UncompleteKeepsScore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerStudent(t, env)
	roadmap := generateRoadmap(t, env, user.ID)

	complete := &models.UpdateProgressRequest{
		RoadmapID: roadmap.ID,
		ItemID:    roadmap.Phases[0].ID,
		Type:      models.ItemPhase,
		Completed: true,
	}
	resp, err := env.manager.Roadmap().UpdateProgress(ctx, user.ID, complete)
	require.NoError(t, err)
	scored := resp.ReadinessScore

	uncomplete := *complete
	uncomplete.Completed = false
	resp, err = env.manager.Roadmap().UpdateProgress(ctx, user.ID, &uncomplete)
	require.NoError(t, err)

	assert.False(t, resp.Roadmap.Phases[0].Completed)
	assert.Equal(t, scored, resp.ReadinessScore, "un-completing never decrements")

	// Re-completing scores again because the item is back to incomplete.
	resp, err = env.manager.Roadmap().UpdateProgress(ctx, user.ID, complete)
	require.NoError(t, err)
	assert.Equal(t, scored+completionScoreIncrement, resp.ReadinessScore)
}

func TestRoadmapService_UpdateProgress_ProjectNeedsSubmission(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerStudent(t, env)
	roadmap := generateRoadmap(t, env, user.ID)

	req := &models.UpdateProgressRequest{
		RoadmapID: roadmap.ID,
		ItemID:    roadmap.Projects[0].ID,
		Type:      models.ItemProject,
		Completed: true,
	}

	_, err := env.manager.Roadmap().UpdateProgress(ctx, user.ID, req)
	assert.ErrorIs(t, err, ErrSubmissionRequired)

	// The failed attempt must not flip the flag.
	stored, err := env.repo.Roadmap().GetByID(ctx, roadmap.ID)
	require.NoError(t, err)
	assert.False(t, stored.Projects[0].Completed)

	req.SubmissionLink = "https://github.com/asha/house-prices"
	resp, err := env.manager.Roadmap().UpdateProgress(ctx, user.ID, req)
	require.NoError(t, err)
	assert.True(t, resp.Roadmap.Projects[0].Completed)
	assert.Equal(t, "https://github.com/asha/house-prices", resp.Roadmap.Projects[0].SubmissionLink)
}

func TestRoadmapService_UpdateProgress_OwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := registerStudent(t, env)
	roadmap := generateRoadmap(t, env, owner.ID)

	other := validRegisterRequest()
	other.Email = "intruder@example.com"
	resp, err := env.manager.Auth().Register(ctx, other)
	require.NoError(t, err)

	_, err = env.manager.Roadmap().UpdateProgress(ctx, resp.User.ID, &models.UpdateProgressRequest{
		RoadmapID: roadmap.ID,
		ItemID:    roadmap.Phases[0].ID,
		Type:      models.ItemPhase,
		Completed: true,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRoadmapService_UpdateProgress_UnknownItem(t *testing.T) {
	env := newTestEnv(t)
	user := registerStudent(t, env)
	roadmap := generateRoadmap(t, env, user.ID)

	_, err := env.manager.Roadmap().UpdateProgress(context.Background(), user.ID, &models.UpdateProgressRequest{
		RoadmapID: roadmap.ID,
		ItemID:    "no-such-item",
		Type:      models.ItemPhase,
		Completed: true,
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRoadmapService_UpdateProgress_RoadmapNotFound(t *testing.T) {
	env := newTestEnv(t)
	user := registerStudent(t, env)

	_, err := env.manager.Roadmap().UpdateProgress(context.Background(), user.ID, &models.UpdateProgressRequest{
		RoadmapID: "missing",
		ItemID:    "x",
		Type:      models.ItemPhase,
		Completed: true,
	})
	assert.ErrorIs(t, err, ErrRoadmapNotFound)
}
