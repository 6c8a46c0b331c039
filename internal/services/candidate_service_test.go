package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mr-pathfinder/roadmap-service/internal/events"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
)

// registerScored creates a student and bumps the readiness score to the
// given value directly through the repository.
func registerScored(t *testing.T, env *testEnv, email string, score int, goal string, interests ...string) *models.User {
	t.Helper()
	ctx := context.Background()

	req := validRegisterRequest()
	req.Email = email
	req.Name = "Student " + email
	req.CareerGoal = goal
	req.Interests = interests

	resp, err := env.manager.Auth().Register(ctx, req)
	require.NoError(t, err)

	user := resp.User
	require.NoError(t, env.repo.User().UpdateGamification(ctx, user.ID, score, user.Streak, user.Badges, user.LastActivity))
	user.ReadinessScore = score
	return user
}

func TestCandidateService_Search_SortsAndFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Five students so the lazy seeder stays quiet.
	registerScored(t, env, "a@example.com", 85, "AI Engineer", "Artificial Intelligence")
	registerScored(t, env, "b@example.com", 72, "Full Stack Developer", "Web Development")
	registerScored(t, env, "c@example.com", 65, "Data Analyst", "Data Science")
	registerScored(t, env, "d@example.com", 30, "QA Engineer", "Testing")
	registerScored(t, env, "e@example.com", 20, "Security Analyst", "Networking")

	got, err := env.manager.Candidate().Search(ctx, repositories.CandidateFilters{})
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, 85, got[0].ReadinessScore)
	assert.Equal(t, 72, got[1].ReadinessScore)
	assert.Equal(t, 65, got[2].ReadinessScore)

	min := 70
	got, err = env.manager.Candidate().Search(ctx, repositories.CandidateFilters{MinScore: &min})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 85, got[0].ReadinessScore)

	got, err = env.manager.Candidate().Search(ctx, repositories.CandidateFilters{Skill: "web"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b@example.com", got[0].Email)
}

func TestCandidateService_Search_DedupesByEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerScored(t, env, "a@example.com", 85, "AI Engineer", "Artificial Intelligence")
	registerScored(t, env, "b@example.com", 72, "Full Stack Developer", "Web Development")
	registerScored(t, env, "c@example.com", 65, "Data Analyst", "Data Science")
	registerScored(t, env, "d@example.com", 30, "QA Engineer", "Testing")

	// Two accounts share an email modulo case; only the higher-scoring
	// one may appear in the directory.
	for i, dup := range []struct {
		email string
		score int
	}{
		{"Dup@Example.com", 90},
		{"dup@example.com", 60},
	} {
		require.NoError(t, env.repo.User().Create(ctx, &models.User{
			ID:             uuid.NewString(),
			Name:           "Dup Candidate",
			Email:          dup.email,
			PasswordHash:   "x",
			Phone:          "9876543210",
			Role:           models.RoleStudent,
			Consent:        true,
			ReadinessScore: dup.score,
			Streak:         1 + i,
		}))
	}

	got, err := env.manager.Candidate().Search(ctx, repositories.CandidateFilters{})
	require.NoError(t, err)
	require.Len(t, got, 5)

	var dupes []models.User
	for _, candidate := range got {
		if strings.EqualFold(candidate.Email, "dup@example.com") {
			dupes = append(dupes, candidate)
		}
	}
	require.Len(t, dupes, 1)
	assert.Equal(t, 90, dupes[0].ReadinessScore)
}

func TestCandidateService_Search_LazySeedsEmptyDirectory(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.manager.Candidate().Search(context.Background(), repositories.CandidateFilters{})
	require.NoError(t, err)

	// The demo dataset fills an empty directory on first query.
	assert.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].ReadinessScore, got[i].ReadinessScore)
	}
}

func TestCandidateService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := registerScored(t, env, "gone@example.com", 60, "AI Engineer")

	require.NoError(t, env.manager.Candidate().Delete(ctx, student.ID))

	_, err := env.repo.User().GetByID(ctx, student.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	published := env.publisher.GetPublishedEvents()
	var removed int
	for _, ev := range published {
		if ev.Type == events.EventCandidateRemoved {
			removed++
		}
	}
	assert.Equal(t, 1, removed)
}

func TestCandidateService_Delete_NonStudentRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := validRegisterRequest()
	req.Email = "recruiter@example.com"
	req.Role = models.RoleHR
	resp, err := env.manager.Auth().Register(ctx, req)
	require.NoError(t, err)

	err = env.manager.Candidate().Delete(ctx, resp.User.ID)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestCandidateService_Delete_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.manager.Candidate().Delete(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestCandidateService_UpdateContact(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := registerScored(t, env, "contact@example.com", 60, "AI Engineer")

	phone := "(911) 234-5678"
	updated, err := env.manager.Candidate().UpdateContact(ctx, student.ID, &models.UpdateContactRequest{
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "9112345678", updated.Phone)

	bad := "123"
	_, err = env.manager.Candidate().UpdateContact(ctx, student.ID, &models.UpdateContactRequest{
		Phone: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestCandidateService_Reset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerScored(t, env, "r1@example.com", 60, "AI Engineer")
	registerScored(t, env, "r2@example.com", 55, "Web Developer")

	removed, err := env.manager.Candidate().Reset(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	count, err := env.repo.User().CountStudents(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCandidateService_Export(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerScored(t, env, "x1@example.com", 90, "AI Engineer", "Artificial Intelligence")
	registerScored(t, env, "x2@example.com", 40, "Web Developer", "Web Development")
	registerScored(t, env, "x3@example.com", 35, "Data Analyst", "Data Science")
	registerScored(t, env, "x4@example.com", 25, "QA Engineer", "Testing")
	registerScored(t, env, "x5@example.com", 15, "DevOps Engineer", "CI/CD")

	data, err := env.manager.Candidate().Export(ctx, repositories.CandidateFilters{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Candidates")
	require.NoError(t, err)
	require.Len(t, rows, 6, "header plus five candidates")
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "x1@example.com", rows[1][1], "highest score exported first")
}

func TestCandidateService_Alerts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerScored(t, env, "alert@example.com", 60, "AI Engineer")

	alerts, err := env.manager.Candidate().Alerts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "alert@example.com", alerts[0].Email)
}
