package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-pathfinder/roadmap-service/internal/events"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.manager.Auth().Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	user := resp.User
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "9876543210", user.Phone, "phone should be normalized to digits")
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, initialReadinessScore, user.ReadinessScore)
	assert.Equal(t, initialStreak, user.Streak)

	// A candidate alert and a registration event fire for students.
	alerts, err := env.repo.CandidateAlert().ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, user.ID, alerts[0].UserID)

	published := env.publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventCandidateRegistered, published[0].Type)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.manager.Auth().Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	_, err = env.manager.Auth().Register(ctx, validRegisterRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The duplicate attempt must not create a second account.
	count, err := env.repo.User().CountStudents(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAuthService_Register_InvalidPhone(t *testing.T) {
	env := newTestEnv(t)

	req := validRegisterRequest()
	req.Phone = "987654321" // nine digits

	_, err := env.manager.Auth().Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestAuthService_Register_StudentWithoutConsent(t *testing.T) {
	env := newTestEnv(t)

	req := validRegisterRequest()
	req.Consent = false

	_, err := env.manager.Auth().Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrConsentRequired)
}

func TestAuthService_Register_HRWithoutConsent(t *testing.T) {
	env := newTestEnv(t)

	req := validRegisterRequest()
	req.Role = models.RoleHR
	req.Consent = false

	resp, err := env.manager.Auth().Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleHR, resp.User.Role)

	// HR signups never hit the candidate alert feed.
	alerts, err := env.repo.CandidateAlert().ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerStudent(t, env)

	resp, err := env.manager.Auth().Login(ctx, &models.LoginRequest{
		Email:    "Asha@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.Email)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerStudent(t, env)

	// Wrong password and unknown email return the same error.
	_, err := env.manager.Auth().Login(ctx, &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.manager.Auth().Login(ctx, &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerStudent(t, env)

	name := "Asha K"
	goal := "ML Engineer"
	updated, err := env.manager.Auth().UpdateProfile(ctx, user.ID, &models.UpdateProfileRequest{
		Name:       &name,
		CareerGoal: &goal,
		Interests:  []string{"Machine Learning"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha K", updated.Name)
	assert.Equal(t, "ML Engineer", updated.CareerGoal)
	assert.Equal(t, []string{"Machine Learning"}, []string(updated.Interests))

	// Gamification state survives profile updates.
	assert.Equal(t, initialReadinessScore, updated.ReadinessScore)
}

func TestAuthService_UpdateProfile_BadPhone(t *testing.T) {
	env := newTestEnv(t)
	user := registerStudent(t, env)

	phone := "12345"
	_, err := env.manager.Auth().UpdateProfile(context.Background(), user.ID, &models.UpdateProfileRequest{
		Phone: &phone,
	})
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.manager.Auth().GetProfile(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
