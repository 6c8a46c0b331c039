package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mr-pathfinder/roadmap-service/internal/auth"
	"github.com/mr-pathfinder/roadmap-service/internal/cache"
	"github.com/mr-pathfinder/roadmap-service/internal/events"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
	"github.com/mr-pathfinder/roadmap-service/internal/validator"
)

// Registration starts students with a non-zero score so the first
// completed item already feels like progress.
const (
	initialReadinessScore = 50
	initialStreak         = 1
)

// AuthService handles registration, login and profile management.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error)
}

type authService struct {
	repo      repositories.Repository
	passwords *auth.PasswordService
	tokens    *auth.TokenService
	publisher events.EventPublisher
	cacheMgr  *cache.CacheManager
	validator *validator.Validator
	logger    *slog.Logger
}

func NewAuthService(
	repo repositories.Repository,
	passwords *auth.PasswordService,
	tokens *auth.TokenService,
	publisher events.EventPublisher,
	cacheMgr *cache.CacheManager,
	v *validator.Validator,
	logger *slog.Logger,
) AuthService {
	return &authService{
		repo:      repo,
		passwords: passwords,
		tokens:    tokens,
		publisher: publisher,
		cacheMgr:  cacheMgr,
		validator: v,
		logger:    logger,
	}
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, ErrValidationFailed
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	if role == models.RoleStudent && !req.Consent {
		return nil, ErrConsentRequired
	}

	phone := validator.NormalizePhone(req.Phone)
	if len(phone) != 10 {
		return nil, ErrInvalidPhone
	}

	var contactNumber string
	if req.ContactNumber != "" {
		contactNumber = validator.NormalizePhone(req.ContactNumber)
		if len(contactNumber) != 10 {
			return nil, ErrInvalidPhone
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.repo.User().ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", "error", err)
		return nil, ErrInternalError
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", "error", err)
		return nil, ErrInternalError
	}

	skillLevel := req.SkillLevel
	if skillLevel == "" {
		skillLevel = models.SkillBeginner
	}

	user := &models.User{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         email,
		PasswordHash:  hash,
		Phone:         phone,
		ContactNumber: contactNumber,
		Role:          role,
		Education:     req.Education,
		Interests:     req.Interests,
		SkillLevel:    skillLevel,
		CareerGoal:    req.CareerGoal,
		DateOfBirth:   req.DateOfBirth,
		Consent:       req.Consent,

		ReadinessScore: initialReadinessScore,
		Streak:         initialStreak,
		LastActivity:   time.Now(),
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", "error", err, "email", email)
		return nil, ErrInternalError
	}

	// Alert and event failures must not fail the registration itself.
	if user.IsStudent() {
		s.notifyCandidateRegistered(ctx, user)
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("Failed to generate token", "error", err)
		return nil, ErrInternalError
	}

	s.logger.Info("User registered", "user_id", user.ID, "role", user.Role)
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *authService) notifyCandidateRegistered(ctx context.Context, user *models.User) {
	alert := &models.CandidateAlert{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		ContactNumber: user.ContactNumber,
		Role:          user.Role,
	}
	if err := s.repo.CandidateAlert().Create(ctx, alert); err != nil {
		s.logger.Error("Failed to create candidate alert", "error", err, "user_id", user.ID)
	}

	event := events.NewCandidateRegisteredEvent(user)
	if err := s.publisher.PublishCandidateEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish candidate event", "error", err, "user_id", user.ID)
	}

	if err := s.cacheMgr.InvalidateCandidates(ctx); err != nil {
		s.logger.Warn("Failed to invalidate candidate cache", "error", err)
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, ErrValidationFailed
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password are indistinguishable to callers.
	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Failed to load user for login", "error", err)
		return nil, ErrInternalError
	}

	if err := s.passwords.Verify(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("Failed to generate token", "error", err)
		return nil, ErrInternalError
	}

	s.logger.Info("User logged in", "user_id", user.ID)
	return &models.AuthResponse{Token: token, User: user}, nil
}

// GetProfile serves profile reads through the cache. Cached copies carry
// no password hash; anything that writes the record back must load it
// through the repository instead.
func (s *authService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.cacheMgr.Profile.CacheOrExecute(ctx, userID, &user, cache.ProfileCacheConfig.TTL, func() (interface{}, error) {
		stored, err := s.repo.User().GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			s.logger.Error("Failed to load profile", "error", err, "user_id", userID)
			return nil, ErrInternalError
		}
		return stored, nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternalError
	}
	return &user, nil
}

// UpdateProfile applies the allowed profile fields. Role, email, password
// and gamification state are not reachable through this path.
func (s *authService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, ErrValidationFailed
	}

	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Failed to load profile for update", "error", err, "user_id", userID)
		return nil, ErrInternalError
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		phone := validator.NormalizePhone(*req.Phone)
		if len(phone) != 10 {
			return nil, ErrInvalidPhone
		}
		user.Phone = phone
	}
	if req.ContactNumber != nil {
		contact := validator.NormalizePhone(*req.ContactNumber)
		if len(contact) != 10 {
			return nil, ErrInvalidPhone
		}
		user.ContactNumber = contact
	}
	if req.Education != nil {
		user.Education = *req.Education
	}
	if req.Interests != nil {
		user.Interests = req.Interests
	}
	if req.SkillLevel != nil {
		user.SkillLevel = *req.SkillLevel
	}
	if req.CareerGoal != nil {
		user.CareerGoal = *req.CareerGoal
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}

	if err := s.repo.User().Update(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", "error", err, "user_id", userID)
		return nil, ErrInternalError
	}

	if err := s.cacheMgr.InvalidateProfile(ctx, userID); err != nil {
		s.logger.Warn("Failed to invalidate profile cache", "error", err)
	}
	if err := s.cacheMgr.InvalidateCandidates(ctx); err != nil {
		s.logger.Warn("Failed to invalidate candidate cache", "error", err)
	}

	return user, nil
}
