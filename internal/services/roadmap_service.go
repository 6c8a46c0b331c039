package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mr-pathfinder/roadmap-service/internal/ai"
	"github.com/mr-pathfinder/roadmap-service/internal/cache"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
	"github.com/mr-pathfinder/roadmap-service/internal/validator"
)

const (
	// MaxRoadmapsPerUser caps AI generation cost per account.
	MaxRoadmapsPerUser = 3

	// Each first-time completion moves the readiness score by this much.
	completionScoreIncrement = 5
)

// RoadmapService generates roadmaps and tracks progress against them.
type RoadmapService interface {
	Generate(ctx context.Context, userID string, req *models.GenerateRoadmapRequest) (*models.Roadmap, error)
	List(ctx context.Context, userID string) ([]models.Roadmap, error)
	UpdateProgress(ctx context.Context, userID string, req *models.UpdateProgressRequest) (*models.ProgressResponse, error)
}

type roadmapService struct {
	repo      repositories.Repository
	generator ai.Generator
	cacheMgr  *cache.CacheManager
	validator *validator.Validator
	logger    *slog.Logger
}

func NewRoadmapService(
	repo repositories.Repository,
	generator ai.Generator,
	cacheMgr *cache.CacheManager,
	v *validator.Validator,
	logger *slog.Logger,
) RoadmapService {
	return &roadmapService{
		repo:      repo,
		generator: generator,
		cacheMgr:  cacheMgr,
		validator: v,
		logger:    logger,
	}
}

func (s *roadmapService) Generate(ctx context.Context, userID string, req *models.GenerateRoadmapRequest) (*models.Roadmap, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, ErrValidationFailed
	}

	count, err := s.repo.Roadmap().CountByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to count roadmaps", "error", err, "user_id", userID)
		return nil, ErrInternalError
	}
	if count >= MaxRoadmapsPerUser {
		return nil, ErrRoadmapLimitReached
	}

	profile := ai.Profile{
		Education:    req.Education,
		Interests:    req.Interests,
		SkillLevel:   req.SkillLevel,
		CareerGoal:   req.CareerGoal,
		HoursPerWeek: req.HoursPerWeek,
	}

	generated := s.generateOrFallback(ctx, profile)

	roadmap := &models.Roadmap{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       generated.Title,
		Description: generated.Description,
		Goal:        profile.Goal(),
		Phases:      generated.Phases,
		Projects:    generated.Projects,
	}

	if err := s.repo.Roadmap().Create(ctx, roadmap); err != nil {
		s.logger.Error("Failed to save roadmap", "error", err, "user_id", userID)
		return nil, ErrInternalError
	}

	if err := s.cacheMgr.InvalidateRoadmaps(ctx, userID); err != nil {
		s.logger.Warn("Failed to invalidate roadmap cache", "error", err)
	}

	s.logger.Info("Roadmap generated",
		"roadmap_id", roadmap.ID,
		"user_id", userID,
		"phases", len(roadmap.Phases),
		"projects", len(roadmap.Projects))

	return roadmap, nil
}

// generateOrFallback tries the AI provider once and serves the catalog on
// any failure. Provider errors end here; callers always get a roadmap.
func (s *roadmapService) generateOrFallback(ctx context.Context, profile ai.Profile) *ai.NormalizedRoadmap {
	text, err := s.generator.GenerateText(ctx, ai.BuildRoadmapPrompt(profile))
	if err != nil {
		s.logger.Warn("AI generation failed, using fallback catalog",
			"error", err, "track", profile.Track())
		return ai.FallbackRoadmap(profile)
	}

	generated, err := ai.ParseRoadmap(text)
	if err != nil {
		s.logger.Warn("AI response unusable, using fallback catalog",
			"error", err, "track", profile.Track())
		return ai.FallbackRoadmap(profile)
	}

	return generated
}

// List serves roadmap reads through the cache, keyed by owner.
func (s *roadmapService) List(ctx context.Context, userID string) ([]models.Roadmap, error) {
	var roadmaps []models.Roadmap
	err := s.cacheMgr.Roadmap.CacheOrExecute(ctx, userID, &roadmaps, cache.RoadmapCacheConfig.TTL, func() (interface{}, error) {
		stored, err := s.repo.Roadmap().ListByUser(ctx, userID)
		if err != nil {
			s.logger.Error("Failed to list roadmaps", "error", err, "user_id", userID)
			return nil, ErrInternalError
		}
		return stored, nil
	})
	if err != nil {
		return nil, ErrInternalError
	}
	return roadmaps, nil
}

func (s *roadmapService) UpdateProgress(ctx context.Context, userID string, req *models.UpdateProgressRequest) (*models.ProgressResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, ErrValidationFailed
	}

	roadmap, err := s.repo.Roadmap().GetByID(ctx, req.RoadmapID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoadmapNotFound
		}
		s.logger.Error("Failed to load roadmap", "error", err, "roadmap_id", req.RoadmapID)
		return nil, ErrInternalError
	}

	if roadmap.UserID != userID {
		return nil, ErrForbidden
	}

	wasCompleted, err := s.applyProgress(roadmap, req)
	if err != nil {
		return nil, err
	}

	// Only a first-time completion scores. Un-completing never decrements
	// and re-completing never double-counts.
	scored := req.Completed && !wasCompleted

	// The progress flag and the gamification counters must not drift
	// apart, so both writes share one transaction.
	var user *models.User
	txErr := s.repo.WithTransaction(ctx, func(r repositories.Repository) error {
		if err := r.Roadmap().Update(ctx, roadmap); err != nil {
			return err
		}

		u, err := r.User().GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if scored {
			now := time.Now()
			u.ReadinessScore += completionScoreIncrement
			u.Streak++
			u.LastActivity = now
			EvaluateBadges(u, now)

			if err := r.User().UpdateGamification(ctx, u.ID, u.ReadinessScore, u.Streak, u.Badges, now); err != nil {
				return err
			}
		}

		user = u
		return nil
	})
	if txErr != nil {
		s.logger.Error("Failed to save progress", "error", txErr, "roadmap_id", roadmap.ID)
		return nil, ErrInternalError
	}

	if err := s.cacheMgr.InvalidateRoadmaps(ctx, userID); err != nil {
		s.logger.Warn("Failed to invalidate roadmap cache", "error", err)
	}
	if scored {
		if err := s.cacheMgr.InvalidateProfile(ctx, userID); err != nil {
			s.logger.Warn("Failed to invalidate profile cache", "error", err)
		}
		if err := s.cacheMgr.InvalidateCandidates(ctx); err != nil {
			s.logger.Warn("Failed to invalidate candidate cache", "error", err)
		}
	}

	return &models.ProgressResponse{
		Roadmap:        roadmap,
		ReadinessScore: user.ReadinessScore,
		Streak:         user.Streak,
		Badges:         user.Badges,
	}, nil
}

// applyProgress mutates the targeted item and reports whether it was
// already completed before this call.
func (s *roadmapService) applyProgress(roadmap *models.Roadmap, req *models.UpdateProgressRequest) (bool, error) {
	switch req.Type {
	case models.ItemPhase:
		phase := roadmap.FindPhase(req.ItemID)
		if phase == nil {
			return false, ErrItemNotFound
		}
		was := phase.Completed
		phase.Completed = req.Completed
		return was, nil

	case models.ItemProject:
		project := roadmap.FindProject(req.ItemID)
		if project == nil {
			return false, ErrItemNotFound
		}
		if req.Completed && req.SubmissionLink == "" && project.SubmissionLink == "" {
			return false, ErrSubmissionRequired
		}
		was := project.Completed
		project.Completed = req.Completed
		if req.SubmissionLink != "" {
			project.SubmissionLink = req.SubmissionLink
		}
		return was, nil

	default:
		return false, ErrValidationFailed
	}
}
