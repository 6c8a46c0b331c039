package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mr-pathfinder/roadmap-service/internal/auth"
	"github.com/mr-pathfinder/roadmap-service/internal/cache"
	"github.com/mr-pathfinder/roadmap-service/internal/events"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
	"github.com/mr-pathfinder/roadmap-service/internal/seed"
	"github.com/mr-pathfinder/roadmap-service/internal/validator"
)

// CandidateService powers the HR directory.
type CandidateService interface {
	Search(ctx context.Context, filters repositories.CandidateFilters) ([]models.User, error)
	Delete(ctx context.Context, candidateID string) error
	UpdateContact(ctx context.Context, candidateID string, req *models.UpdateContactRequest) (*models.User, error)
	Reset(ctx context.Context) (int64, error)
	Export(ctx context.Context, filters repositories.CandidateFilters) ([]byte, error)
	Alerts(ctx context.Context, limit int) ([]models.CandidateAlert, error)
}

type candidateService struct {
	repo      repositories.Repository
	passwords *auth.PasswordService
	publisher events.EventPublisher
	cacheMgr  *cache.CacheManager
	validator *validator.Validator
	logger    *slog.Logger

	seedMu sync.Mutex
	seeded bool
}

func NewCandidateService(
	repo repositories.Repository,
	passwords *auth.PasswordService,
	publisher events.EventPublisher,
	cacheMgr *cache.CacheManager,
	v *validator.Validator,
	logger *slog.Logger,
) CandidateService {
	return &candidateService{
		repo:      repo,
		passwords: passwords,
		publisher: publisher,
		cacheMgr:  cacheMgr,
		validator: v,
		logger:    logger,
	}
}

func (s *candidateService) Search(ctx context.Context, filters repositories.CandidateFilters) ([]models.User, error) {
	s.ensureSeeded(ctx)

	cacheKey := searchCacheKey(filters)
	var candidates []models.User
	err := s.cacheMgr.Candidate.CacheOrExecute(ctx, cacheKey, &candidates, cache.CandidateCacheConfig.TTL, func() (interface{}, error) {
		students, err := s.repo.User().ListStudents(ctx, filters)
		if err != nil {
			return nil, err
		}
		return dedupeByEmail(students), nil
	})
	if err != nil {
		s.logger.Error("Failed to search candidates", "error", err)
		return nil, ErrInternalError
	}

	return candidates, nil
}

func searchCacheKey(filters repositories.CandidateFilters) string {
	minScore := -1
	if filters.MinScore != nil {
		minScore = *filters.MinScore
	}
	return fmt.Sprintf("search:%s:%d:%d:%d",
		strings.ToLower(filters.Skill), minScore, filters.Limit, filters.Offset)
}

// dedupeByEmail collapses accounts sharing an email, keeping the higher
// readiness score. Input is already sorted by score descending so the
// first occurrence wins and order is preserved.
func dedupeByEmail(students []models.User) []models.User {
	seen := make(map[string]struct{}, len(students))
	out := make([]models.User, 0, len(students))
	for _, student := range students {
		email := strings.ToLower(student.Email)
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, student)
	}
	return out
}

// ensureSeeded loads the demo dataset the first time the directory is
// queried on an empty database.
func (s *candidateService) ensureSeeded(ctx context.Context) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	if s.seeded {
		return
	}
	s.seeded = true

	count, err := s.repo.User().CountStudents(ctx)
	if err != nil {
		s.logger.Error("Failed to count students for seeding", "error", err)
		return
	}
	if count >= 5 {
		return
	}

	hash, err := s.passwords.Hash(seed.DemoPassword)
	if err != nil {
		s.logger.Error("Failed to hash seed password", "error", err)
		return
	}

	seeded := 0
	for _, user := range seed.Candidates(hash) {
		exists, err := s.repo.User().ExistsByEmail(ctx, user.Email)
		if err != nil || exists {
			continue
		}
		u := user
		if err := s.repo.User().Create(ctx, &u); err != nil {
			s.logger.Warn("Failed to seed candidate", "error", err, "email", user.Email)
			continue
		}
		seeded++
	}

	hrExists, err := s.repo.User().ExistsByEmail(ctx, seed.DemoHREmail)
	if err == nil && !hrExists {
		hr := seed.HRUser(hash)
		if err := s.repo.User().Create(ctx, &hr); err != nil {
			s.logger.Warn("Failed to seed HR user", "error", err)
		}
	}

	s.logger.Info("Seeded demo candidates", "count", seeded)
}

func (s *candidateService) Delete(ctx context.Context, candidateID string) error {
	user, err := s.repo.User().GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCandidateNotFound
		}
		s.logger.Error("Failed to load candidate", "error", err, "candidate_id", candidateID)
		return ErrInternalError
	}

	if !user.IsStudent() {
		return ErrInvalidTarget
	}

	if err := s.repo.User().Delete(ctx, candidateID); err != nil {
		s.logger.Error("Failed to delete candidate", "error", err, "candidate_id", candidateID)
		return ErrInternalError
	}

	event := events.NewCandidateRemovedEvent(user)
	if err := s.publisher.PublishCandidateEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish candidate removed event", "error", err)
	}

	if err := s.cacheMgr.InvalidateCandidates(ctx); err != nil {
		s.logger.Warn("Failed to invalidate candidate cache", "error", err)
	}

	s.logger.Info("Candidate removed", "candidate_id", candidateID)
	return nil
}

func (s *candidateService) UpdateContact(ctx context.Context, candidateID string, req *models.UpdateContactRequest) (*models.User, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, ErrValidationFailed
	}

	user, err := s.repo.User().GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		s.logger.Error("Failed to load candidate", "error", err, "candidate_id", candidateID)
		return nil, ErrInternalError
	}

	if !user.IsStudent() {
		return nil, ErrInvalidTarget
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
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			exists, err := s.repo.User().ExistsByEmail(ctx, email)
			if err != nil {
				s.logger.Error("Failed to check email uniqueness", "error", err)
				return nil, ErrInternalError
			}
			if exists {
				return nil, ErrEmailTaken
			}
			user.Email = email
		}
	}

	if err := s.repo.User().Update(ctx, user); err != nil {
		s.logger.Error("Failed to update candidate contact", "error", err, "candidate_id", candidateID)
		return nil, ErrInternalError
	}

	if err := s.cacheMgr.InvalidateCandidates(ctx); err != nil {
		s.logger.Warn("Failed to invalidate candidate cache", "error", err)
	}

	return user, nil
}

// Reset wipes every student account so a demo can start clean. The next
// Search reseeds the directory.
func (s *candidateService) Reset(ctx context.Context) (int64, error) {
	removed, err := s.repo.User().DeleteStudents(ctx)
	if err != nil {
		s.logger.Error("Failed to reset candidates", "error", err)
		return 0, ErrInternalError
	}

	s.seedMu.Lock()
	s.seeded = false
	s.seedMu.Unlock()

	if err := s.cacheMgr.InvalidateCandidates(ctx); err != nil {
		s.logger.Warn("Failed to invalidate candidate cache", "error", err)
	}

	s.logger.Info("Candidate directory reset", "removed", removed)
	return removed, nil
}

// Export renders the current directory view as an xlsx workbook.
func (s *candidateService) Export(ctx context.Context, filters repositories.CandidateFilters) ([]byte, error) {
	candidates, err := s.Search(ctx, filters)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Candidates"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Email", "Phone", "Education", "Career Goal", "Interests", "Skill Level", "Readiness Score", "Streak", "Last Activity"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, c := range candidates {
		values := []interface{}{
			c.Name,
			c.Email,
			c.Phone,
			c.Education,
			c.CareerGoal,
			strings.Join(c.Interests, ", "),
			string(c.SkillLevel),
			c.ReadinessScore,
			c.Streak,
			c.LastActivity.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("Failed to render candidate export", "error", err)
		return nil, ErrInternalError
	}

	return buf.Bytes(), nil
}

func (s *candidateService) Alerts(ctx context.Context, limit int) ([]models.CandidateAlert, error) {
	alerts, err := s.repo.CandidateAlert().ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list candidate alerts", "error", err)
		return nil, ErrInternalError
	}
	return alerts, nil
}
