package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
)

type userPostgreSQL struct {
	db *gorm.DB
}

func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &userPostgreSQL{db: db}
}

func (r *userPostgreSQL) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return handleDBError(err, "create user")
	}
	return nil
}

func (r *userPostgreSQL) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get user by id")
	}
	return &user, nil
}

func (r *userPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, handleDBError(err, "get user by email")
	}
	return &user, nil
}

func (r *userPostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, handleDBError(err, "check email exists")
	}
	return count > 0, nil
}

func (r *userPostgreSQL) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return handleDBError(err, "update user")
	}
	return nil
}

func (r *userPostgreSQL) UpdateGamification(ctx context.Context, id string, score, streak int, badges []models.Badge, lastActivity time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"readiness_score": score,
			"streak":          streak,
			"badges":          datatypes.JSONSlice[models.Badge](badges),
			"last_activity":   lastActivity,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return handleDBError(result.Error, "update gamification")
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *userPostgreSQL) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete user")
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *userPostgreSQL) ListStudents(ctx context.Context, filters repositories.CandidateFilters) ([]models.User, error) {
	query := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", models.RoleStudent)

	if filters.Skill != "" {
		pattern := "%" + filters.Skill + "%"
		query = query.Where(
			"career_goal ILIKE ? OR name ILIKE ? OR interests::text ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filters.MinScore != nil {
		query = query.Where("readiness_score >= ?", *filters.MinScore)
	}

	query = query.Order("readiness_score DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, handleDBError(err, "list students")
	}
	return users, nil
}

func (r *userPostgreSQL) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", models.RoleStudent).
		Count(&count).Error
	if err != nil {
		return 0, handleDBError(err, "count students")
	}
	return count, nil
}

func (r *userPostgreSQL) DeleteStudents(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("role = ?", models.RoleStudent).
		Delete(&models.User{})
	if result.Error != nil {
		return 0, handleDBError(result.Error, "delete students")
	}
	return result.RowsAffected, nil
}

// handleDBError translates gorm errors into repository errors.
func handleDBError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
