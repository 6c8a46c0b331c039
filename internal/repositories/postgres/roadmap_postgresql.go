package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
)

type roadmapPostgreSQL struct {
	db *gorm.DB
}

func NewRoadmapPostgreSQL(db *gorm.DB) repositories.RoadmapRepository {
	return &roadmapPostgreSQL{db: db}
}

func (r *roadmapPostgreSQL) Create(ctx context.Context, roadmap *models.Roadmap) error {
	if err := r.db.WithContext(ctx).Create(roadmap).Error; err != nil {
		return handleDBError(err, "create roadmap")
	}
	return nil
}

func (r *roadmapPostgreSQL) GetByID(ctx context.Context, id string) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	if err := r.db.WithContext(ctx).First(&roadmap, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get roadmap by id")
	}
	return &roadmap, nil
}

func (r *roadmapPostgreSQL) ListByUser(ctx context.Context, userID string) ([]models.Roadmap, error) {
	var roadmaps []models.Roadmap
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&roadmaps).Error
	if err != nil {
		return nil, handleDBError(err, "list roadmaps by user")
	}
	return roadmaps, nil
}

func (r *roadmapPostgreSQL) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Roadmap{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, handleDBError(err, "count roadmaps by user")
	}
	return count, nil
}

func (r *roadmapPostgreSQL) Update(ctx context.Context, roadmap *models.Roadmap) error {
	if err := r.db.WithContext(ctx).Save(roadmap).Error; err != nil {
		return handleDBError(err, "update roadmap")
	}
	return nil
}
