package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
)

type candidateAlertPostgreSQL struct {
	db *gorm.DB
}

func NewCandidateAlertPostgreSQL(db *gorm.DB) repositories.CandidateAlertRepository {
	return &candidateAlertPostgreSQL{db: db}
}

func (r *candidateAlertPostgreSQL) Create(ctx context.Context, alert *models.CandidateAlert) error {
	if err := r.db.WithContext(ctx).Create(alert).Error; err != nil {
		return handleDBError(err, "create candidate alert")
	}
	return nil
}

func (r *candidateAlertPostgreSQL) ListRecent(ctx context.Context, limit int) ([]models.CandidateAlert, error) {
	if limit <= 0 {
		limit = 50
	}

	var alerts []models.CandidateAlert
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, handleDBError(err, "list recent candidate alerts")
	}
	return alerts, nil
}
