package repository

import (
	"time"

	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetricRepository handles database operations for pass-rate metric observations
type MetricRepository struct {
	db *gorm.DB
}

// NewMetricRepository creates a new metric repository
func NewMetricRepository(db *gorm.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

// Create records one observation
func (r *MetricRepository) Create(observation *models.MetricObservation) error {
	return r.db.Create(observation).Error
}

// CountWindow returns the total and passed observation counts for a metric in
// a (deployment, environment) scope since the given time
func (r *MetricRepository) CountWindow(deploymentID, environmentID uuid.UUID, metricName string, since time.Time) (total int, passed int, err error) {
	var totalCount int64
	err = r.db.Model(&models.MetricObservation{}).
		Where("deployment_id = ? AND environment_id = ? AND metric_name = ? AND created_at >= ?",
			deploymentID, environmentID, metricName, since).
		Count(&totalCount).Error
	if err != nil {
		return 0, 0, err
	}

	var passedCount int64
	err = r.db.Model(&models.MetricObservation{}).
		Where("deployment_id = ? AND environment_id = ? AND metric_name = ? AND created_at >= ? AND passed = ?",
			deploymentID, environmentID, metricName, since, true).
		Count(&passedCount).Error
	if err != nil {
		return 0, 0, err
	}

	return int(totalCount), int(passedCount), nil
}
