package repository

import (
	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobRepository handles database operations for jobs
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job
func (r *JobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// GetByID retrieves a job by ID
func (r *JobRepository) GetByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByStatus retrieves jobs in a given status with pagination
func (r *JobRepository) GetByStatus(status models.JobStatus, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := r.db.Model(&models.Job{}).Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Update updates a job
func (r *JobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// GetTriggerForJob retrieves the trigger a job was dispatched from
func (r *JobRepository) GetTriggerForJob(jobID uuid.UUID) (*models.ReleaseJobTrigger, error) {
	var trigger models.ReleaseJobTrigger
	err := r.db.
		Preload("ReleaseTarget").
		Preload("Version").
		First(&trigger, "job_id = ?", jobID).Error
	if err != nil {
		return nil, err
	}
	return &trigger, nil
}
