package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// JobService handles the agent-facing job status callbacks. Status moves
// forward only: pending to in_progress to a terminal state; terminal states
// never change. A terminal report pokes the sweep because it can open rollout
// slots and free concurrency capacity; a start report re-runs supersession
// for the job's target in case a concurrent dispatch raced past it.
type JobService struct {
	repo        repository.JobRepositoryInterface
	triggerRepo repository.ReleaseJobTriggerRepositoryInterface
	sweeper     Poker
	validator   *validator.Validate
}

// NewJobService creates a new job service
func NewJobService(repo repository.JobRepositoryInterface, triggerRepo repository.ReleaseJobTriggerRepositoryInterface, sweeper Poker, validator *validator.Validate) *JobService {
	return &JobService{repo: repo, triggerRepo: triggerRepo, sweeper: sweeper, validator: validator}
}

// UpdateJobStatusRequest represents an agent's status report
type UpdateJobStatusRequest struct {
	Status     models.JobStatus `json:"status" validate:"required"`
	Reason     string           `json:"reason" validate:"max=255"`
	ExternalID string           `json:"external_id" validate:"max=255"`
	Links      json.RawMessage  `json:"links" swaggertype:"object"`
}

// JobResponse represents the response for job operations
type JobResponse struct {
	ID          uuid.UUID        `json:"id"`
	Status      models.JobStatus `json:"status"`
	Reason      string           `json:"reason,omitempty"`
	ExternalID  string           `json:"external_id,omitempty"`
	Metadata    json.RawMessage  `json:"metadata,omitempty" swaggertype:"object"`
	Links       json.RawMessage  `json:"links,omitempty" swaggertype:"object"`
	StartedAt   *string          `json:"started_at,omitempty"`
	CompletedAt *string          `json:"completed_at,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// JobListResponse represents a paginated list of jobs
type JobListResponse struct {
	Jobs     []JobResponse `json:"jobs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// validTransitions maps each job status to the statuses it may move to
var validTransitions = map[models.JobStatus][]models.JobStatus{
	models.JobStatusPending:    {models.JobStatusInProgress, models.JobStatusCompleted, models.JobStatusFailed, models.JobStatusCancelled},
	models.JobStatusInProgress: {models.JobStatusCompleted, models.JobStatusFailed, models.JobStatusCancelled},
}

func transitionAllowed(from, to models.JobStatus) bool {
	for _, t := range validTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// GetByID retrieves a job by ID
func (s *JobService) GetByID(id uuid.UUID) (*JobResponse, error) {
	job, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return s.toResponse(job), nil
}

// GetByStatus retrieves jobs in a status with pagination
func (s *JobService) GetByStatus(status models.JobStatus, page, pageSize int) (*JobListResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	jobs, total, err := s.repo.GetByStatus(status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs: %w", err)
	}

	responses := make([]JobResponse, len(jobs))
	for i := range jobs {
		responses[i] = *s.toResponse(&jobs[i])
	}
	return &JobListResponse{Jobs: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateStatus applies an agent's status report. A report repeating the
// current status refreshes external id and links only.
func (s *JobService) UpdateStatus(id uuid.UUID, req *UpdateJobStatusRequest) (*JobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	job, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	startedNow := false
	if req.Status != job.Status {
		if !transitionAllowed(job.Status, req.Status) {
			return nil, apperrors.ErrJobStatusTransition
		}
		startedNow = req.Status == models.JobStatusInProgress
		now := time.Now()
		if req.Status == models.JobStatusInProgress && job.StartedAt == nil {
			job.StartedAt = &now
		}
		if req.Status.IsTerminal() {
			if job.StartedAt == nil && req.Status == models.JobStatusCompleted {
				job.StartedAt = &now
			}
			job.CompletedAt = &now
		}
		job.Status = req.Status
	}

	if req.Reason != "" {
		job.Reason = req.Reason
	}
	if req.ExternalID != "" {
		job.ExternalID = req.ExternalID
	}
	if len(req.Links) > 0 {
		job.Links = req.Links
	}

	if err := s.repo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	if startedNow {
		s.cancelSuperseded(job.ID)
	}
	if job.Status.IsTerminal() && s.sweeper != nil {
		s.sweeper.Poke()
	}

	return s.toResponse(job), nil
}

// cancelSuperseded cancels older live jobs of the starting job's release
// target. The dispatch transaction already does this; re-running it on the
// start report closes the race where an older job was created after the
// newer dispatch had taken its snapshot.
func (s *JobService) cancelSuperseded(jobID uuid.UUID) {
	trigger, err := s.repo.GetTriggerForJob(jobID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithField("job_id", jobID).WithError(err).Warn("failed to load trigger for supersession check")
		}
		return
	}
	if err := s.triggerRepo.CancelSupersededForTrigger(trigger); err != nil {
		logrus.WithField("job_id", jobID).WithError(err).Warn("failed to cancel superseded jobs")
	}
}

// GetTrigger retrieves the trigger a job was dispatched for
func (s *JobService) GetTrigger(jobID uuid.UUID) (*models.ReleaseJobTrigger, error) {
	trigger, err := s.repo.GetTriggerForJob(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTriggerNotFound
		}
		return nil, fmt.Errorf("failed to get trigger for job: %w", err)
	}
	return trigger, nil
}

// toResponse converts a Job model to API response
func (s *JobService) toResponse(j *models.Job) *JobResponse {
	resp := &JobResponse{
		ID:         j.ID,
		Status:     j.Status,
		Reason:     j.Reason,
		ExternalID: j.ExternalID,
		Metadata:   j.Metadata,
		Links:      j.Links,
		CreatedAt:  j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  j.UpdatedAt.Format(time.RFC3339),
	}
	if j.StartedAt != nil {
		v := j.StartedAt.Format(time.RFC3339)
		resp.StartedAt = &v
	}
	if j.CompletedAt != nil {
		v := j.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	return resp
}
