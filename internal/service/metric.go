package service

import (
	"errors"
	"fmt"
	"time"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetricService ingests the observations pass-rate gates count over
type MetricService struct {
	repo            repository.MetricRepositoryInterface
	deploymentRepo  *repository.DeploymentRepository
	environmentRepo repository.EnvironmentRepositoryInterface
	validator       *validator.Validate
}

// NewMetricService creates a new metric service
func NewMetricService(
	repo repository.MetricRepositoryInterface,
	deploymentRepo *repository.DeploymentRepository,
	environmentRepo repository.EnvironmentRepositoryInterface,
	validator *validator.Validate,
) *MetricService {
	return &MetricService{
		repo:            repo,
		deploymentRepo:  deploymentRepo,
		environmentRepo: environmentRepo,
		validator:       validator,
	}
}

// IngestMetricRequest represents one pass/fail observation
type IngestMetricRequest struct {
	DeploymentID  uuid.UUID `json:"deployment_id" validate:"required"`
	EnvironmentID uuid.UUID `json:"environment_id" validate:"required"`
	MetricName    string    `json:"metric_name" validate:"required,min=1,max=100"`
	Passed        *bool     `json:"passed" validate:"required"`
}

// MetricWindowResponse summarizes a trailing observation window
type MetricWindowResponse struct {
	MetricName string  `json:"metric_name"`
	Total      int     `json:"total"`
	Passed     int     `json:"passed"`
	PassRate   float64 `json:"pass_rate"`
}

// Ingest records one observation
func (s *MetricService) Ingest(req *IngestMetricRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.deploymentRepo.GetByID(req.DeploymentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDeploymentNotFound
		}
		return fmt.Errorf("failed to verify deployment: %w", err)
	}
	if _, err := s.environmentRepo.GetByID(req.EnvironmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEnvironmentNotFound
		}
		return fmt.Errorf("failed to verify environment: %w", err)
	}

	obs := &models.MetricObservation{
		DeploymentID:  req.DeploymentID,
		EnvironmentID: req.EnvironmentID,
		MetricName:    req.MetricName,
		Passed:        *req.Passed,
	}
	if err := s.repo.Create(obs); err != nil {
		return fmt.Errorf("failed to record observation: %w", err)
	}
	return nil
}

// Window summarizes the trailing window for a metric, the same computation
// the pass-rate gate runs
func (s *MetricService) Window(deploymentID, environmentID uuid.UUID, metricName string, windowSeconds int) (*MetricWindowResponse, error) {
	if windowSeconds < 1 {
		windowSeconds = 3600
	}
	since := time.Now().Add(-time.Duration(windowSeconds) * time.Second)
	total, passed, err := s.repo.CountWindow(deploymentID, environmentID, metricName, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count metric window: %w", err)
	}

	resp := &MetricWindowResponse{MetricName: metricName, Total: total, Passed: passed}
	if total > 0 {
		resp.PassRate = float64(passed) / float64(total)
	}
	return resp, nil
}
