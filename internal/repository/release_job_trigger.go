package repository

import (
	"time"

	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReleaseJobTriggerRepository handles database operations for release job
// triggers and the transactional dispatch/supersession path
type ReleaseJobTriggerRepository struct {
	db *gorm.DB
}

// NewReleaseJobTriggerRepository creates a new release job trigger repository
func NewReleaseJobTriggerRepository(db *gorm.DB) *ReleaseJobTriggerRepository {
	return &ReleaseJobTriggerRepository{db: db}
}

// InsertWithApprovals inserts trigger rows and their required pending approval
// rows in one transaction. Triggers that already exist for the same
// (release target, version) are skipped, making re-runs idempotent. A trigger
// never becomes visible without its full set of required approvals.
func (r *ReleaseJobTriggerRepository) InsertWithApprovals(triggers []models.ReleaseJobTrigger, approvals []models.Approval) ([]models.ReleaseJobTrigger, error) {
	if len(triggers) == 0 {
		return nil, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "release_target_id"}, {Name: "version_id"}},
			DoNothing: true,
		}).Create(&triggers).Error; err != nil {
			return err
		}
		if len(approvals) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "policy_id"}, {Name: "version_id"}, {Name: "approver_id"}},
				DoNothing: true,
			}).Create(&approvals).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// re-select so callers see the surviving rows, including ones that
	// pre-existed and were skipped by the conflict clause
	pairs := make([][]interface{}, 0, len(triggers))
	for i := range triggers {
		pairs = append(pairs, []interface{}{triggers[i].ReleaseTargetID, triggers[i].VersionID})
	}
	var created []models.ReleaseJobTrigger
	err = r.db.
		Preload("ReleaseTarget").
		Preload("Version").
		Where("(release_target_id, version_id) IN ?", pairs).
		Order("id ASC").
		Find(&created).Error
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a trigger with its target, version and job preloaded
func (r *ReleaseJobTriggerRepository) GetByID(id uuid.UUID) (*models.ReleaseJobTrigger, error) {
	var trigger models.ReleaseJobTrigger
	err := r.db.
		Preload("ReleaseTarget").
		Preload("ReleaseTarget.Deployment").
		Preload("ReleaseTarget.Environment").
		Preload("ReleaseTarget.Resource").
		Preload("Version").
		Preload("Job").
		First(&trigger, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &trigger, nil
}

// GetUndispatched retrieves every trigger without a job whose version is
// still ready, for the periodic dispatch sweep
func (r *ReleaseJobTriggerRepository) GetUndispatched() ([]models.ReleaseJobTrigger, error) {
	var triggers []models.ReleaseJobTrigger
	err := r.db.
		Preload("ReleaseTarget").
		Preload("ReleaseTarget.Deployment").
		Preload("ReleaseTarget.Resource").
		Preload("Version").
		Joins("JOIN deployment_versions ON deployment_versions.id = release_job_triggers.version_id").
		Where("release_job_triggers.job_id IS NULL AND deployment_versions.status = ?", models.VersionStatusReady).
		Order("release_job_triggers.id ASC").
		Find(&triggers).Error
	if err != nil {
		return nil, err
	}
	return triggers, nil
}

// GetStalePending retrieves triggers whose job is still pending and was
// created before the cutoff, for the sweep's redelivery pass. A pending job
// older than the grace period was either dropped by the queue or never
// picked up by an agent; re-enqueueing it is safe because delivery is
// at-least-once and consumers are idempotent.
func (r *ReleaseJobTriggerRepository) GetStalePending(before time.Time) ([]models.ReleaseJobTrigger, error) {
	var triggers []models.ReleaseJobTrigger
	err := r.db.
		Preload("ReleaseTarget").
		Preload("ReleaseTarget.Deployment").
		Preload("Version").
		Preload("Job").
		Joins("JOIN jobs ON jobs.id = release_job_triggers.job_id").
		Where("jobs.status = ? AND jobs.created_at < ?", models.JobStatusPending, before).
		Order("release_job_triggers.id ASC").
		Find(&triggers).Error
	if err != nil {
		return nil, err
	}
	return triggers, nil
}

// GetCohort retrieves all triggers of one version ordered by release target
// id, the deterministic rollout ordering
func (r *ReleaseJobTriggerRepository) GetCohort(versionID uuid.UUID) ([]models.ReleaseJobTrigger, error) {
	var triggers []models.ReleaseJobTrigger
	err := r.db.
		Where("version_id = ?", versionID).
		Order("release_target_id ASC").
		Find(&triggers).Error
	if err != nil {
		return nil, err
	}
	return triggers, nil
}

// CohortHasFailure reports whether any job of the version's cohort has failed
func (r *ReleaseJobTriggerRepository) CohortHasFailure(versionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReleaseJobTrigger{}).
		Joins("JOIN jobs ON jobs.id = release_job_triggers.job_id").
		Where("release_job_triggers.version_id = ? AND jobs.status = ?", versionID, models.JobStatusFailed).
		Count(&count).Error
	return count > 0, err
}

// CountActiveJobs counts non-terminal jobs across the given release targets
func (r *ReleaseJobTriggerRepository) CountActiveJobs(releaseTargetIDs []uuid.UUID) (int, error) {
	if len(releaseTargetIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.ReleaseJobTrigger{}).
		Joins("JOIN jobs ON jobs.id = release_job_triggers.job_id").
		Where("release_job_triggers.release_target_id IN ?", releaseTargetIDs).
		Where("jobs.status IN ?", []models.JobStatus{models.JobStatusPending, models.JobStatusInProgress}).
		Count(&count).Error
	return int(count), err
}

// GetLiveByTarget retrieves the target's triggers whose jobs are non-terminal
func (r *ReleaseJobTriggerRepository) GetLiveByTarget(releaseTargetID uuid.UUID) ([]models.ReleaseJobTrigger, error) {
	var triggers []models.ReleaseJobTrigger
	err := r.db.
		Preload("Job").
		Preload("Version").
		Joins("JOIN jobs ON jobs.id = release_job_triggers.job_id").
		Where("release_job_triggers.release_target_id = ?", releaseTargetID).
		Where("jobs.status IN ?", []models.JobStatus{models.JobStatusPending, models.JobStatusInProgress}).
		Find(&triggers).Error
	if err != nil {
		return nil, err
	}
	return triggers, nil
}

// Dispatch creates the trigger's job and cancels superseded live jobs for the
// same release target in one transaction. The release target row is locked
// for the duration so concurrent dispatches for one target serialize, keeping
// the at-most-one-live-job invariant. Returns the created job.
func (r *ReleaseJobTriggerRepository) Dispatch(trigger *models.ReleaseJobTrigger, job *models.Job) (*models.Job, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var target models.ReleaseTarget
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, "id = ?", trigger.ReleaseTargetID).Error; err != nil {
			return err
		}

		if err := tx.Create(job).Error; err != nil {
			return err
		}

		result := tx.Model(&models.ReleaseJobTrigger{}).
			Where("id = ? AND job_id IS NULL", trigger.ID).
			Update("job_id", job.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return cancelSuperseded(tx, trigger, job.ID)
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// cancelSuperseded moves every other live job of the trigger's release target
// to cancelled, provided its version predates the dispatching trigger's.
func cancelSuperseded(tx *gorm.DB, trigger *models.ReleaseJobTrigger, newJobID uuid.UUID) error {
	var version models.DeploymentVersion
	if err := tx.First(&version, "id = ?", trigger.VersionID).Error; err != nil {
		return err
	}

	var jobIDs []uuid.UUID
	err := tx.Model(&models.ReleaseJobTrigger{}).
		Joins("JOIN jobs ON jobs.id = release_job_triggers.job_id").
		Joins("JOIN deployment_versions ON deployment_versions.id = release_job_triggers.version_id").
		Where("release_job_triggers.release_target_id = ?", trigger.ReleaseTargetID).
		Where("release_job_triggers.job_id IS NOT NULL AND release_job_triggers.job_id <> ?", newJobID).
		Where("jobs.status IN ?", []models.JobStatus{models.JobStatusPending, models.JobStatusInProgress}).
		Where("deployment_versions.created_at < ?", version.CreatedAt).
		Pluck("release_job_triggers.job_id", &jobIDs).Error
	if err != nil {
		return err
	}
	if len(jobIDs) == 0 {
		return nil
	}

	now := time.Now()
	return tx.Model(&models.Job{}).
		Where("id IN ?", jobIDs).
		Updates(map[string]interface{}{
			"status":       models.JobStatusCancelled,
			"reason":       "superseded by a newer version",
			"completed_at": &now,
		}).Error
}

// CancelSupersededForTrigger runs the supersession cancellation outside the
// dispatch transaction, for callers reacting to late job status changes
func (r *ReleaseJobTriggerRepository) CancelSupersededForTrigger(trigger *models.ReleaseJobTrigger) error {
	if trigger.JobID == nil {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return cancelSuperseded(tx, trigger, *trigger.JobID)
	})
}

// ClearJob detaches a terminal job from its trigger so the sweep dispatches
// the trigger again, the redeploy path. Fails when the current job is still
// live; cancel it first.
func (r *ReleaseJobTriggerRepository) ClearJob(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var trigger models.ReleaseJobTrigger
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&trigger, "id = ?", id).Error; err != nil {
			return err
		}
		if trigger.JobID == nil {
			return nil
		}
		var job models.Job
		if err := tx.First(&job, "id = ?", *trigger.JobID).Error; err != nil {
			return err
		}
		if !job.Status.IsTerminal() {
			return gorm.ErrInvalidData
		}
		return tx.Model(&models.ReleaseJobTrigger{}).
			Where("id = ?", id).
			Update("job_id", nil).Error
	})
}

// Delete deletes a trigger
func (r *ReleaseJobTriggerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ReleaseJobTrigger{}, "id = ?", id).Error
}
