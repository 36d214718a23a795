package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"dataquad/recruitops/internal/models"
)

type RequirementRepository interface {
	Create(req *models.Requirement) error
	Save(req *models.Requirement) error
	Delete(req *models.Requirement) error
	ExistsByID(jobID string) (bool, error)
	FindByID(jobID string) (*models.Requirement, error)
	FindActive() ([]models.Requirement, error)
	FindByDateRange(start, end time.Time) ([]models.Requirement, error)
	FindByRecruiterID(recruiterID string) ([]models.Requirement, error)
	FindByRecruiterIDAndDateRange(recruiterID string, start, end time.Time) ([]models.Requirement, error)
	FindByAssignedBy(assignedBy string) ([]models.Requirement, error)
	FindByAssignedByAndDateRange(assignedBy string, start, end time.Time) ([]models.Requirement, error)
}

type requirementRepository struct {
	db *gorm.DB
}

func NewRequirementRepository(db *gorm.DB) RequirementRepository {
	return &requirementRepository{db: db}
}

func (r *requirementRepository) Create(req *models.Requirement) error {
	if err := r.db.Create(req).Error; err != nil {
		return fmt.Errorf("failed to create requirement: %w", err)
	}
	return nil
}

func (r *requirementRepository) Save(req *models.Requirement) error {
	if err := r.db.Save(req).Error; err != nil {
		return fmt.Errorf("failed to save requirement: %w", err)
	}
	return nil
}

func (r *requirementRepository) Delete(req *models.Requirement) error {
	if err := r.db.Delete(req).Error; err != nil {
		return fmt.Errorf("failed to delete requirement: %w", err)
	}
	return nil
}

func (r *requirementRepository) ExistsByID(jobID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Requirement{}).Where("job_id = ?", jobID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check requirement existence: %w", err)
	}
	return count > 0, nil
}

func (r *requirementRepository) FindByID(jobID string) (*models.Requirement, error) {
	var req models.Requirement
	if err := r.db.Where("job_id = ?", jobID).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRequirementNotFound(jobID)
		}
		return nil, fmt.Errorf("failed to find requirement: %w", err)
	}
	return &req, nil
}

func (r *requirementRepository) FindActive() ([]models.Requirement, error) {
	var reqs []models.Requirement
	err := r.db.
		Where("status IS NULL OR status != ?", "Closed").
		Order("requirement_added_time_stamp DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find active requirements: %w", err)
	}
	return reqs, nil
}

func (r *requirementRepository) FindByDateRange(start, end time.Time) ([]models.Requirement, error) {
	var reqs []models.Requirement
	err := r.db.
		Where("requirement_added_time_stamp BETWEEN ? AND ?", start, end).
		Order("requirement_added_time_stamp DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find requirements by date range: %w", err)
	}
	return reqs, nil
}

func (r *requirementRepository) FindByRecruiterID(recruiterID string) ([]models.Requirement, error) {
	var reqs []models.Requirement
	err := r.db.
		Where("recruiter_ids @> to_jsonb(?::text)", recruiterID).
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find requirements for recruiter: %w", err)
	}
	return reqs, nil
}

func (r *requirementRepository) FindByRecruiterIDAndDateRange(recruiterID string, start, end time.Time) ([]models.Requirement, error) {
	var reqs []models.Requirement
	err := r.db.
		Where("recruiter_ids @> to_jsonb(?::text)", recruiterID).
		Where("requirement_added_time_stamp BETWEEN ? AND ?", start, end).
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find requirements for recruiter by date range: %w", err)
	}
	return reqs, nil
}

func (r *requirementRepository) FindByAssignedBy(assignedBy string) ([]models.Requirement, error) {
	var reqs []models.Requirement
	if err := r.db.Where("assigned_by = ?", assignedBy).Find(&reqs).Error; err != nil {
		return nil, fmt.Errorf("failed to find requirements by assigner: %w", err)
	}
	return reqs, nil
}

func (r *requirementRepository) FindByAssignedByAndDateRange(assignedBy string, start, end time.Time) ([]models.Requirement, error) {
	var reqs []models.Requirement
	err := r.db.
		Where("assigned_by = ?", assignedBy).
		Where("requirement_added_time_stamp BETWEEN ? AND ?", start, end).
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find requirements by assigner and date range: %w", err)
	}
	return reqs, nil
}
