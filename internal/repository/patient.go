package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/salman-gigabit/PatientQueueBackend/internal/models"
)

// QueueCounts holds the aggregate queue statistics.
type QueueCounts struct {
	TotalWaiting   int64 `json:"total_waiting"`
	TotalEmergency int64 `json:"total_emergency"`
	TotalVisited   int64 `json:"total_visited"`
}

// PatientRepository defines the interface for patient data operations.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	FindByID(ctx context.Context, id int64) (*models.Patient, error)
	FindByStatus(ctx context.Context, status string) ([]models.Patient, error)
	// MarkVisited transitions the patient to Visited only if it is still
	// Waiting, as a single conditional update. It reports whether a row was
	// changed; false means the patient is missing or already Visited.
	MarkVisited(ctx context.Context, id int64) (bool, error)
	Counts(ctx context.Context) (*QueueCounts, error)
}

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new PatientRepository instance.
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if r.db == nil {
		return ErrStorageUnavailable
	}
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) FindByID(ctx context.Context, id int64) (*models.Patient, error) {
	if r.db == nil {
		return nil, ErrStorageUnavailable
	}
	var patient models.Patient
	err := r.db.WithContext(ctx).First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find patient by id %d: %w", id, err)
	}
	return &patient, nil
}

func (r *patientRepository) FindByStatus(ctx context.Context, status string) ([]models.Patient, error) {
	if r.db == nil {
		return nil, ErrStorageUnavailable
	}
	var patients []models.Patient
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patients with status %s: %w", status, err)
	}
	return patients, nil
}

func (r *patientRepository) MarkVisited(ctx context.Context, id int64) (bool, error) {
	if r.db == nil {
		return false, ErrStorageUnavailable
	}
	result := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ? AND status = ?", id, models.StatusWaiting).
		Update("status", models.StatusVisited)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark patient %d visited: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *patientRepository) Counts(ctx context.Context) (*QueueCounts, error) {
	if r.db == nil {
		return nil, ErrStorageUnavailable
	}
	counts := &QueueCounts{}

	err := r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("status = ?", models.StatusWaiting).
		Count(&counts.TotalWaiting).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count waiting patients: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("status = ? AND priority = ?", models.StatusWaiting, models.PriorityEmergency).
		Count(&counts.TotalEmergency).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count emergency patients: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("status = ?", models.StatusVisited).
		Count(&counts.TotalVisited).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count visited patients: %w", err)
	}

	return counts, nil
}
