package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/salman-gigabit/PatientQueueBackend/internal/models"
	"github.com/salman-gigabit/PatientQueueBackend/internal/repository"
)

var (
	// ErrPatientNotFound reports a visit against an unknown patient id.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrAlreadyVisited reports a second visit on the same patient. This is
	// an error, not a no-op: callers must treat it as a state violation.
	ErrAlreadyVisited = errors.New("patient already visited")
)

// QueueService owns the waiting queue: registration, ordering, the
// Waiting → Visited transition and aggregate counts.
type QueueService interface {
	Enqueue(ctx context.Context, name, problem, priority string) (*models.Patient, error)
	ListWaiting(ctx context.Context) ([]models.Patient, error)
	MarkVisited(ctx context.Context, id int64) (*models.Patient, error)
	Stats(ctx context.Context) (*repository.QueueCounts, error)
}

type queueService struct {
	patientRepo repository.PatientRepository
	now         func() time.Time
}

// NewQueueService creates a new QueueService instance.
func NewQueueService(patientRepo repository.PatientRepository) QueueService {
	return &queueService{
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

func (s *queueService) Enqueue(ctx context.Context, name, problem, priority string) (*models.Patient, error) {
	if priority == "" {
		priority = models.PriorityNormal
	}

	patient := &models.Patient{
		Name:        strings.TrimSpace(name),
		Problem:     strings.TrimSpace(problem),
		Priority:    priority,
		ArrivalTime: models.FormatArrivalTime(s.now()),
		Status:      models.StatusWaiting,
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// ListWaiting returns the waiting patients in service order: Emergency before
// Normal, earlier arrivals first within the same priority. The ordering is
// recomputed on every read; entries never change after creation except for
// the terminal status transition, so a fresh sort is always correct.
func (s *queueService) ListWaiting(ctx context.Context) ([]models.Patient, error) {
	patients, err := s.patientRepo.FindByStatus(ctx, models.StatusWaiting)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(patients, func(i, j int) bool {
		if patients[i].Priority != patients[j].Priority {
			return patients[i].Priority == models.PriorityEmergency
		}
		// Stored arrival times are UTC ISO-8601, so string order is
		// chronological order.
		return patients[i].ArrivalTime < patients[j].ArrivalTime
	})
	return patients, nil
}

func (s *queueService) MarkVisited(ctx context.Context, id int64) (*models.Patient, error) {
	changed, err := s.patientRepo.MarkVisited(ctx, id)
	if err != nil {
		return nil, err
	}

	patient, err := s.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if !changed {
		return nil, ErrAlreadyVisited
	}
	return patient, nil
}

func (s *queueService) Stats(ctx context.Context) (*repository.QueueCounts, error) {
	return s.patientRepo.Counts(ctx)
}
