package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"notes-service/internal/metrics"
	"notes-service/internal/models"
	"notes-service/internal/repository"
	"notes-service/internal/validation"
)

// ErrInvalidInput marks a submission rejected by validation. The handler
// turns it into a generic error flash; the field detail stays in the logs.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidID marks an update/delete that arrived without a positive id.
var ErrInvalidID = errors.New("invalid id")

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create validates the submission and inserts a record. All-or-nothing: any
// invalid field rejects the whole submission and nothing is persisted.
func (s *ProjectService) Create(form validation.ProjectForm) error {
	input, err := form.Validate()
	if err != nil {
		metrics.ValidationRejections.Inc()
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	project := &models.Project{
		ProjectName:   input.ProjectName,
		TotalAmount:   input.TotalAmount,
		ClientName:    input.ClientName,
		DeliveryDate:  input.DeliveryDate,
		Status:        input.Status,
		Notes:         input.Notes,
		PendingAmount: input.PendingAmount,
	}
	if err := s.repo.Create(project); err != nil {
		return err
	}
	metrics.ProjectsCreated.Inc()
	return nil
}

// Update validates and applies a full-row update. Updating a missing id
// affects zero rows and still reports success.
func (s *ProjectService) Update(id uint, form validation.ProjectForm) error {
	if id == 0 {
		return ErrInvalidID
	}
	input, err := form.Validate()
	if err != nil {
		metrics.ValidationRejections.Inc()
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.repo.Update(id, input); err != nil {
		return err
	}
	metrics.ProjectsUpdated.Inc()
	return nil
}

// Delete removes a record. Deleting a missing id is a no-op that still
// reports success.
func (s *ProjectService) Delete(id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	if _, err := s.repo.Delete(id); err != nil {
		return err
	}
	metrics.ProjectsDeleted.Inc()
	return nil
}

// Get looks a record up for edit pre-fill. A missing id yields (nil, nil)
// so the form simply renders empty.
func (s *ProjectService) Get(id uint) (*models.Project, error) {
	project, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

// List returns records matching the optional search term, always in the
// canonical order (soonest delivery first, newest creation first within a
// date, id as final tiebreak).
func (s *ProjectService) List(search string) ([]models.Project, error) {
	if search != "" {
		metrics.SearchQueries.Inc()
	}
	return s.repo.List(search)
}
