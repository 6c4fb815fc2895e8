package repository

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"notes-service/internal/models"
	"notes-service/internal/validation"
)

// searchCondition holds the LIKE arms of the search query. Amounts are
// matched against their text rendering, so "1000" finds a 1000.0 total.
const searchCondition = `project_name LIKE ? OR client_name LIKE ? OR delivery_date LIKE ?
	OR status LIKE ? OR notes LIKE ?
	OR CAST(total_amount AS TEXT) LIKE ? OR CAST(pending_amount AS TEXT) LIKE ?`

// ProjectRepository provides parameterized CRUD access to project records.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository instance with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new record. The id and created_at are assigned by the
// store; updated_at stays null until the first update.
func (r *ProjectRepository) Create(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return errors.Wrap(err, "failed to insert project")
	}
	return nil
}

// Update replaces every editable field of the record and stamps updated_at.
// A missing id affects zero rows and is not an error.
func (r *ProjectRepository) Update(id uint, input *validation.ProjectInput) (int64, error) {
	now := time.Now().UTC()
	tx := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(map[string]interface{}{
		"project_name":   input.ProjectName,
		"total_amount":   input.TotalAmount,
		"client_name":    input.ClientName,
		"delivery_date":  input.DeliveryDate,
		"status":         input.Status,
		"notes":          input.Notes,
		"pending_amount": input.PendingAmount,
		"updated_at":     now,
	})
	if tx.Error != nil {
		return 0, errors.Wrap(tx.Error, "failed to update project")
	}
	return tx.RowsAffected, nil
}

// Delete removes the record. A missing id affects zero rows and is not an
// error.
func (r *ProjectRepository) Delete(id uint) (int64, error) {
	tx := r.db.Delete(&models.Project{}, "id = ?", id)
	if tx.Error != nil {
		return 0, errors.Wrap(tx.Error, "failed to delete project")
	}
	return tx.RowsAffected, nil
}

// FindByID retrieves a single record for edit pre-fill. Absence surfaces
// as gorm.ErrRecordNotFound.
func (r *ProjectRepository) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves records, all of them when search is empty, otherwise those
// where the term appears as a case-insensitive substring in any searchable
// column. Order: delivery date ascending (as a date), then creation time
// descending, then id descending as the final tiebreak.
func (r *ProjectRepository) List(search string) ([]models.Project, error) {
	q := r.db.Model(&models.Project{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(searchCondition, like, like, like, like, like, like, like)
	}
	var projects []models.Project
	err := q.
		Order("date(delivery_date) ASC").
		Order("datetime(created_at) DESC").
		Order("id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}
	return projects, nil
}
