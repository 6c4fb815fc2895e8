package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"notes-service/internal/models"
	"notes-service/internal/repository"
	"notes-service/internal/validation"
)

func setupService(t *testing.T) *ProjectService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}))
	return NewProjectService(repository.NewProjectRepository(db))
}

func websiteForm() validation.ProjectForm {
	return validation.ProjectForm{
		ProjectName:   "Website",
		TotalAmount:   "1000",
		ClientName:    "Acme",
		DeliveryDate:  "2025-03-01",
		Status:        models.StatusInProgress,
		Notes:         "",
		PendingAmount: "1000",
	}
}

func TestCreateRejectsInvalidFormEntirely(t *testing.T) {
	svc := setupService(t)

	form := websiteForm()
	form.DeliveryDate = "2024-02-30"

	err := svc.Create(form)
	require.ErrorIs(t, err, ErrInvalidInput)

	projects, err := svc.List("")
	require.NoError(t, err)
	assert.Empty(t, projects, "a rejected submission must not persist anything")
}

func TestUpdateRequiresPositiveID(t *testing.T) {
	svc := setupService(t)

	err := svc.Update(0, websiteForm())
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestDeleteRequiresPositiveID(t *testing.T) {
	svc := setupService(t)

	err := svc.Delete(0)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestUpdateMissingIDReportsSuccess(t *testing.T) {
	svc := setupService(t)

	// Zero affected rows is not an error.
	err := svc.Update(999, websiteForm())
	assert.NoError(t, err)
}

func TestDeleteMissingIDReportsSuccess(t *testing.T) {
	svc := setupService(t)

	err := svc.Delete(999)
	assert.NoError(t, err)
}

func TestGetMissingIDReturnsNil(t *testing.T) {
	svc := setupService(t)

	project, err := svc.Get(123)
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestProjectLifecycle(t *testing.T) {
	svc := setupService(t)

	// Create: appears in the list with the full amount pending.
	require.NoError(t, svc.Create(websiteForm()))

	projects, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	created := projects[0]
	assert.Equal(t, "Website", created.ProjectName)
	assert.Equal(t, 1000.0, created.PendingAmount)
	assert.False(t, created.FullyPaid())
	assert.Nil(t, created.UpdatedAt)

	// Update: pending drops to zero, record shows fully paid.
	form := websiteForm()
	form.PendingAmount = "0"
	require.NoError(t, svc.Update(created.ID, form))

	updated, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.FullyPaid())
	require.NotNil(t, updated.UpdatedAt)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	// Delete: the list no longer contains the id.
	require.NoError(t, svc.Delete(created.ID))

	projects, err = svc.List("")
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestListPassesSearchThrough(t *testing.T) {
	svc := setupService(t)

	require.NoError(t, svc.Create(websiteForm()))

	other := websiteForm()
	other.ProjectName = "Branding"
	other.ClientName = "Globex"
	require.NoError(t, svc.Create(other))

	projects, err := svc.List("acme")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Website", projects[0].ProjectName)
}
