package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

// Update writes through a column map, which GORM runs without the model's
// BeforeSave hook, so the repository has to apply the label defaults itself.
func TestApplicationRepository_UpdateDefaultsBlankLabels(t *testing.T) {
	repo := NewApplicationRepository(newDryRunDB(t))

	app := &models.Application{
		ID:      1,
		Company: "Acme",
		Role:    "Engineer",
		Status:  models.StatusApplied,
	}

	// DryRun builds the statement without executing, so no rows are reported.
	err := repo.Update(app)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, models.DefaultSource, app.Source)
	assert.Equal(t, models.DefaultResumeVersion, app.ResumeVersion)
	assert.False(t, app.AppliedAt.IsZero())
}

func TestApplicationRepository_UpdateKeepsProvidedLabels(t *testing.T) {
	repo := NewApplicationRepository(newDryRunDB(t))

	app := &models.Application{
		ID:            1,
		Company:       "Acme",
		Role:          "Engineer",
		Status:        models.StatusInterview,
		Source:        "Referral",
		ResumeVersion: "v3",
	}

	err := repo.Update(app)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, "Referral", app.Source)
	assert.Equal(t, "v3", app.ResumeVersion)
}
