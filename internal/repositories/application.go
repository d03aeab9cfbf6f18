package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uint) (*models.Application, error)
	FindAll() ([]models.Application, error)
	Update(app *models.Application) error
	Delete(id uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindByID(id uint) (*models.Application, error) {
	var app models.Application
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

func (r *applicationRepository) FindAll() ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Order("id ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (r *applicationRepository) Update(app *models.Application) error {
	// Updates with a column map runs without GORM hooks, so the storage
	// defaults are applied here.
	app.Normalize()

	result := r.db.Model(&models.Application{}).
		Where("id = ?", app.ID).
		Updates(map[string]interface{}{
			"company":        app.Company,
			"role":           app.Role,
			"status":         app.Status,
			"source":         app.Source,
			"resume_version": app.ResumeVersion,
			"applied_at":     app.AppliedAt,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update application: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *applicationRepository) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.Application{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
