package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
)

type DigestRepository interface {
	Create(digest *models.Digest) error
	FindByID(id uuid.UUID) (*models.Digest, error)
	UpdateStatus(id uuid.UUID, status models.DigestStatus) error
	MarkSent(id uuid.UUID, messageID string) error
	MarkFailed(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Digest, error)
}

type digestRepository struct {
	db *gorm.DB
}

func NewDigestRepository(db *gorm.DB) DigestRepository {
	return &digestRepository{db: db}
}

func (r *digestRepository) Create(digest *models.Digest) error {
	if err := r.db.Create(digest).Error; err != nil {
		return fmt.Errorf("failed to create digest: %w", err)
	}
	return nil
}

func (r *digestRepository) FindByID(id uuid.UUID) (*models.Digest, error) {
	var digest models.Digest
	if err := r.db.Where("id = ?", id).First(&digest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find digest: %w", err)
	}
	return &digest, nil
}

func (r *digestRepository) UpdateStatus(id uuid.UUID, status models.DigestStatus) error {
	result := r.db.Model(&models.Digest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update digest status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *digestRepository) MarkSent(id uuid.UUID, messageID string) error {
	result := r.db.Model(&models.Digest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.DigestSent,
			"message_id": messageID,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark digest sent: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *digestRepository) MarkFailed(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Digest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.DigestFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark digest failed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *digestRepository) FindPendingJobs(limit int) ([]models.Digest, error) {
	var digests []models.Digest
	err := r.db.
		Where("status = ?", models.DigestQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&digests).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending digests: %w", err)
	}

	return digests, nil
}
