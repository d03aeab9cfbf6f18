package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
	"github.com/swapitsneil/ai-job-tracker/internal/repositories"
	"github.com/swapitsneil/ai-job-tracker/internal/services"
)

type DigestHandler struct {
	digestRepo       repositories.DigestRepository
	worker           services.DigestWorker
	defaultRecipient string
}

func NewDigestHandler(
	digestRepo repositories.DigestRepository,
	worker services.DigestWorker,
	defaultRecipient string,
) *DigestHandler {
	return &DigestHandler{
		digestRepo:       digestRepo,
		worker:           worker,
		defaultRecipient: defaultRecipient,
	}
}

// HandleCreateDigest handles POST /digests
func (h *DigestHandler) HandleCreateDigest(c *fiber.Ctx) error {
	var req models.DigestRequest

	// An empty body falls back to the configured recipient.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	recipient := req.Recipient
	if recipient == "" {
		recipient = h.defaultRecipient
	}
	if recipient == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "recipient is required when DIGEST_RECIPIENT is not set",
		})
	}

	digest := &models.Digest{
		ID:        uuid.New(),
		Recipient: recipient,
		Status:    models.DigestQueued,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.digestRepo.Create(digest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create digest job",
		})
	}

	h.worker.EnqueueDigest(digest.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.DigestResponse{
		ID:     digest.ID.String(),
		Status: string(models.DigestQueued),
	})
}

// HandleGetDigest handles GET /digests/:id
func (h *DigestHandler) HandleGetDigest(c *fiber.Ctx) error {
	digestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid digest ID format",
		})
	}

	digest, err := h.digestRepo.FindByID(digestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Digest not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch digest",
		})
	}

	return c.JSON(models.DigestStatusResponse{
		ID:           digest.ID.String(),
		Recipient:    digest.Recipient,
		Status:       string(digest.Status),
		MessageID:    digest.MessageID,
		ErrorMessage: digest.ErrorMessage,
	})
}
