package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/swapitsneil/ai-job-tracker/internal/events"
	"github.com/swapitsneil/ai-job-tracker/internal/models"
	"github.com/swapitsneil/ai-job-tracker/internal/repositories"
)

type ApplicationHandler struct {
	appRepo    repositories.ApplicationRepository
	dispatcher *events.Dispatcher
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	dispatcher *events.Dispatcher,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo:    appRepo,
		dispatcher: dispatcher,
	}
}

// HandleCreate handles POST /applications
func (h *ApplicationHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateApplicationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Company == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "company is required",
		})
	}

	if req.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role is required",
		})
	}

	if req.Status != "" && !models.ApplicationStatus(req.Status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status value",
		})
	}

	app := &models.Application{
		Company:       req.Company,
		Role:          req.Role,
		Status:        models.ApplicationStatus(req.Status),
		Source:        req.Source,
		ResumeVersion: req.ResumeVersion,
	}
	if req.AppliedAt != nil {
		app.AppliedAt = *req.AppliedAt
	}

	if err := h.appRepo.Create(app); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create application",
		})
	}

	h.dispatcher.Dispatch(c.UserContext(), events.NewEvent(events.ApplicationCreated, *app, ""))

	return c.Status(fiber.StatusCreated).JSON(app)
}

// HandleList handles GET /applications
func (h *ApplicationHandler) HandleList(c *fiber.Ctx) error {
	apps, err := h.appRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list applications",
		})
	}

	return c.JSON(apps)
}

// HandleGet handles GET /applications/:id
func (h *ApplicationHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	app, err := h.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch application",
		})
	}

	return c.JSON(app)
}

// HandleUpdate handles PUT /applications/:id
func (h *ApplicationHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Status != nil && !models.ApplicationStatus(*req.Status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status value",
		})
	}

	app, err := h.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch application",
		})
	}

	previousStatus := app.Status

	if req.Company != nil {
		app.Company = *req.Company
	}
	if req.Role != nil {
		app.Role = *req.Role
	}
	if req.Status != nil {
		app.Status = models.ApplicationStatus(*req.Status)
	}
	if req.Source != nil {
		app.Source = *req.Source
	}
	if req.ResumeVersion != nil {
		app.ResumeVersion = *req.ResumeVersion
	}
	if req.AppliedAt != nil {
		app.AppliedAt = *req.AppliedAt
	}

	if err := h.appRepo.Update(app); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update application",
		})
	}

	h.dispatcher.Dispatch(c.UserContext(), events.NewEvent(events.ApplicationUpdated, *app, previousStatus))
	if app.Status != previousStatus {
		h.dispatcher.Dispatch(c.UserContext(), events.NewEvent(events.ApplicationStatusChanged, *app, previousStatus))
	}

	return c.JSON(app)
}

// HandleDelete handles DELETE /applications/:id
func (h *ApplicationHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	app, err := h.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch application",
		})
	}

	if err := h.appRepo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete application",
		})
	}

	h.dispatcher.Dispatch(c.UserContext(), events.NewEvent(events.ApplicationDeleted, *app, ""))

	return c.JSON(fiber.Map{
		"message": "Application deleted successfully",
	})
}

func parseApplicationID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
