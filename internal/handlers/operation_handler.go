package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/theatrelog/api/internal/dto"
	"github.com/theatrelog/api/internal/middleware"
	"github.com/theatrelog/api/internal/models"
	"github.com/theatrelog/api/internal/services"
	"github.com/theatrelog/api/internal/validation"
)

type OperationHandler struct {
	operationService *services.OperationService
}

func NewOperationHandler(operationService *services.OperationService) *OperationHandler {
	return &OperationHandler{operationService: operationService}
}

// toResponse reshapes a stored operation into the wire format: storage
// columns renamed to the client's field names, operation date truncated
// to a calendar day.
func toResponse(op *models.Operation) dto.OperationResponse {
	return dto.OperationResponse{
		ID:            op.ID,
		PatientID:     op.PatientID,
		Age:           op.PatientAge,
		Operation:     op.OperationName,
		Hospital:      op.Hospital,
		Date:          op.OperationDate.Format("2006-01-02"),
		OperatorLevel: op.OperatorLevel,
		OperatorName:  op.OperatorName,
		Urgency:       op.Urgency,
		ASAGrade:      op.ASAGrade,
		Notes:         op.Notes,
		Complications: op.Complications,
		IsPrivate:     op.IsPrivate,
		CreatedAt:     op.CreatedAt,
	}
}

func (h *OperationHandler) Create(c *fiber.Ctx) error {
	identity, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("User not authenticated"))
	}

	var req dto.OperationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false, Error: "Validation failed", Message: err.Error(),
		})
	}

	op, err := h.operationService.Create(c.Context(), identity.ID, &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(toResponse(op), "Operation created successfully"))
}

func (h *OperationHandler) List(c *fiber.Ctx) error {
	identity, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("User not authenticated"))
	}

	var q dto.PaginationQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid query parameters"))
	}
	if err := validation.Struct(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false, Error: "Validation failed", Message: err.Error(),
		})
	}

	ops, total, p, err := h.operationService.List(c.Context(), identity.ID, &q)
	if err != nil {
		return err
	}

	items := make([]dto.OperationResponse, 0, len(ops))
	for i := range ops {
		items = append(items, toResponse(&ops[i]))
	}

	return c.JSON(dto.Response{
		Success:    true,
		Data:       items,
		Pagination: dto.NewPagination(p.Page, p.Limit, total),
	})
}

func (h *OperationHandler) Get(c *fiber.Ctx) error {
	identity, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("User not authenticated"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid operation ID"))
	}

	op, err := h.operationService.Get(c.Context(), identity.ID, id)
	if err != nil {
		if errors.Is(err, services.ErrOperationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
		}
		if errors.Is(err, services.ErrNotOwner) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail(err.Error()))
		}
		return err
	}

	return c.JSON(dto.OK(toResponse(op)))
}

func (h *OperationHandler) Update(c *fiber.Ctx) error {
	identity, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("User not authenticated"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid operation ID"))
	}

	var req dto.OperationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false, Error: "Validation failed", Message: err.Error(),
		})
	}

	op, err := h.operationService.Update(c.Context(), identity.ID, id, &req)
	if err != nil {
		// Ownership mismatch is collapsed into not-found here, unlike Get.
		if errors.Is(err, services.ErrOperationNotOwned) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
		}
		return err
	}

	return c.JSON(dto.OKMessage(toResponse(op), "Operation updated successfully"))
}

func (h *OperationHandler) Delete(c *fiber.Ctx) error {
	identity, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("User not authenticated"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid operation ID"))
	}

	if err := h.operationService.Delete(c.Context(), identity.ID, id); err != nil {
		if errors.Is(err, services.ErrOperationNotOwned) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
		}
		return err
	}

	return c.JSON(dto.Response{Success: true, Message: "Operation deleted successfully"})
}

func (h *OperationHandler) Stats(c *fiber.Ctx) error {
	identity, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("User not authenticated"))
	}

	stats, err := h.operationService.Stats(c.Context(), identity.ID)
	if err != nil {
		return err
	}

	recent := make([]dto.OperationResponse, 0, len(stats.Recent))
	for i := range stats.Recent {
		recent = append(recent, toResponse(&stats.Recent[i]))
	}

	return c.JSON(dto.OK(dto.StatsResponse{
		TotalOperations:   stats.Total,
		OperationsByLevel: stats.ByLevel,
		OperationsByMonth: stats.ByMonth,
		RecentOperations:  recent,
	}))
}
