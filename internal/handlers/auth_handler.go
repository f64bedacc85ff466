package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/theatrelog/api/internal/dto"
	"github.com/theatrelog/api/internal/middleware"
	"github.com/theatrelog/api/internal/services"
	"github.com/theatrelog/api/internal/validation"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false, Error: "Validation failed", Message: err.Error(),
		})
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(err.Error()))
		}
		return err
	}

	return c.JSON(dto.OKMessage(resp, "Login successful"))
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false, Error: "Validation failed", Message: err.Error(),
		})
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrUserIDTaken) || errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(resp, "Registration successful"))
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("User not authenticated"))
	}

	user, err := h.authService.CurrentUser(c.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
		}
		return err
	}

	return c.JSON(dto.OK(dto.ProfileResponse{
		ID:                  user.ID,
		UserID:              user.UserID,
		FullName:            user.FullName,
		Email:               user.Email,
		Specialty:           user.Specialty,
		HospitalAffiliation: user.HospitalAffiliation,
	}))
}
