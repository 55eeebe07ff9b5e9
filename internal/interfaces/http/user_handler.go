package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acme-ecommerce/storefront-api/internal/application/dto"
	"github.com/acme-ecommerce/storefront-api/internal/application/usecase"
)

// UserHandler administración de usuarios (solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List devuelve los usuarios sin hash de contraseña.
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SetStatus suspende o reactiva un usuario. El actor no puede cambiarse a sí mismo.
func (h *UserHandler) SetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SetUserStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetStatus(id, in.Status, GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
