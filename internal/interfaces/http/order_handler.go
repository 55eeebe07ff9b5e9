package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acme-ecommerce/storefront-api/internal/application/dto"
	"github.com/acme-ecommerce/storefront-api/internal/application/usecase"
)

// OrderHandler maneja checkout y administración de pedidos.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido desde el carrito (descuenta stock)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Carrito"
// @Success      201   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), GetEmail(c), in.Items)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOwn devuelve los pedidos del usuario autenticado.
func (h *OrderHandler) ListOwn(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListAll devuelve todos los pedidos, más recientes primero (solo admin).
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Cambiar estado de un pedido (workflow con devolución de stock)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.SetOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id} [patch]
func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SetOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el estado es obligatorio"})
	}
	actor := GetEmail(c)
	if actor == "" {
		actor = "Admin"
	}
	out, err := h.uc.Transition(id, in.Status, actor)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
