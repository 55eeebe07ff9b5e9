package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acme-ecommerce/storefront-api/internal/application/dto"
	"github.com/acme-ecommerce/storefront-api/internal/application/payments"
)

// PaymentHandler maneja la integración con la pasarela Wompi.
type PaymentHandler struct {
	uc *payments.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payments.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateTransaction godoc
// @Summary      Iniciar pago: sesión + firma de integridad para el widget
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Carrito"
// @Success      201   {object}  dto.CreateTransactionResponse
// @Router       /api/payments/create-transaction [post]
func (h *PaymentHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateTransaction(c.Context(), GetUserID(c), GetEmail(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Webhook recibe los eventos transaction.updated de Wompi. Endpoint público:
// la autenticidad la da el checksum del evento, no un token. Los eventos que no
// verifican se responden 200 con ignored:true para cortar los reintentos de la
// pasarela sin haber mutado nada.
func (h *PaymentHandler) Webhook(c *fiber.Ctx) error {
	var event dto.WompiEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.HandleWebhook(c.Context(), event)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
