package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItemRequest una línea del carrito enviada por el cliente.
type CheckoutItemRequest struct {
	ProductID string `json:"id" validate:"required"`
	Qty       int    `json:"qty" validate:"required,min=1"`
}

// CreateOrderRequest entrada del checkout.
type CreateOrderRequest struct {
	Items []CheckoutItemRequest `json:"items" validate:"required,min=1"`
}

// SetOrderStatusRequest entrada del PATCH de estado de un pedido.
type SetOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse línea de pedido con título y precio congelados.
type OrderItemResponse struct {
	ProductID string          `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
}

// StatusChangeResponse entrada del historial de auditoría.
type StatusChangeResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Date      time.Time `json:"date"`
	UpdatedBy string    `json:"updatedBy"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string                 `json:"id"`
	UserID        string                 `json:"userId"`
	UserEmail     string                 `json:"userEmail"`
	Items         []OrderItemResponse    `json:"items"`
	Total         decimal.Decimal        `json:"total"`
	Status        string                 `json:"status"`
	StatusHistory []StatusChangeResponse `json:"statusHistory"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}
