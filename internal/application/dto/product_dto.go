package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// name e imageUrl se mapean a title e img por compatibilidad con el frontend legacy.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Stock    *int            `json:"stock"`
	ImageURL string          `json:"imageUrl"`
	Status   string          `json:"status"`
}

// UpdateProductRequest entrada para actualizar un producto (merge parcial:
// los campos nil conservan el valor anterior).
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"`
	ImageURL *string          `json:"imageUrl"`
	Status   *string          `json:"status"`
}

// SetStockRequest entrada del PATCH de stock: entero no negativo obligatorio.
type SetStockRequest struct {
	Stock *int `json:"stock"`
}

// SetProductStatusRequest entrada del PATCH de estado de producto.
type SetProductStatusRequest struct {
	Status string `json:"status"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Img       string          `json:"img"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt,omitempty"`
}
