package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSession congela el carrito mientras el cliente paga en la pasarela.
// Vive en MongoDB con un índice TTL de 24 horas: las sesiones vencidas las
// borra el almacén, no esta capa.
type PaymentSession struct {
	Reference string          `json:"reference"`
	UserID    string          `json:"userId"`
	UserEmail string          `json:"userEmail"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
}
