package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order. Literales en español, case-sensitive: deben
// preservarse tal cual por compatibilidad con el frontend y los archivos existentes.
const (
	OrderStatusPendiente = "Pendiente"
	OrderStatusEnviado   = "Enviado"
	OrderStatusEntregado = "Entregado"
	OrderStatusCancelado = "Cancelado" // estado terminal: no admite más transiciones
)

// ValidOrderStatuses es la whitelist de estados de pedido.
var ValidOrderStatuses = []string{OrderStatusPendiente, OrderStatusEnviado, OrderStatusEntregado, OrderStatusCancelado}

// IsValidOrderStatus indica si s pertenece a la whitelist.
func IsValidOrderStatus(s string) bool {
	for _, v := range ValidOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// OrderItem es una línea del pedido con título y precio congelados al momento
// de la compra. El campo id referencia al producto del catálogo; la correlación
// se hace por búsqueda explícita al transicionar, sin clave foránea.
type OrderItem struct {
	ProductID string          `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
}

// StatusChange es una entrada del historial de auditoría de un pedido.
// Cada transición agrega exactamente una.
type StatusChange struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Date      time.Time `json:"date"`
	UpdatedBy string    `json:"updatedBy"`
}

// Order representa el pedido de un cliente con su ciclo de vida de estados.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	UserEmail     string          `json:"userEmail"`
	Items         []OrderItem     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	StatusHistory []StatusChange  `json:"statusHistory,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
