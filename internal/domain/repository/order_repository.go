package repository

import "github.com/acme-ecommerce/storefront-api/internal/domain/entity"

// OrderRepository puerto de persistencia de pedidos (lectura/reemplazo completo).
type OrderRepository interface {
	LoadAll() ([]*entity.Order, error)
	ReplaceAll(orders []*entity.Order) error
}
