package repository

import "github.com/acme-ecommerce/storefront-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios (lectura/reemplazo completo).
type UserRepository interface {
	LoadAll() ([]*entity.User, error)
	ReplaceAll(users []*entity.User) error
}
