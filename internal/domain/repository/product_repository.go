package repository

import "github.com/acme-ecommerce/storefront-api/internal/domain/entity"

// ProductRepository puerto de persistencia del catálogo maestro.
// Contrato de lectura/reemplazo completo: LoadAll devuelve todo el conjunto y
// ReplaceAll lo sobreescribe entero. No hay garantía de escritura parcial más
// allá de la atomicidad del almacén subyacente.
type ProductRepository interface {
	LoadAll() ([]*entity.Product, error)
	ReplaceAll(products []*entity.Product) error
}
