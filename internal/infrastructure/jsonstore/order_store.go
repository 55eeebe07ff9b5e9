package jsonstore

import (
	"path/filepath"
	"sync"

	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
	"github.com/acme-ecommerce/storefront-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderStore)(nil)

// OrderStore persistencia de pedidos en orders.json.
type OrderStore struct {
	mu   sync.Mutex
	path string
}

// NewOrderStore construye el almacén; crea el archivo vacío si no existe.
func NewOrderStore(dataDir string) (*OrderStore, error) {
	s := &OrderStore{path: filepath.Join(dataDir, "orders.json")}
	if !fileExists(s.path) {
		if err := writeJSON(s.path, []*entity.Order{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadAll devuelve todos los pedidos.
func (s *OrderStore) LoadAll() ([]*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readJSON[*entity.Order](s.path)
}

// ReplaceAll sobreescribe el conjunto completo de pedidos.
func (s *OrderStore) ReplaceAll(orders []*entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path, orders)
}
