package jsonstore

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
	"github.com/acme-ecommerce/storefront-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductStore)(nil)

// ProductStore persistencia del catálogo en products.json.
type ProductStore struct {
	mu   sync.Mutex
	path string
}

// NewProductStore construye el almacén. Si el archivo no existe lo siembra con
// el catálogo inicial para que el backend coincida con el frontend.
func NewProductStore(dataDir string) (*ProductStore, error) {
	s := &ProductStore{path: filepath.Join(dataDir, "products.json")}
	if !fileExists(s.path) {
		if err := writeJSON(s.path, seedProducts()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadAll devuelve el catálogo completo.
func (s *ProductStore) LoadAll() ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readJSON[*entity.Product](s.path)
}

// ReplaceAll sobreescribe el catálogo completo.
func (s *ProductStore) ReplaceAll(products []*entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path, products)
}

func seedProducts() []*entity.Product {
	now := time.Now()
	seed := []struct {
		id    string
		title string
		price string
		stock int
	}{
		{"p1", "Camisa clásica", "29.99", 20},
		{"p2", "Pantalón urbano", "49.99", 15},
		{"p3", "Chaqueta ligera", "79.99", 10},
		{"p4", "Vestido veraniego", "39.99", 25},
		{"p5", "Blusa estampada", "24.99", 30},
		{"p6", "Falda midi", "34.99", 12},
		{"p7", "Gorra clásica", "14.99", 50},
		{"p8", "Bolso de mano", "49.99", 8},
		{"p9", "Cinturón de cuero", "24.99", 18},
	}
	products := make([]*entity.Product, 0, len(seed))
	for _, it := range seed {
		price, _ := decimal.NewFromString(it.price)
		products = append(products, &entity.Product{
			ID:        it.id,
			Title:     it.title,
			Price:     price,
			Stock:     it.stock,
			Img:       "/img/" + it.id + ".jpg",
			Status:    entity.ProductStatusActive,
			CreatedAt: now,
		})
	}
	return products
}
