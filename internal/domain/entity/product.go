package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product. Valores de wire exactos, compartidos por
// validación y derivación para que no diverjan.
const (
	ProductStatusActive     = "active"
	ProductStatusHidden     = "hidden"
	ProductStatusOutOfStock = "out_of_stock"
)

// ValidProductStatuses es la whitelist de estados de producto.
var ValidProductStatuses = []string{ProductStatusActive, ProductStatusHidden, ProductStatusOutOfStock}

// IsValidProductStatus indica si s pertenece a la whitelist.
func IsValidProductStatus(s string) bool {
	for _, v := range ValidProductStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Product representa una entrada del catálogo maestro.
// Invariante: stock == 0 fuerza status out_of_stock en los caminos de
// creación y actualización (SetStock es la excepción documentada).
type Product struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Img       string          `json:"img"`
	Status    string          `json:"status,omitempty"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt,omitempty"`
}

// Visible indica si el producto debe aparecer en el catálogo público.
// Los productos sembrados sin status se tratan como activos.
func (p *Product) Visible() bool {
	return p.Status == "" || p.Status == ProductStatusActive || p.Status == ProductStatusOutOfStock
}
