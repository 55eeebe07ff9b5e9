package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acme-ecommerce/storefront-api/internal/application/dto"
	"github.com/acme-ecommerce/storefront-api/internal/domain"
	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
	"github.com/acme-ecommerce/storefront-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: CRUD, stock y estado.
// Cada mutación lee el conjunto completo, lo modifica y lo reescribe
// (semántica del almacén de archivos; el último escritor gana).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo.
// Reglas: title, price, stock e imageUrl obligatorios; price > 0; stock >= 0;
// status dentro de la whitelist si viene; título duplicado (ignorando mayúsculas
// y espacios) se rechaza. stock == 0 fuerza status out_of_stock sin importar el solicitado.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	title := strings.TrimSpace(in.Name)
	if title == "" || in.Price.IsZero() || in.Stock == nil || in.ImageURL == "" {
		return nil, domain.ErrValidation
	}
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidPrice
	}
	if *in.Stock < 0 {
		return nil, domain.ErrInvalidStock
	}
	if in.Status != "" && !entity.IsValidProductStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}

	products, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if strings.EqualFold(strings.TrimSpace(p.Title), title) {
			return nil, domain.ErrDuplicateProduct
		}
	}

	product := &entity.Product{
		ID:        uuid.New().String(),
		Title:     title,
		Price:     in.Price,
		Stock:     *in.Stock,
		Img:       in.ImageURL,
		Status:    deriveStatus(*in.Stock, in.Status),
		CreatedAt: time.Now(),
	}
	products = append(products, product)
	if err := uc.repo.ReplaceAll(products); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto con merge parcial: los campos omitidos conservan
// su valor. Tras el merge se reaplica la derivación stock == 0 ⇒ out_of_stock,
// pisando cualquier status solicitado.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Status != nil && !entity.IsValidProductStatus(*in.Status) {
		return nil, domain.ErrInvalidStatus
	}
	products, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	product := findProduct(products, id)
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil && *in.Name != "" {
		product.Title = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.ImageURL != nil && *in.ImageURL != "" {
		product.Img = *in.ImageURL
	}

	// Lógica de estado automática: el stock manda sobre el status solicitado.
	if product.Stock == 0 {
		product.Status = entity.ProductStatusOutOfStock
	} else if in.Status != nil {
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.ReplaceAll(products); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SetStock actualiza solo el stock (entero no negativo).
// Nota: este camino NO recalcula el status derivado; un stock que llega a 0 por
// aquí deja el status anterior intacto hasta el próximo Update. Es el contrato
// histórico del endpoint y se preserva a propósito.
func (uc *ProductUseCase) SetStock(id string, newStock int) (*dto.ProductResponse, error) {
	if newStock < 0 {
		return nil, domain.ErrValidation
	}
	products, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	product := findProduct(products, id)
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Stock = newStock
	product.UpdatedAt = time.Now()
	if err := uc.repo.ReplaceAll(products); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SetStatus sobreescribe el status sin validar contra la whitelist.
// Contrato distinto y más débil que Create/Update; el frontend depende de
// poder escribir valores fuera de la whitelist por este camino.
func (uc *ProductUseCase) SetStatus(id, newStatus string) (*dto.ProductResponse, error) {
	products, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	product := findProduct(products, id)
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Status = newStatus
	if err := uc.repo.ReplaceAll(products); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el inventario completo (vista admin).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// ListVisible devuelve el catálogo público: excluye productos ocultos.
func (uc *ProductUseCase) ListVisible() ([]dto.ProductResponse, error) {
	products, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if p.Visible() {
			out = append(out, *toProductResponse(p))
		}
	}
	return out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	products, err := uc.repo.LoadAll()
	if err != nil {
		return err
	}
	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ErrNotFound
	}
	products = append(products[:idx], products[idx+1:]...)
	return uc.repo.ReplaceAll(products)
}

// deriveStatus aplica la derivación de estado: stock 0 siempre es out_of_stock;
// con stock se respeta el solicitado o se cae en active.
func deriveStatus(stock int, requested string) string {
	if stock == 0 {
		return entity.ProductStatusOutOfStock
	}
	if requested != "" {
		return requested
	}
	return entity.ProductStatusActive
}

func findProduct(products []*entity.Product, id string) *entity.Product {
	for _, p := range products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Stock:     p.Stock,
		Img:       p.Img,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
