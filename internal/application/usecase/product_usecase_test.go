package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-ecommerce/storefront-api/internal/application/dto"
	"github.com/acme-ecommerce/storefront-api/internal/application/usecase"
	"github.com/acme-ecommerce/storefront-api/internal/domain"
	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
	"github.com/acme-ecommerce/storefront-api/internal/infrastructure/jsonstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: catálogo sobre archivos JSON en un directorio temporal.
// ──────────────────────────────────────────────────────────────────────────────

func newProductUC(t *testing.T) (*usecase.ProductUseCase, *jsonstore.ProductStore) {
	t.Helper()
	store, err := jsonstore.NewProductStore(t.TempDir())
	require.NoError(t, err)
	// Partimos de catálogo vacío para que los tests controlen el estado.
	require.NoError(t, store.ReplaceAll(nil))
	return usecase.NewProductUseCase(store), store
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:     "Camisa clásica",
		Price:    price("29.99"),
		Stock:    intPtr(20),
		ImageURL: "/img/camisa.jpg",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ProductoValido(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.Create(validCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Camisa clásica", out.Title)
	assert.Equal(t, 20, out.Stock)
	assert.Equal(t, entity.ProductStatusActive, out.Status, "sin status solicitado y con stock, queda active")
	assert.False(t, out.CreatedAt.IsZero())
}

func TestCreate_CamposObligatorios(t *testing.T) {
	uc, _ := newProductUC(t)

	casos := []struct {
		nombre string
		mutar  func(*dto.CreateProductRequest)
	}{
		{"sin título", func(in *dto.CreateProductRequest) { in.Name = "" }},
		{"sin precio", func(in *dto.CreateProductRequest) { in.Price = decimal.Zero }},
		{"sin stock", func(in *dto.CreateProductRequest) { in.Stock = nil }},
		{"sin imagen", func(in *dto.CreateProductRequest) { in.ImageURL = "" }},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := validCreate()
			c.mutar(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreate_PrecioNegativo(t *testing.T) {
	uc, _ := newProductUC(t)
	in := validCreate()
	in.Price = price("-5")
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestCreate_StockNegativo(t *testing.T) {
	uc, _ := newProductUC(t)
	in := validCreate()
	in.Stock = intPtr(-1)
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidStock)
}

func TestCreate_StatusFueraDeWhitelist(t *testing.T) {
	uc, _ := newProductUC(t)
	in := validCreate()
	in.Status = "archived"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

// TestCreate_DuplicadoCaseInsensitive: dos títulos que solo difieren en
// mayúsculas y espacios son el mismo producto.
func TestCreate_DuplicadoCaseInsensitive(t *testing.T) {
	uc, _ := newProductUC(t)

	_, err := uc.Create(validCreate())
	require.NoError(t, err)

	in := validCreate()
	in.Name = "  CAMISA CLÁSICA  "
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicateProduct)
}

// TestCreate_StockCeroFuerzaOutOfStock: el status derivado manda sobre el solicitado.
func TestCreate_StockCeroFuerzaOutOfStock(t *testing.T) {
	uc, _ := newProductUC(t)

	in := validCreate()
	in.Stock = intPtr(0)
	in.Status = entity.ProductStatusActive

	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusOutOfStock, out.Status,
		"stock 0 fuerza out_of_stock aunque se pida active")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_MergeParcial(t *testing.T) {
	uc, _ := newProductUC(t)
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: decPtr(price("34.99"))})
	require.NoError(t, err)

	assert.Equal(t, "Camisa clásica", out.Title, "los campos omitidos conservan su valor")
	assert.True(t, out.Price.Equal(price("34.99")))
	assert.Equal(t, 20, out.Stock)
}

func TestUpdate_NoExiste(t *testing.T) {
	uc, _ := newProductUC(t)
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestUpdate_StockCeroRederiva: tras el merge se reaplica la derivación y pisa
// cualquier status pedido explícitamente.
func TestUpdate_StockCeroRederiva(t *testing.T) {
	uc, _ := newProductUC(t)
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Stock:  intPtr(0),
		Status: strPtr(entity.ProductStatusActive),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusOutOfStock, out.Status)
}

func TestUpdate_StatusInvalido(t *testing.T) {
	uc, _ := newProductUC(t)
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Status: strPtr("deleted")})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetStock / SetStatus: contratos distintos a propósito
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStock_Actualiza(t *testing.T) {
	uc, _ := newProductUC(t)
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	out, err := uc.SetStock(created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Stock)
	assert.False(t, out.UpdatedAt.IsZero())
}

func TestSetStock_Negativo(t *testing.T) {
	uc, _ := newProductUC(t)
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	_, err = uc.SetStock(created.ID, -3)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetStock_NoExiste(t *testing.T) {
	uc, _ := newProductUC(t)
	_, err := uc.SetStock("no-existe", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestSetStock_NoRederivaStatus documenta la inconsistencia histórica: llegar a
// stock 0 por este camino NO fuerza out_of_stock (a diferencia de Create/Update).
func TestSetStock_NoRederivaStatus(t *testing.T) {
	uc, _ := newProductUC(t)
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	out, err := uc.SetStock(created.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusActive, out.Status,
		"SetStock no recalcula el status derivado; queda el anterior hasta el próximo Update")
}

// TestSetStatus_SinWhitelist documenta el contrato débil del PATCH de estado:
// acepta cualquier valor, incluso fuera de la whitelist.
func TestSetStatus_SinWhitelist(t *testing.T) {
	uc, _ := newProductUC(t)
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	out, err := uc.SetStatus(created.ID, "lo-que-sea")
	require.NoError(t, err)
	assert.Equal(t, "lo-que-sea", out.Status)
}

func TestSetStatus_NoExiste(t *testing.T) {
	uc, _ := newProductUC(t)
	_, err := uc.SetStatus("no-existe", entity.ProductStatusHidden)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListVisible_ExcluyeOcultos(t *testing.T) {
	uc, _ := newProductUC(t)
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	in := validCreate()
	in.Name = "Gorra clásica"
	in.Status = entity.ProductStatusHidden
	_, err = uc.Create(in)
	require.NoError(t, err)

	visibles, err := uc.ListVisible()
	require.NoError(t, err)
	require.Len(t, visibles, 1)
	assert.Equal(t, created.ID, visibles[0].ID)

	todos, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, todos, 2, "la vista admin incluye los ocultos")
}

func TestDelete(t *testing.T) {
	uc, _ := newProductUC(t)
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
