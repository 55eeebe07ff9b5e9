package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
)

func TestProductStore_SiembraCatalogoInicial(t *testing.T) {
	dir := t.TempDir()
	store, err := NewProductStore(dir)
	require.NoError(t, err)

	all, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 9, "catálogo inicial p1..p9")
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "Camisa clásica", all[0].Title)
	assert.Equal(t, entity.ProductStatusActive, all[0].Status)

	// El archivo quedó en disco con las claves de wire esperadas.
	data, err := os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, k := range []string{"id", "title", "price", "stock", "img", "status"} {
		assert.Contains(t, raw[0], k)
	}
}

func TestProductStore_NoResiembraSiExiste(t *testing.T) {
	dir := t.TempDir()
	store, err := NewProductStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceAll(nil))

	// Un segundo arranque sobre el mismo directorio respeta el archivo vacío.
	store2, err := NewProductStore(dir)
	require.NoError(t, err)
	all, err := store2.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOrderStore_ArrancaVacio(t *testing.T) {
	store, err := NewOrderStore(t.TempDir())
	require.NoError(t, err)
	all, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOrderStore_RoundTripConHistorial(t *testing.T) {
	store, err := NewOrderStore(t.TempDir())
	require.NoError(t, err)

	order := &entity.Order{
		ID:     "o1",
		UserID: "u1",
		Status: entity.OrderStatusPendiente,
		Items:  []entity.OrderItem{{ProductID: "p1", Title: "Camisa clásica", Qty: 2}},
		StatusHistory: []entity.StatusChange{
			{From: entity.OrderStatusPendiente, To: entity.OrderStatusEnviado, UpdatedBy: "admin@acme.com"},
		},
	}
	require.NoError(t, store.ReplaceAll([]*entity.Order{order}))

	all, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "o1", all[0].ID)
	require.Len(t, all[0].StatusHistory, 1)
	assert.Equal(t, entity.OrderStatusEnviado, all[0].StatusHistory[0].To)
	require.Len(t, all[0].Items, 1)
	assert.Equal(t, "p1", all[0].Items[0].ProductID, "la línea serializa el producto bajo la clave id")
}

func TestUserStore_SiembraAdmin(t *testing.T) {
	store, err := NewUserStore(t.TempDir())
	require.NoError(t, err)

	all, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, DefaultAdminEmail, all[0].Email)
	assert.Equal(t, entity.RoleAdmin, all[0].Role)
	assert.NotEqual(t, defaultAdminPassword, all[0].PasswordHash, "la contraseña se guarda hasheada")
}
