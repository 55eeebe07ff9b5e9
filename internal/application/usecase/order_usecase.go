package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acme-ecommerce/storefront-api/internal/application/dto"
	"github.com/acme-ecommerce/storefront-api/internal/domain"
	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
	"github.com/acme-ecommerce/storefront-api/internal/domain/repository"
)

// OrderUseCase checkout y motor de transición de estados de pedidos.
//
// El flujo de consistencia pedido/stock vive aquí: el checkout descuenta stock
// al crear el pedido y la cancelación lo devuelve. No hay transacción entre los
// dos archivos; el guardado de productos va SIEMPRE antes que el de pedidos
// para que una devolución de stock nunca se pierda ante un fallo parcial.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products}
}

// Create crea un pedido desde el carrito del cliente descontando stock.
// Los precios y títulos se congelan desde el catálogo actual (nunca se confía
// en los precios del cliente). Productos ocultos o inexistentes rechazan el
// checkout; stock insuficiente devuelve ErrInsufficientStock.
func (uc *OrderUseCase) Create(userID, userEmail string, items []dto.CheckoutItemRequest) (*dto.OrderResponse, error) {
	if userID == "" || len(items) == 0 {
		return nil, domain.ErrValidation
	}
	for _, it := range items {
		if it.ProductID == "" || it.Qty <= 0 {
			return nil, domain.ErrValidation
		}
	}

	products, err := uc.products.LoadAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	total := decimal.Zero
	lines := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		product := findProduct(products, it.ProductID)
		if product == nil || product.Status == entity.ProductStatusHidden {
			return nil, domain.ErrNotFound
		}
		if product.Stock < it.Qty {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Title)
		}
		product.Stock -= it.Qty
		if product.Stock == 0 {
			product.Status = entity.ProductStatusOutOfStock
		}
		product.UpdatedAt = now

		lines = append(lines, entity.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Qty:       it.Qty,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}

	// Primero el stock descontado, después el pedido.
	if err := uc.products.ReplaceAll(products); err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		UserEmail: userEmail,
		Items:     lines,
		Total:     total,
		Status:    entity.OrderStatusPendiente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	orders, err := uc.orders.LoadAll()
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)
	if err := uc.orders.ReplaceAll(orders); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistencePartial, err)
	}
	return toOrderResponse(order), nil
}

// Transition cambia el estado de un pedido aplicando las reglas del workflow:
//
//  1. Bloqueo de estado terminal: un pedido Cancelado no admite más cambios.
//  2. Whitelist: el estado destino debe ser uno de los cuatro permitidos.
//  3. Al pasar a Cancelado se devuelve el stock de cada línea cuyo producto
//     siga existiendo (los desaparecidos se omiten en silencio) y los productos
//     se guardan ANTES que el pedido.
//  4. Toda transición exitosa agrega exactamente una entrada al historial.
//
// Si el guardado del pedido falla después de haber escrito los productos,
// devuelve ErrPersistencePartial: el stock restaurado ya quedó en disco.
func (uc *OrderUseCase) Transition(orderID, newStatus, actor string) (*dto.OrderResponse, error) {
	orders, err := uc.orders.LoadAll()
	if err != nil {
		return nil, err
	}
	var order *entity.Order
	for _, o := range orders {
		if o.ID == orderID {
			order = o
			break
		}
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	// El bloqueo terminal se evalúa antes que la whitelist: un pedido cancelado
	// responde InvalidTransition sea cual sea el destino pedido.
	if order.Status == entity.OrderStatusCancelado {
		return nil, domain.ErrInvalidTransition
	}
	if !entity.IsValidOrderStatus(newStatus) {
		return nil, domain.ErrInvalidStatus
	}

	// Devolución de stock al cancelar. Sin efecto para el resto de transiciones.
	if newStatus == entity.OrderStatusCancelado {
		products, err := uc.products.LoadAll()
		if err != nil {
			return nil, err
		}
		for _, item := range order.Items {
			if product := findProduct(products, item.ProductID); product != nil {
				product.Stock += item.Qty
				product.UpdatedAt = time.Now()
			}
		}
		if err := uc.products.ReplaceAll(products); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	order.StatusHistory = append(order.StatusHistory, entity.StatusChange{
		From:      order.Status,
		To:        newStatus,
		Date:      now,
		UpdatedBy: actor,
	})
	order.Status = newStatus
	order.UpdatedAt = now

	if err := uc.orders.ReplaceAll(orders); err != nil {
		if newStatus == entity.OrderStatusCancelado {
			return nil, fmt.Errorf("%w: %v", domain.ErrPersistencePartial, err)
		}
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List devuelve todos los pedidos, más recientes primero (vista admin).
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	orders, err := uc.orders.LoadAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// ListByUser devuelve los pedidos de un usuario, más recientes primero.
func (uc *OrderUseCase) ListByUser(userID string) ([]dto.OrderResponse, error) {
	orders, err := uc.orders.LoadAll()
	if err != nil {
		return nil, err
	}
	own := make([]*entity.Order, 0)
	for _, o := range orders {
		if o.UserID == userID {
			own = append(own, o)
		}
	}
	sort.Slice(own, func(i, j int) bool {
		return own[i].CreatedAt.After(own[j].CreatedAt)
	})
	out := make([]dto.OrderResponse, 0, len(own))
	for _, o := range own {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// GetByID obtiene un pedido por ID.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	orders, err := uc.orders.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			return toOrderResponse(o), nil
		}
	}
	return nil, domain.ErrNotFound
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Qty:       it.Qty,
		})
	}
	history := make([]dto.StatusChangeResponse, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, dto.StatusChangeResponse{
			From:      h.From,
			To:        h.To,
			Date:      h.Date,
			UpdatedBy: h.UpdatedBy,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		UserEmail:     o.UserEmail,
		Items:         items,
		Total:         o.Total,
		Status:        o.Status,
		StatusHistory: history,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
