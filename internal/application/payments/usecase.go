// Package payments orquesta la integración con la pasarela Wompi: creación de
// transacciones firmadas (saliente) y procesamiento de webhooks (entrante).
package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acme-ecommerce/storefront-api/internal/application/dto"
	"github.com/acme-ecommerce/storefront-api/internal/application/usecase"
	"github.com/acme-ecommerce/storefront-api/internal/domain"
	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
	"github.com/acme-ecommerce/storefront-api/internal/domain/repository"
	"github.com/acme-ecommerce/storefront-api/internal/domain/wompi"
)

// WompiConfig credenciales y moneda de la pasarela.
type WompiConfig struct {
	PublicKey       string
	IntegritySecret string
	EventsSecret    string
	Currency        string
	RedirectURL     string
}

// UseCase casos de uso de pagos.
type UseCase struct {
	products repository.ProductRepository
	sessions repository.PaymentSessionRepository
	orders   *usecase.OrderUseCase
	cfg      WompiConfig
}

// NewUseCase construye el caso de uso de pagos.
func NewUseCase(products repository.ProductRepository, sessions repository.PaymentSessionRepository, orders *usecase.OrderUseCase, cfg WompiConfig) *UseCase {
	return &UseCase{products: products, sessions: sessions, orders: orders, cfg: cfg}
}

// CreateTransaction congela el carrito en una PaymentSession y devuelve los
// datos firmados que el widget de Wompi necesita. El total se calcula del
// catálogo en el servidor; los precios del cliente se ignoran.
func (uc *UseCase) CreateTransaction(ctx context.Context, userID, userEmail string, in dto.CreateTransactionRequest) (*dto.CreateTransactionResponse, error) {
	if userID == "" || len(in.Items) == 0 {
		return nil, domain.ErrValidation
	}

	products, err := uc.products.LoadAll()
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	lines := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || it.Qty <= 0 {
			return nil, domain.ErrValidation
		}
		var product *entity.Product
		for _, p := range products {
			if p.ID == it.ProductID {
				product = p
				break
			}
		}
		if product == nil || product.Status == entity.ProductStatusHidden {
			return nil, domain.ErrNotFound
		}
		if product.Stock < it.Qty {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Title)
		}
		lines = append(lines, entity.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Qty:       it.Qty,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}

	reference := newReference()
	amountInCents := toCents(total)
	signature, err := wompi.GenerateSignature(reference, amountInCents, uc.cfg.Currency, uc.cfg.IntegritySecret)
	if err != nil {
		return nil, err
	}

	session := &entity.PaymentSession{
		Reference: reference,
		UserID:    userID,
		UserEmail: userEmail,
		Items:     lines,
		Total:     total,
		Currency:  uc.cfg.Currency,
		CreatedAt: time.Now(),
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.CreateTransactionResponse{
		Reference:     reference,
		AmountInCents: amountInCents,
		Currency:      uc.cfg.Currency,
		Signature:     signature,
		PublicKey:     uc.cfg.PublicKey,
		RedirectURL:   uc.cfg.RedirectURL,
	}, nil
}

// HandleWebhook procesa un evento transaction.updated de Wompi.
//
// Primero verifica el checksum; un evento que no verifica se responde como
// ignorado SIN ninguna mutación (la pasarela reintenta los 4xx/5xx, así que
// se contesta 200 igualmente). Con firma válida:
//
//   - APPROVED: la sesión referenciada se convierte en un pedido Pendiente por
//     el camino normal del checkout (descuenta stock) y la sesión se elimina.
//   - DECLINED / VOIDED / ERROR: la sesión se descarta.
//
// Una referencia sin sesión (vencida por TTL o ya procesada) también se ignora.
func (uc *UseCase) HandleWebhook(ctx context.Context, event dto.WompiEvent) (*dto.WebhookResponse, error) {
	tx := event.Data.Transaction
	ok, err := wompi.VerifyWebhookSignature(
		event.Signature.Checksum,
		tx.ID, tx.Status, tx.AmountInCents, event.Timestamp,
		uc.cfg.EventsSecret,
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &dto.WebhookResponse{Received: true, Ignored: true}, nil
	}

	session, err := uc.sessions.FindByReference(ctx, tx.Reference)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return &dto.WebhookResponse{Received: true, Ignored: true}, nil
	}

	switch tx.Status {
	case "APPROVED":
		items := make([]dto.CheckoutItemRequest, 0, len(session.Items))
		for _, it := range session.Items {
			items = append(items, dto.CheckoutItemRequest{ProductID: it.ProductID, Qty: it.Qty})
		}
		if _, err := uc.orders.Create(session.UserID, session.UserEmail, items); err != nil {
			return nil, err
		}
		if err := uc.sessions.DeleteByReference(ctx, tx.Reference); err != nil {
			return nil, err
		}
	case "DECLINED", "VOIDED", "ERROR":
		if err := uc.sessions.DeleteByReference(ctx, tx.Reference); err != nil {
			return nil, err
		}
	}
	return &dto.WebhookResponse{Received: true}, nil
}

// newReference genera una referencia única de transacción: ACME-<millis>-<fragmento uuid>.
func newReference() string {
	frag := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("ACME-%d-%s", time.Now().UnixMilli(), frag)
}

// toCents convierte el total decimal a centavos enteros para Wompi.
func toCents(total decimal.Decimal) int64 {
	return total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
