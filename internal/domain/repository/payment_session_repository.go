package repository

import (
	"context"

	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
)

// PaymentSessionRepository puerto de persistencia de sesiones de pago.
// El almacén es responsable de la expiración (TTL 24h); FindByReference
// devuelve (nil, nil) si la sesión no existe o ya venció.
type PaymentSessionRepository interface {
	Create(ctx context.Context, session *entity.PaymentSession) error
	FindByReference(ctx context.Context, reference string) (*entity.PaymentSession, error)
	DeleteByReference(ctx context.Context, reference string) error
}
