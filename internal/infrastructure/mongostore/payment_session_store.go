// Package mongostore persiste las sesiones de pago en MongoDB.
// La expiración de 24 horas la aplica un índice TTL sobre createdAt: las
// sesiones vencidas las borra el propio Mongo, no la aplicación.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
	"github.com/acme-ecommerce/storefront-api/internal/domain/repository"
)

var _ repository.PaymentSessionRepository = (*PaymentSessionStore)(nil)

const sessionTTL = 24 * time.Hour

// sessionDoc documento Mongo de una sesión. Los montos decimales se guardan
// como string para no perder precisión.
type sessionDoc struct {
	Reference string    `bson:"reference"`
	UserID    string    `bson:"userId"`
	UserEmail string    `bson:"userEmail"`
	Items     []itemDoc `bson:"items"`
	Total     string    `bson:"total"`
	Currency  string    `bson:"currency"`
	CreatedAt time.Time `bson:"createdAt"`
}

type itemDoc struct {
	ProductID string `bson:"productId"`
	Title     string `bson:"title"`
	Price     string `bson:"price"`
	Qty       int    `bson:"qty"`
}

// PaymentSessionStore adaptador del puerto PaymentSessionRepository sobre MongoDB.
type PaymentSessionStore struct {
	col *mongo.Collection
}

// NewPaymentSessionStore construye el adaptador sobre la colección payment_sessions.
func NewPaymentSessionStore(db *mongo.Database) *PaymentSessionStore {
	return &PaymentSessionStore{col: db.Collection("payment_sessions")}
}

// EnsureIndexes crea los índices necesarios: reference único y TTL de 24h
// sobre createdAt. Idempotente; llamar una vez al arrancar.
func (s *PaymentSessionStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "reference", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(sessionTTL.Seconds())),
		},
	})
	if err != nil {
		return fmt.Errorf("crear índices de payment_sessions: %w", err)
	}
	return nil
}

// Create inserta una sesión nueva.
func (s *PaymentSessionStore) Create(ctx context.Context, session *entity.PaymentSession) error {
	if _, err := s.col.InsertOne(ctx, toDoc(session)); err != nil {
		return fmt.Errorf("insertar sesión de pago: %w", err)
	}
	return nil
}

// FindByReference busca una sesión por referencia. Devuelve (nil, nil) si no
// existe o si el TTL ya la borró.
func (s *PaymentSessionStore) FindByReference(ctx context.Context, reference string) (*entity.PaymentSession, error) {
	var doc sessionDoc
	err := s.col.FindOne(ctx, bson.D{{Key: "reference", Value: reference}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar sesión de pago: %w", err)
	}
	return fromDoc(&doc)
}

// DeleteByReference elimina la sesión con esa referencia (no falla si no existe).
func (s *PaymentSessionStore) DeleteByReference(ctx context.Context, reference string) error {
	if _, err := s.col.DeleteOne(ctx, bson.D{{Key: "reference", Value: reference}}); err != nil {
		return fmt.Errorf("eliminar sesión de pago: %w", err)
	}
	return nil
}

func toDoc(session *entity.PaymentSession) *sessionDoc {
	items := make([]itemDoc, 0, len(session.Items))
	for _, it := range session.Items {
		items = append(items, itemDoc{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price.String(),
			Qty:       it.Qty,
		})
	}
	return &sessionDoc{
		Reference: session.Reference,
		UserID:    session.UserID,
		UserEmail: session.UserEmail,
		Items:     items,
		Total:     session.Total.String(),
		Currency:  session.Currency,
		CreatedAt: session.CreatedAt,
	}
}

func fromDoc(doc *sessionDoc) (*entity.PaymentSession, error) {
	total, err := decimal.NewFromString(doc.Total)
	if err != nil {
		return nil, fmt.Errorf("total corrupto en sesión %s: %w", doc.Reference, err)
	}
	items := make([]entity.OrderItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, fmt.Errorf("precio corrupto en sesión %s: %w", doc.Reference, err)
		}
		items = append(items, entity.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     price,
			Qty:       it.Qty,
		})
	}
	return &entity.PaymentSession{
		Reference: doc.Reference,
		UserID:    doc.UserID,
		UserEmail: doc.UserEmail,
		Items:     items,
		Total:     total,
		Currency:  doc.Currency,
		CreatedAt: doc.CreatedAt,
	}, nil
}
