package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acme-ecommerce/storefront-api/internal/application/auth"
	"github.com/acme-ecommerce/storefront-api/internal/application/payments"
	"github.com/acme-ecommerce/storefront-api/internal/application/usecase"
	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
)

// RouterDeps dependencias para el router. PaymentsUC puede ser nil si la
// integración de pagos está deshabilitada (sin MONGO_URI); en ese caso las
// rutas de pagos no se registran.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	UserUC     *usecase.UserUseCase
	PaymentsUC *payments.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo público con stock
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.Catalog)

	// Pedidos del cliente (requieren Bearer Token)
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup := api.Group("/orders", AuthMiddleware(deps.JWTSecret))
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.ListOwn)

	// Pagos: crear transacción requiere sesión; el webhook es público
	// (su autenticidad la da la firma del evento).
	if deps.PaymentsUC != nil {
		paymentHandler := NewPaymentHandler(deps.PaymentsUC)
		paymentsGroup := api.Group("/payments")
		paymentsGroup.Post("/create-transaction", AuthMiddleware(deps.JWTSecret), paymentHandler.CreateTransaction)
		paymentsGroup.Post("/webhook", paymentHandler.Webhook)
	}

	// Administración (Bearer Token + rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	admin.Get("/orders", orderHandler.ListAll)
	admin.Patch("/orders/:id", orderHandler.SetStatus)

	admin.Get("/products", productHandler.List)
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Patch("/products/:id/status", productHandler.SetStatus)
	admin.Patch("/products/:id", productHandler.SetStock)
	admin.Delete("/products/:id", productHandler.Delete)

	userHandler := NewUserHandler(deps.UserUC)
	admin.Get("/users", userHandler.List)
	admin.Patch("/users/:id/status", userHandler.SetStatus)
}
