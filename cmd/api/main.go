package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/acme-ecommerce/storefront-api/internal/application/auth"
	"github.com/acme-ecommerce/storefront-api/internal/application/payments"
	"github.com/acme-ecommerce/storefront-api/internal/application/usecase"
	"github.com/acme-ecommerce/storefront-api/internal/infrastructure/jsonstore"
	"github.com/acme-ecommerce/storefront-api/internal/infrastructure/mongostore"
	httpRouter "github.com/acme-ecommerce/storefront-api/internal/interfaces/http"
	"github.com/acme-ecommerce/storefront-api/pkg/config"
	"github.com/acme-ecommerce/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Almacenes de archivos JSON; siembran admin y catálogo en el primer arranque.
	productStore, err := jsonstore.NewProductStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar products.json")
	}
	orderStore, err := jsonstore.NewOrderStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar orders.json")
	}
	userStore, err := jsonstore.NewUserStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar users.json")
	}

	productUC := usecase.NewProductUseCase(productStore)
	orderUC := usecase.NewOrderUseCase(orderStore, productStore)
	userUC := usecase.NewUserUseCase(userStore)
	authUC := auth.NewAuthUseCase(userStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Pagos Wompi: solo si hay MongoDB para las sesiones. Sin MONGO_URI la
	// tienda funciona igual, sin las rutas de pago.
	var paymentsUC *payments.UseCase
	var mongoClient *mongo.Client
	if cfg.Mongo.URI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err == nil {
			err = mongoClient.Ping(ctx, nil)
		}
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MongoDB")
		}
		sessionStore := mongostore.NewPaymentSessionStore(mongoClient.Database(cfg.Mongo.Database))
		if err := sessionStore.EnsureIndexes(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("índices de payment_sessions")
		}
		paymentsUC = payments.NewUseCase(productStore, sessionStore, orderUC, payments.WompiConfig{
			PublicKey:       cfg.Wompi.PublicKey,
			IntegritySecret: cfg.Wompi.IntegritySecret,
			EventsSecret:    cfg.Wompi.EventsSecret,
			Currency:        cfg.Wompi.Currency,
			RedirectURL:     cfg.Wompi.RedirectURL,
		})
	} else {
		log.Warn().Msg("MONGO_URI vacío: rutas de pago deshabilitadas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ACME Storefront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		OrderUC:    orderUC,
		UserUC:     userUC,
		PaymentsUC: paymentsUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}

	log.Info().Msg("aplicación detenida")
}
