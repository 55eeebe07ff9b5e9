package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Store StoreConfig
	Mongo MongoConfig
	Wompi WompiConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StoreConfig configuración del almacenamiento en archivos JSON (catálogo, pedidos, usuarios).
type StoreConfig struct {
	DataDir string // directorio donde viven products.json, orders.json y users.json
}

// MongoConfig configuración de MongoDB (sesiones de pago con TTL de 24h).
// Si URI está vacío, la integración de pagos queda deshabilitada.
type MongoConfig struct {
	URI      string
	Database string
}

// WompiConfig credenciales de la pasarela de pagos Wompi (Colombia).
// IntegritySecret firma las transacciones salientes; EventsSecret verifica los webhooks entrantes.
type WompiConfig struct {
	PublicKey       string
	IntegritySecret string
	EventsSecret    string
	Currency        string // COP por defecto
	RedirectURL     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, WOMPI_EVENTS_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "acme-storefront"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "acme-storefront"),
		},
		Store: StoreConfig{
			DataDir: getString(v, "STORE_DATA_DIR", "./data"),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", ""),
			Database: getString(v, "MONGO_DATABASE", "acme_storefront"),
		},
		Wompi: WompiConfig{
			PublicKey:       getString(v, "WOMPI_PUBLIC_KEY", ""),
			IntegritySecret: getString(v, "WOMPI_INTEGRITY_SECRET", ""),
			EventsSecret:    getString(v, "WOMPI_EVENTS_SECRET", ""),
			Currency:        getString(v, "WOMPI_CURRENCY", "COP"),
			RedirectURL:     getString(v, "WOMPI_REDIRECT_URL", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
