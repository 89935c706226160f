package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
	Shipping ShippingConfig
	Upload   UploadConfig
	History  HistoryConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// ShippingConfig carries the fixed tariff and routing provider settings.
// The default origin is the kitchen location used when a request supplies
// only a destination; both parts must be set for it to take effect.
type ShippingConfig struct {
	TariffPerKM      int64
	DefaultOriginLat float64
	DefaultOriginLng float64
	HasDefaultOrigin bool
	ProviderURL      string
	ProviderAPIKey   string
	ProviderTimeout  time.Duration
}

type UploadConfig struct {
	Dir          string
	MaxSizeBytes int64
}

type HistoryConfig struct {
	RetentionDays int
	PruneSchedule string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "katering")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "katering")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("DB_MIGRATIONS_PATH", "migrations")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_TOKEN_TTL", "168h")
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("SHIPPING_TARIFF_PER_KM", 2000)
	viper.SetDefault("SHIPPING_ORIGIN_LAT", 0.0)
	viper.SetDefault("SHIPPING_ORIGIN_LNG", 0.0)
	viper.SetDefault("ROUTING_API_URL", "https://api.openrouteservice.org/v2/directions/driving-car/geojson")
	viper.SetDefault("ROUTING_API_KEY", "")
	viper.SetDefault("ROUTING_TIMEOUT", "10s")
	viper.SetDefault("UPLOAD_DIR", "uploads/menu")
	viper.SetDefault("UPLOAD_MAX_SIZE_BYTES", 5*1024*1024)
	viper.SetDefault("HISTORY_RETENTION_DAYS", 90)
	viper.SetDefault("HISTORY_PRUNE_SCHEDULE", "0 3 * * *")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	tokenTTL, err := time.ParseDuration(viper.GetString("JWT_TOKEN_TTL"))
	if err != nil {
		return nil, err
	}

	providerTimeout, err := time.ParseDuration(viper.GetString("ROUTING_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	originLat := viper.GetFloat64("SHIPPING_ORIGIN_LAT")
	originLng := viper.GetFloat64("SHIPPING_ORIGIN_LNG")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
			MigrationsPath:  viper.GetString("DB_MIGRATIONS_PATH"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret:  viper.GetString("JWT_SECRET"),
			TokenTTL:   tokenTTL,
			BcryptCost: viper.GetInt("BCRYPT_COST"),
		},
		Shipping: ShippingConfig{
			TariffPerKM:      viper.GetInt64("SHIPPING_TARIFF_PER_KM"),
			DefaultOriginLat: originLat,
			DefaultOriginLng: originLng,
			HasDefaultOrigin: originLat != 0 || originLng != 0,
			ProviderURL:      viper.GetString("ROUTING_API_URL"),
			ProviderAPIKey:   viper.GetString("ROUTING_API_KEY"),
			ProviderTimeout:  providerTimeout,
		},
		Upload: UploadConfig{
			Dir:          viper.GetString("UPLOAD_DIR"),
			MaxSizeBytes: viper.GetInt64("UPLOAD_MAX_SIZE_BYTES"),
		},
		History: HistoryConfig{
			RetentionDays: viper.GetInt("HISTORY_RETENTION_DAYS"),
			PruneSchedule: viper.GetString("HISTORY_PRUNE_SCHEDULE"),
		},
	}

	return cfg, nil
}
