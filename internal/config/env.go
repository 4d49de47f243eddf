package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Env struct {
	AppAddr string `mapstructure:"APP_ADDR"`
	GinMode string `mapstructure:"GIN_MODE"`
	Env     string `mapstructure:"ENV"`

	LandingAPIBaseURL   string        `mapstructure:"LANDING_API_BASE_URL"`
	LandingAPITimeout   time.Duration `mapstructure:"LANDING_API_TIMEOUT"`
	AssetBaseURL        string        `mapstructure:"ASSET_BASE_URL"`
	PlaceholderImageURL string        `mapstructure:"PLACEHOLDER_IMAGE_URL"`
	CatalogSource       string        `mapstructure:"CATALOG_SOURCE"`
	CatalogFixture      string        `mapstructure:"CATALOG_FIXTURE"`

	DBDSN string `mapstructure:"DB_DSN"`

	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int           `mapstructure:"REDIS_DB"`
	CatalogCacheTTL time.Duration `mapstructure:"CATALOG_CACHE_TTL"`
	DraftTTL        time.Duration `mapstructure:"DRAFT_TTL"`

	PaymentBaseURL     string        `mapstructure:"PAYMENT_BASE_URL"`
	PaymentTokenSecret string        `mapstructure:"PAYMENT_TOKEN_SECRET"`
	PaymentTokenTTL    time.Duration `mapstructure:"PAYMENT_TOKEN_TTL"`

	SubmitRatePerMin   int    `mapstructure:"SUBMIT_RATE_PER_MIN"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// IsProduction reports whether ENV=production.
func (e Env) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(e.Env), "production")
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS.
func (e Env) AllowedOrigins() []string {
	out := []string{}
	for _, o := range strings.Split(e.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("ENV", "development")
	v.SetDefault("LANDING_API_BASE_URL", "http://127.0.0.1:8000")
	v.SetDefault("LANDING_API_TIMEOUT", 15*time.Second)
	v.SetDefault("ASSET_BASE_URL", "http://127.0.0.1:8000/storage/")
	v.SetDefault("PLACEHOLDER_IMAGE_URL", "/images/placeholder.webp")
	v.SetDefault("CATALOG_SOURCE", "http")
	v.SetDefault("CATALOG_FIXTURE", "fixtures/catalog.json")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CATALOG_CACHE_TTL", 5*time.Minute)
	v.SetDefault("DRAFT_TTL", 24*time.Hour)
	v.SetDefault("PAYMENT_BASE_URL", "http://localhost:3000/payment")
	v.SetDefault("PAYMENT_TOKEN_SECRET", "change-me")
	v.SetDefault("PAYMENT_TOKEN_TTL", 2*time.Hour)
	v.SetDefault("SUBMIT_RATE_PER_MIN", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")
}

// LoadEnv reads config.yaml (., ./config) when present, then environment variables.
func LoadEnv() Env {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("config.yaml tidak ditemukan, memakai environment variables")
	}
	return decodeEnv(v)
}

func decodeEnv(v *viper.Viper) Env {
	var env Env
	if err := v.Unmarshal(&env); err != nil {
		log.Fatalf("Gagal memuat konfigurasi: %v", err)
	}
	env.AppAddr = strings.TrimSpace(env.AppAddr)
	env.GinMode = strings.TrimSpace(env.GinMode)
	env.LandingAPIBaseURL = strings.TrimRight(strings.TrimSpace(env.LandingAPIBaseURL), "/")
	env.CatalogSource = strings.ToLower(strings.TrimSpace(env.CatalogSource))
	return env
}
