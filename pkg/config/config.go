package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	Pricing    PricingConfig
	Intake     IntakeRateLimitConfig
	Stripe     StripeConfig
	CORS       CORSConfig
	Idempotent IdempotencyConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Pricing.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SAVORIA_APP_ENV" default:"dev"`
	Port         string `envconfig:"SAVORIA_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"SAVORIA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SAVORIA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Driver selects sqlite (default) or postgres. The sqlite default keeps
	// the store process-local: restarting the service drops all orders,
	// reservations and messages while the catalog reseeds at boot.
	Driver string `envconfig:"SAVORIA_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"SAVORIA_DB_DSN" default:"file::memory:?cache=shared"`

	MaxOpenConns    int           `envconfig:"SAVORIA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SAVORIA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SAVORIA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SAVORIA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	// URL is optional; with no Redis the idempotency and intake rate-limit
	// middlewares pass requests straight through.
	URL          string        `envconfig:"SAVORIA_REDIS_URL"`
	Password     string        `envconfig:"SAVORIA_REDIS_PASSWORD"`
	DB           int           `envconfig:"SAVORIA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SAVORIA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SAVORIA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SAVORIA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SAVORIA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SAVORIA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// PricingConfig drives the cart pricing engine. Promo rules are configured as
// "code:rate" pairs instead of a hardcoded literal so extending the rule set
// is a deploy, not a code change.
type PricingConfig struct {
	FreeDeliveryThreshold string `envconfig:"SAVORIA_PRICING_FREE_DELIVERY_THRESHOLD" default:"25.00"`
	DeliveryFee           string `envconfig:"SAVORIA_PRICING_DELIVERY_FEE" default:"2.99"`
	TaxRate               string `envconfig:"SAVORIA_PRICING_TAX_RATE" default:"0.05"`
	TaxEnabled            bool   `envconfig:"SAVORIA_PRICING_TAX_ENABLED" default:"true"`
	PromoRules            string `envconfig:"SAVORIA_PRICING_PROMO_RULES" default:"savoria20:0.20"`

	MinDeliveryMinutes int `envconfig:"SAVORIA_ORDER_MIN_DELIVERY_MINUTES" default:"30"`
	MaxDeliveryMinutes int `envconfig:"SAVORIA_ORDER_MAX_DELIVERY_MINUTES" default:"45"`
}

func (p PricingConfig) validate() error {
	for name, raw := range map[string]string{
		"free delivery threshold": p.FreeDeliveryThreshold,
		"delivery fee":            p.DeliveryFee,
		"tax rate":                p.TaxRate,
	} {
		if _, err := decimal.NewFromString(raw); err != nil {
			return fmt.Errorf("pricing %s %q is not a decimal: %w", name, raw, err)
		}
	}
	if _, err := p.ParsePromoRules(); err != nil {
		return err
	}
	if p.MinDeliveryMinutes <= 0 || p.MaxDeliveryMinutes < p.MinDeliveryMinutes {
		return fmt.Errorf("delivery minute window %d..%d is invalid", p.MinDeliveryMinutes, p.MaxDeliveryMinutes)
	}
	return nil
}

// ParsePromoRules expands the "code:rate,code:rate" string into a lowercase
// code to discount-rate map.
func (p PricingConfig) ParsePromoRules() (map[string]decimal.Decimal, error) {
	rules := map[string]decimal.Decimal{}
	for _, pair := range strings.Split(p.PromoRules, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("promo rule %q must be code:rate", pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("promo rule %q rate is not a decimal: %w", pair, err)
		}
		code := strings.ToLower(strings.TrimSpace(parts[0]))
		if code == "" {
			return nil, fmt.Errorf("promo rule %q has an empty code", pair)
		}
		rules[code] = rate
	}
	return rules, nil
}

type IntakeRateLimitConfig struct {
	Window  time.Duration `envconfig:"SAVORIA_INTAKE_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"SAVORIA_INTAKE_RATE_LIMIT_IP_LIMIT" default:"10"`
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"SAVORIA_ORDER_IDEMPOTENCY_TTL" default:"24h"`
}

type StripeConfig struct {
	// APIKey is optional; without it POST /api/create-payment-intent reports
	// a dependency error rather than failing boot, since cash-on-delivery
	// checkout never touches Stripe.
	APIKey   string `envconfig:"SAVORIA_STRIPE_API_KEY"`
	Currency string `envconfig:"SAVORIA_STRIPE_CURRENCY" default:"usd"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SAVORIA_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}
