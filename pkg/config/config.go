package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App             AppConfig
	DB              DBConfig
	Redis           RedisConfig
	JWT             JWTConfig
	Commerce        CommerceConfig
	Storage         StorageConfig
	Sessions        SessionStoreConfig
	IntakeRateLimit IntakeRateLimitConfig
	FeatureFlags    FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Commerce.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MZANSIMARKET_APP_ENV" required:"true"`
	Port         string `envconfig:"MZANSIMARKET_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MZANSIMARKET_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MZANSIMARKET_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MZANSIMARKET_DB_DSN"`
	Driver string `envconfig:"MZANSIMARKET_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MZANSIMARKET_DB_HOST"`
	LegacyPort     int    `envconfig:"MZANSIMARKET_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MZANSIMARKET_DB_USER"`
	LegacyPassword string `envconfig:"MZANSIMARKET_DB_PASSWORD"`
	LegacyName     string `envconfig:"MZANSIMARKET_DB_NAME"`
	LegacySSLMode  string `envconfig:"MZANSIMARKET_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MZANSIMARKET_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MZANSIMARKET_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MZANSIMARKET_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MZANSIMARKET_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MZANSIMARKET_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MZANSIMARKET_REDIS_ADDR"`
	Password     string        `envconfig:"MZANSIMARKET_REDIS_PASSWORD"`
	DB           int           `envconfig:"MZANSIMARKET_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MZANSIMARKET_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MZANSIMARKET_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MZANSIMARKET_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MZANSIMARKET_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MZANSIMARKET_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MZANSIMARKET_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MZANSIMARKET_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MZANSIMARKET_JWT_EXPIRATION_MINUTES" required:"true"`
	SessionTTLMinutes int    `envconfig:"MZANSIMARKET_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the redis session allowlist TTL configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

// CommerceConfig carries the marketplace-wide commercial constants.
//
// CommissionRate is applied platform-wide by the admin aggregator even though
// each vendor row carries its own commission_rate; the per-vendor rate only
// surfaces on the vendor dashboard. That asymmetry is inherited behavior.
type CommerceConfig struct {
	CommissionRate          float64 `envconfig:"MZANSIMARKET_COMMISSION_RATE" default:"0.12"`
	DiscountThresholdAmount float64 `envconfig:"MZANSIMARKET_DISCOUNT_THRESHOLD_AMOUNT" default:"15000"`
	DiscountPeriodMonths    int     `envconfig:"MZANSIMARKET_DISCOUNT_PERIOD_MONTHS" default:"6"`
	HighPerformerDiscount   float64 `envconfig:"MZANSIMARKET_HIGH_PERFORMER_DISCOUNT" default:"0.03"`
}

func (c CommerceConfig) validate() error {
	if c.CommissionRate < 0 || c.CommissionRate > 1 {
		return fmt.Errorf("commission rate must be within [0,1], got %v", c.CommissionRate)
	}
	if c.DiscountThresholdAmount <= 0 {
		return fmt.Errorf("discount threshold must be positive, got %v", c.DiscountThresholdAmount)
	}
	if c.DiscountPeriodMonths <= 0 {
		return fmt.Errorf("discount period months must be positive, got %d", c.DiscountPeriodMonths)
	}
	return nil
}

// StorageConfig locates the public object store serving media assets.
type StorageConfig struct {
	PublicBaseURL string `envconfig:"MZANSIMARKET_STORAGE_PUBLIC_BASE_URL"`
}

// SessionStoreConfig tunes the in-memory cart/wishlist session registry.
type SessionStoreConfig struct {
	MaxIdle       time.Duration `envconfig:"MZANSIMARKET_SESSION_STORE_MAX_IDLE" default:"2h"`
	SweepInterval time.Duration `envconfig:"MZANSIMARKET_SESSION_STORE_SWEEP_INTERVAL" default:"10m"`
}

type IntakeRateLimitConfig struct {
	Window  time.Duration `envconfig:"MZANSIMARKET_INTAKE_RATE_LIMIT_WINDOW" default:"5m"`
	IPLimit int           `envconfig:"MZANSIMARKET_INTAKE_RATE_LIMIT_IP_LIMIT" default:"10"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MZANSIMARKET_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MZANSIMARKET_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
