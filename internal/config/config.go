package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Token     TokenConfig     `yaml:"token"`
	MWP       MWPConfig       `yaml:"mwp"`
	Mail      MailConfig      `yaml:"mail"`
	Sweeper   SweeperConfig   `yaml:"sweeper"`
	Timeouts  TimeoutsConfig  `yaml:"timeouts"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds settings of the verification-token cache.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	OpTimeout   time.Duration `yaml:"op_timeout"   env:"REDIS_OP_TIMEOUT"   env-default:"2s"`
}

// AuthConfig holds JWT and password hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"account-service"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// TokenConfig holds verification-token settings.
type TokenConfig struct {
	TTL       time.Duration `yaml:"ttl"        env:"VERIFICATION_TOKEN_TTL"        env-default:"24h"`
	KeyPrefix string        `yaml:"key_prefix" env:"VERIFICATION_TOKEN_KEY_PREFIX" env-default:"verification:"`
}

// MWPConfig holds the shared secret used to authenticate multi-write-proxy mutations.
type MWPConfig struct {
	Secret    string `yaml:"secret"    env:"MWP_SECRET"    env-required:"true"`
	Algorithm string `yaml:"algorithm" env:"MWP_ALGORITHM" env-default:"sha256"`
}

// MailConfig holds the mail job queue and SMTP delivery settings.
type MailConfig struct {
	AMQPURL        string        `yaml:"amqp_url"        env:"MAIL_AMQP_URL"        env-required:"true"`
	Exchange       string        `yaml:"exchange"        env:"MAIL_EXCHANGE"        env-default:"account.mail"`
	Queue          string        `yaml:"queue"           env:"MAIL_QUEUE"           env-default:"account.mail.outgoing"`
	PublishTimeout time.Duration `yaml:"publish_timeout" env:"MAIL_PUBLISH_TIMEOUT" env-default:"5s"`
	SenderEmail    string        `yaml:"sender_email"    env:"NOTIFICATION_SENDER_EMAIL" env-default:"no-reply@localhost"`
	WebAppAddress  string        `yaml:"web_app_address" env:"WEB_APP_ADDRESS"      env-default:"http://localhost:3000"`
	SMTPHost       string        `yaml:"smtp_host"       env:"SMTP_HOST"            env-default:"localhost"`
	SMTPPort       int           `yaml:"smtp_port"       env:"SMTP_PORT"            env-default:"25"`
	SMTPUser       string        `yaml:"smtp_user"       env:"SMTP_USER"`
	SMTPPassword   string        `yaml:"smtp_password"   env:"SMTP_PASSWORD"`
	WorkerPrefetch int           `yaml:"worker_prefetch" env:"MAIL_WORKER_PREFETCH" env-default:"10"`
}

// SweeperConfig holds settings of the verification-token sweeper.
type SweeperConfig struct {
	Schedule  string `yaml:"schedule"   env:"SWEEPER_SCHEDULE"   env-default:"@every 15m"`
	BatchSize int    `yaml:"batch_size" env:"SWEEPER_BATCH_SIZE" env-default:"500"`
}

// TimeoutsConfig bounds calls to external collaborators.
type TimeoutsConfig struct {
	Database     time.Duration `yaml:"database"     env:"TIMEOUT_DATABASE"     env-default:"5s"`
	Compensation time.Duration `yaml:"compensation" env:"TIMEOUT_COMPENSATION" env-default:"10s"`
}

// RateLimitConfig holds per-IP limits of the public auth endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP"         env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TracingConfig holds OpenTelemetry settings. Tracing is disabled when Endpoint is empty.
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"     env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"account-service"`
}
