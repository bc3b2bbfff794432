package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Tracing  TracingConfig
	Search   SearchConfig
	Calendar CalendarConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Empty Addr disables the quote cache and the search rate limiter.
type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR" default:""`
	Password        string        `envconfig:"REDIS_PASSWORD" default:""`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	QuoteTTL        time.Duration `envconfig:"REDIS_QUOTE_TTL" default:"10m"`
	RateLimit       int           `envconfig:"SEARCH_RATE_LIMIT" default:"120"`
	RateLimitWindow time.Duration `envconfig:"SEARCH_RATE_LIMIT_WINDOW" default:"1m"`
}

// Empty Brokers disables the outbox publisher; events still accumulate in the outbox table.
type KafkaConfig struct {
	Brokers          string        `envconfig:"KAFKA_BROKERS" default:""`
	ReservationTopic string        `envconfig:"KAFKA_RESERVATION_TOPIC" default:"reservation.accepted"`
	OutboxPollEvery  time.Duration `envconfig:"OUTBOX_POLL_EVERY" default:"2s"`
	OutboxBatchSize  int           `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
}

type TracingConfig struct {
	Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string  `envconfig:"OTEL_SERVICE_NAME" default:"venuebook"`
	OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRatio  float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
}

type SearchConfig struct {
	GeoRadiusKm     float64       `envconfig:"SEARCH_GEO_RADIUS_KM" default:"5"`
	DefaultPageSize int           `envconfig:"SEARCH_DEFAULT_PAGE_SIZE" default:"20"`
	MaxPageSize     int           `envconfig:"SEARCH_MAX_PAGE_SIZE" default:"200"`
	// MaxResultWindow caps offset+pageSize.
	MaxResultWindow int           `envconfig:"SEARCH_MAX_RESULT_WINDOW" default:"10000"`
	MaxStay         time.Duration `envconfig:"SEARCH_MAX_STAY" default:"8784h"`
}

type CalendarConfig struct {
	FeedsFile    string        `envconfig:"CALENDAR_FEEDS_FILE" default:""`
	SyncSchedule string        `envconfig:"CALENDAR_SYNC_SCHEDULE" default:"@every 30m"`
	Horizon      time.Duration `envconfig:"CALENDAR_HORIZON" default:"4320h"`
	FetchTimeout time.Duration `envconfig:"CALENDAR_FETCH_TIMEOUT" default:"15s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is a development convenience only
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 50,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Kafka: KafkaConfig{
			ReservationTopic: "reservation.accepted",
			OutboxPollEvery:  time.Second,
			OutboxBatchSize:  10,
		},
		Tracing: TracingConfig{
			ServiceName: "venuebook-test",
			SampleRatio: 1,
		},
		Search: SearchConfig{
			GeoRadiusKm:     5,
			DefaultPageSize: 20,
			MaxPageSize:     200,
			MaxResultWindow: 10000,
			MaxStay:         366 * 24 * time.Hour,
		},
		Calendar: CalendarConfig{
			SyncSchedule: "@every 30m",
			Horizon:      180 * 24 * time.Hour,
			FetchTimeout: 5 * time.Second,
		},
	}
}
