package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		OrdersRefreshInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	WordPress struct {
		BaseURL        string
		Nonce          string
		Cookie         string
		RequestTimeout time.Duration
	}

	Kafka struct {
		Brokers       string
		Topic         string
		ConsumerGroup string
		Sarama        Sarama
		Handlers      KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderCreated OrderCreated
	}

	OrderCreated struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Database  Database
		WordPress WordPress
		Kafka     Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	ordersRefreshInterval, err := osGetEnvDuration("BACKGROUND_ORDERS_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderCreatedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_CREATED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	wordpressRequestTimeout, err := osGetEnvDuration("WORDPRESS_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OrdersRefreshInterval: ordersRefreshInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		WordPress: WordPress{
			BaseURL:        os.Getenv("WORDPRESS_BASE_URL"),
			Nonce:          os.Getenv("WORDPRESS_NONCE"),
			Cookie:         os.Getenv("WORDPRESS_COOKIE"),
			RequestTimeout: wordpressRequestTimeout,
		},
		Kafka: Kafka{
			Brokers:       os.Getenv("KAFKA_BROKERS"),
			Topic:         os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderCreated: OrderCreated{
					ProcessTimeout: orderCreatedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.OrdersRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDERS_REFRESH_INTERVAL is required")
	}

	if cfg.WordPress.BaseURL == "" {
		return errors.New("WORDPRESS_BASE_URL is required")
	}
	if cfg.WordPress.RequestTimeout == time.Duration(0) {
		return errors.New("WORDPRESS_REQUEST_TIMEOUT is required")
	}
	// Nonce и Cookie опциональны: публичный rest api работает и без них.

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderCreated.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_CREATED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
