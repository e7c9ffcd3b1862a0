package config

import (
	"flag"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr        = ":8080"
	defaultDatabaseDSN       = ""
	defaultGatewayBaseURL    = "http://localhost:8181"
	defaultRedisAddr         = "localhost:6379"
	defaultLogLevel          = "debug"
	defaultPaymentSweepEvery = 30 * time.Second
)

type Config struct {
	ServerAddr        string
	DatabaseDSN       string
	GatewayBaseURL    string
	GatewaySecret     string
	RedisAddr         string
	AuthTokenKey      string
	LogLevel          string
	PaymentSweepEvery time.Duration
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		// optional .env file, real environment wins
		_ = godotenv.Load()

		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "database DSN")
		flag.StringVar(&cfg.GatewayBaseURL, "g", defaultGatewayBaseURL, "payment gateway base URL")
		flag.StringVar(&cfg.RedisAddr, "r", defaultRedisAddr, "redis address")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.DurationVar(&cfg.PaymentSweepEvery, "s", defaultPaymentSweepEvery, "pending payment sweep interval")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if databaseURIEnv := os.Getenv("DATABASE_URI"); databaseURIEnv != "" {
			cfg.DatabaseDSN = databaseURIEnv
		}
		if gatewayURLEnv := os.Getenv("GATEWAY_BASE_URL"); gatewayURLEnv != "" {
			cfg.GatewayBaseURL = gatewayURLEnv
		}
		if redisAddrEnv := os.Getenv("REDIS_ADDRESS"); redisAddrEnv != "" {
			cfg.RedisAddr = redisAddrEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if sweepEnv := os.Getenv("PAYMENT_SWEEP_INTERVAL"); sweepEnv != "" {
			if d, err := time.ParseDuration(sweepEnv); err == nil {
				cfg.PaymentSweepEvery = d
			}
		}

		// secrets come from the environment only
		cfg.GatewaySecret = os.Getenv("GATEWAY_WEBHOOK_SECRET")
		cfg.AuthTokenKey = os.Getenv("AUTH_TOKEN_KEY")

		singleton = &cfg
	})

	return singleton, nil
}
