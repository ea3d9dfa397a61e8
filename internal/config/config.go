package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`
	// ProviderSecret ключ токенов платежного провайдера, обязан отличаться от JWTSecret.
	ProviderSecret string `env:"PAYMENT_PROVIDER_SECRET"`

	SuperAdminID      int64         `env:"SUPER_ADMIN_ID"`
	AdminIDs          []int64       `env:"ADMIN_IDS"`
	SupportIDs        []int64       `env:"SUPPORT_IDS"`
	SellerCancelGrace time.Duration `env:"SELLER_CANCEL_GRACE" envDefault:"5m"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	SessionTTL    time.Duration `env:"SESSION_TTL"    envDefault:"30m"`

	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC"   envDefault:"market.notifications"`

	PaymentGatewayAddress string        `env:"PAYMENT_GATEWAY_ADDRESS"`
	PaymentPollInterval   time.Duration `env:"PAYMENT_POLL_INTERVAL"   envDefault:"5s"`
}

func LoadConfig() (*Config, error) {
	// .env необязателен, переменные окружения процесса имеют приоритет над файлом.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}
	return load(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func load(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	if conf.ProviderSecret != "" && conf.ProviderSecret == conf.JWTSecret {
		return nil, errors.New("payment provider secret must differ from jwt secret")
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("market", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "", "Database migrations directory, embedded migrations if empty")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "Secret for actor bearer tokens")
	fs.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address for chat sessions")
	fs.StringVar(&flagConfig.PaymentGatewayAddress, "p", "", "Payment gateway address")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig значения из окружения приоритетнее флагов. Поля без флагов берутся из окружения как есть.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.JWTSecret = defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret)
	conf.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	conf.PaymentGatewayAddress = defaultIfBlank(envConfig.PaymentGatewayAddress, flagsConfig.PaymentGatewayAddress)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
