package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fsdevblog/groph-cart/internal/taxcategories"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var ErrJWTSecretNotSet = errors.New("jwt secret is not set")

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
	JWTSecret     string `env:"JWT_SECRET"`

	DiscountRounding       bool            `env:"ROUND_DISCOUNTS"`
	DefaultCancellationFee decimal.Decimal `env:"CANCELLATION_FEE" envDefault:"0"`
	TaxCategoriesRaw       string          `env:"TAX_CATEGORIES"`
	DefaultTaxCategory     string          `env:"DEFAULT_TAX_CATEGORY"`
	CacheTTL               time.Duration   `env:"CACHE_TTL" envDefault:"24h"`

	taxCategories *taxcategories.Categories
}

// Load собирает конфиг из .env файла, переменных окружения и флагов. Переменные окружения приоритетнее флагов.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %s", err.Error())
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %w", flagsErr)
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.JWTSecret == "" {
		return nil, ErrJWTSecretNotSet
	}

	if conf.TaxCategoriesRaw != "" {
		categories, err := taxcategories.Parse(conf.DefaultTaxCategory, conf.TaxCategoriesRaw)
		if err != nil {
			return nil, fmt.Errorf("parse tax categories: %w", err)
		}
		conf.taxCategories = categories
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

// RoundDiscounts скидки корзины округляются до целого.
func (c *Config) RoundDiscounts() bool {
	return c.DiscountRounding
}

// CancellationFeeDefault комиссия за отмену покупки, если кассир не указал другую.
func (c *Config) CancellationFeeDefault() decimal.Decimal {
	return c.DefaultCancellationFee
}

// TaxCategories матрица налогов. nil, если налоги не настроены.
func (c *Config) TaxCategories() *taxcategories.Categories {
	return c.taxCategories
}

func loadFlags(flagConfig *Config, args []string) error {
	flagSet := flag.NewFlagSet("cart", flag.ContinueOnError)
	flagSet.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flagSet.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN, in-memory storage if empty")
	flagSet.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flagSet.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address in format host:port, in-memory cache if empty")

	return flagSet.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
