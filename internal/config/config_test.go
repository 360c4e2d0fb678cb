package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, name := range []string{
		"RUN_ADDRESS", "DATABASE_URI", "MIGRATIONS_DIR", "REDIS_ADDR", "ROUND_DISCOUNTS",
		"CANCELLATION_FEE", "TAX_CATEGORIES", "DEFAULT_TAX_CATEGORY", "CACHE_TTL",
	} {
		unsetenv(s.T(), name)
	}
	s.T().Setenv("JWT_SECRET", "secret")
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := Load(nil)
	s.Require().NoError(err)
	s.Equal("localhost:8080", conf.RunAddress)
	s.Empty(conf.DatabaseDSN)
	s.Empty(conf.RedisAddr)
	s.Equal(24*time.Hour, conf.CacheTTL)
	s.False(conf.RoundDiscounts())
	s.True(conf.CancellationFeeDefault().IsZero())
	s.Nil(conf.TaxCategories())
}

func (s *ConfigTestSuite) TestEnvOverridesFlags() {
	s.T().Setenv("DATABASE_URI", "postgres://env")
	conf, err := Load([]string{"-a", ":9090", "-d", "postgres://flag", "-r", "localhost:6379"})
	s.Require().NoError(err)
	s.Equal(":9090", conf.RunAddress)
	s.Equal("postgres://env", conf.DatabaseDSN)
	s.Equal("localhost:6379", conf.RedisAddr)
}

func (s *ConfigTestSuite) TestSettings() {
	s.T().Setenv("ROUND_DISCOUNTS", "true")
	s.T().Setenv("CANCELLATION_FEE", "2.50")
	s.T().Setenv("TAX_CATEGORIES", "A:20 B:10")
	s.T().Setenv("DEFAULT_TAX_CATEGORY", "A")
	s.T().Setenv("CACHE_TTL", "1h")

	conf, err := Load(nil)
	s.Require().NoError(err)
	s.True(conf.RoundDiscounts())
	s.True(decimal.RequireFromString("2.5").Equal(conf.CancellationFeeDefault()))
	s.Equal(time.Hour, conf.CacheTTL)
	s.Require().NotNil(conf.TaxCategories())
	s.Equal("A", conf.TaxCategories().DefaultCategory())
}

func (s *ConfigTestSuite) TestErrors() {
	s.T().Setenv("TAX_CATEGORIES", "A:x")
	_, err := Load(nil)
	s.Require().Error(err)

	unsetenv(s.T(), "TAX_CATEGORIES")
	unsetenv(s.T(), "JWT_SECRET")
	_, err = Load(nil)
	s.Require().ErrorIs(err, ErrJWTSecretNotSet)

	s.T().Setenv("JWT_SECRET", "secret")
	_, err = Load([]string{"-unknown"})
	s.Require().Error(err)
}

// unsetenv удаляет переменную окружения на время теста.
func unsetenv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		t.Fatal(err)
	}
}
