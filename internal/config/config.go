package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the service reads at startup. Values come
// from an optional produit.yaml next to the binary (or /etc/produit)
// and PRODUIT_* environment variables; the bare DATABASE_URL variable
// is honored too, for parity with the deployment scripts.
type Config struct {
	Addr            string  `mapstructure:"addr"`
	DatabaseURL     string  `mapstructure:"database_url"`
	RedisAddr       string  `mapstructure:"redis_addr"`
	JWTSecret       string  `mapstructure:"jwt_secret"`
	RateLimit       float64 `mapstructure:"rate_limit"`
	RateBurst       int     `mapstructure:"rate_burst"`
	CandidateCap    int     `mapstructure:"candidate_cap"`
	RatesURL        string  `mapstructure:"rates_url"`
	ScanSummaryHour int     `mapstructure:"scan_summary_hour"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("produit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/produit")

	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_addr", "")
	v.SetDefault("jwt_secret", "super-secret-key")
	v.SetDefault("rate_limit", 1.0)
	v.SetDefault("rate_burst", 3)
	v.SetDefault("candidate_cap", 10000)
	v.SetDefault("rates_url", "https://api.exchangerate-api.com/v4/latest/XAF")
	v.SetDefault("scan_summary_hour", 23)

	v.SetEnvPrefix("PRODUIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database_url", "PRODUIT_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("redis_addr", "PRODUIT_REDIS_ADDR", "REDIS_ADDR")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
