// Package config loads server settings from the environment with sane
// defaults for local use.
package config

import "github.com/spf13/viper"

type Config struct {
	Addr           string
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
	SeedData       bool
}

// Load reads configuration from STOCK_-prefixed environment variables,
// e.g. STOCK_ADDR, STOCK_JWT_SECRET, STOCK_SEED_DATA.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("stock")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("jwt_secret", "super-secret-key")
	v.SetDefault("rate_limit_rps", 50.0)
	v.SetDefault("rate_limit_burst", 100)
	v.SetDefault("seed_data", true)

	return Config{
		Addr:           v.GetString("addr"),
		JWTSecret:      v.GetString("jwt_secret"),
		RateLimitRPS:   v.GetFloat64("rate_limit_rps"),
		RateLimitBurst: v.GetInt("rate_limit_burst"),
		SeedData:       v.GetBool("seed_data"),
	}
}
