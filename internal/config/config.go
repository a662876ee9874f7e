package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort       string        `mapstructure:"SERVER_PORT"`
	GoogleMapsAPIKey string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	PostgresURL      string        `mapstructure:"POSTGRES_URL"`
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	GeocodeCacheTTL  time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`
	SearchCacheTTL   time.Duration `mapstructure:"SEARCH_CACHE_TTL"`
}

// Load reads configuration from the environment, with a .env file as
// fallback. Empty POSTGRES_URL and REDIS_ADDR leave the respective caches
// disabled.
func Load() Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("GOOGLE_MAPS_API_KEY", "")
	viper.SetDefault("POSTGRES_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("GEOCODE_CACHE_TTL", "720h")
	viper.SetDefault("SEARCH_CACHE_TTL", "1h")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
