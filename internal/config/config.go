package config

import (
	"log"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration values.
type Config struct {
	HTTPPort           string
	DatabaseDSN        string
	LogLevel           string
	SimulationInterval time.Duration
	ClockInterval      time.Duration
	InventoryCSV       string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisChannel       string
}

// Load reads configuration from the environment (and a .env file when one
// exists) with reasonable defaults.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("database_dsn", ":memory:")
	v.SetDefault("log_level", "info")
	v.SetDefault("simulation_interval", 30*time.Second)
	v.SetDefault("clock_interval", time.Minute)
	v.SetDefault("seed_inventory_csv", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_channel", "opsboard:notifications")
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:           v.GetString("port"),
		DatabaseDSN:        v.GetString("database_dsn"),
		LogLevel:           v.GetString("log_level"),
		SimulationInterval: v.GetDuration("simulation_interval"),
		ClockInterval:      v.GetDuration("clock_interval"),
		InventoryCSV:       v.GetString("seed_inventory_csv"),
		RedisAddr:          v.GetString("redis_addr"),
		RedisPassword:      v.GetString("redis_password"),
		RedisDB:            v.GetInt("redis_db"),
		RedisChannel:       v.GetString("redis_channel"),
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		log.Printf("invalid PORT value %q, defaulting to 8080", cfg.HTTPPort)
		cfg.HTTPPort = "8080"
	}
	if cfg.SimulationInterval <= 0 {
		cfg.SimulationInterval = 30 * time.Second
	}
	if cfg.ClockInterval <= 0 {
		cfg.ClockInterval = time.Minute
	}

	return cfg
}

// RedisEnabled reports whether notifications should be fanned out to Redis.
func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
