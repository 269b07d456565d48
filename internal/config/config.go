package config

import (
	"os"
	"strconv"
	"time"
)

type ExpiryConfig struct {
	CheckPeriod time.Duration
	AutoRelease bool
}

type Config struct {
	ServerAddress string
	Expiry        ExpiryConfig
}

func Load() Config {
	cfg := Config{
		ServerAddress: ":8080",
		Expiry: ExpiryConfig{
			CheckPeriod: 3 * time.Second,
			AutoRelease: false,
		},
	}
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		cfg.ServerAddress = addr
	}
	if period := os.Getenv("EXPIRY_CHECK_PERIOD"); period != "" {
		d, err := time.ParseDuration(period)
		if err == nil {
			cfg.Expiry.CheckPeriod = d
		}
	}
	if autoRelease := os.Getenv("EXPIRY_AUTO_RELEASE"); autoRelease != "" {
		v, err := strconv.ParseBool(autoRelease)
		if err == nil {
			cfg.Expiry.AutoRelease = v
		}
	}
	return cfg
}
