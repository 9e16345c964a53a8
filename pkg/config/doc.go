// Package config loads typed configuration from environment variables.
//
// Struct fields are mapped with github.com/caarlos0/env/v11 tags and .env
// files are read with github.com/joho/godotenv:
//
//	type Config struct {
//		DefaultCountry string `env:"PHONE_DEFAULT_COUNTRY" envDefault:"US"`
//		StrictDefault  bool   `env:"PHONE_STRICT_DEFAULT" envDefault:"false"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Each struct type is parsed once per process and cached. Tests that change
// the environment between loads call Reload or ResetCache.
package config
