// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: LoadEnv
// reads one or more .env files (later files win), Load parses the environment
// into a struct by its env tags and caches the result per type so each
// configuration is parsed once per process.
//
//	type DatabaseConfig struct {
//	    Host string `env:"DB_HOST,required"`
//	    Port int    `env:"DB_PORT" envDefault:"5432"`
//	}
//
//	import "github.com/jnbao2020/saleor/pkg/config"
//
//	var db DatabaseConfig
//	if err := config.Load(&db); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// MustLoad and MustLoadEnv panic on failure for configuration the process
// cannot start without. ResetCache and ForceReloadConfig exist for tests
// that mutate the environment.
//
// Sentinel errors comparable with errors.Is: ErrParsingConfig,
// ErrInvalidConfigType, ErrConfigNotLoaded, ErrNilPointer.
package config
