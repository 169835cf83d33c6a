package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the given .env files. Later files
// take precedence over earlier ones. With no arguments it loads the default
// .env from the current working directory.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Overload(filenames...); err != nil {
		return fmt.Errorf("failed to load env files %v: %w", filenames, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics if loading fails.
func MustLoadEnv(filenames ...string) {
	if err := LoadEnv(filenames...); err != nil {
		panic(err)
	}
}

// ResetCache drops all cached configurations so the next Load parses the
// environment again. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

// ForceReloadConfig re-parses the environment into v, replacing any cached
// value for its type. Use after the process environment changed.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.Lock()
	delete(globalCache.values, typeName)
	delete(globalCache.onces, typeName)
	globalCache.mu.Unlock()

	return Load(v)
}
