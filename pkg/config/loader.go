package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = map[reflect.Type]any{}

	defaultEnvOnce sync.Once
)

// LoadEnv reads the given .env files into the process environment, or
// ./.env when no path is given. Variables already set are not overwritten,
// and earlier files win over later ones.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// Load fills v from the environment. A missing ./.env file is not an error.
// The first successful parse of each type is cached and later calls copy the
// cached value; failed parses are not cached.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := parse(v); err != nil {
		return err
	}
	cache[key] = *v
	return nil
}

// MustLoad is Load that panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load %T: %v", v, err))
	}
}

// Reload parses v again and replaces the cached value.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	delete(cache, key)
	if err := parse(v); err != nil {
		return err
	}
	cache[key] = *v
	return nil
}

// ResetCache drops every cached config.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}

func parse[T any](v *T) error {
	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	*v = fresh
	return nil
}
