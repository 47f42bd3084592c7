package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	mu         sync.Mutex
	cache      = make(map[reflect.Type]any)
)

// Load populates cfg from environment variables using `env` struct tags.
// cfg must be a non-nil pointer to a struct. Each configuration type is parsed
// only once per process; subsequent calls for the same type return the cached
// value. A .env file in the working directory is loaded on first use if present.
func Load(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidConfigType, cfg)
	}

	dotenvOnce.Do(func() {
		// Missing .env is the normal case outside local development.
		_ = godotenv.Load()
	})

	typ := v.Elem().Type()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[typ]; ok {
		v.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParsingFailed, typ, err)
	}

	cache[typ] = v.Elem().Interface()
	return nil
}

// MustLoad is like Load but panics on failure. Useful during application startup
// where a missing required variable should abort immediately.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
