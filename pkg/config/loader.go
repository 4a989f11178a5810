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
	mu     sync.RWMutex
	cache  = make(map[string]any)
	dotenv sync.Once
)

// Load populates v from environment variables according to its `env` field
// tags. A `.env` file in the working directory is loaded once per process
// before the first parse; a missing file is not an error.
//
// Each configuration type is parsed at most once: later calls for the same
// type return the cached copy, so every consumer of a config observes the
// same values regardless of environment changes after startup.
//
//	type Config struct {
//	    Destination string `env:"ARGKIT_LOG_FILE" envDefault:"argkit.log"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenv.Do(func() {
		// Missing .env is fine; the process environment still applies.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.RLock()
	cached, ok := cache[key]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = *v
	return nil
}

// MustLoad is Load that panics on failure, for configuration the process
// cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: required configuration failed to load: %v", err))
	}
}

// Reset drops every cached configuration so the next Load re-parses the
// environment. Intended for tests that mutate env vars between cases.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = make(map[string]any)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
