package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the target type.
var ErrParsingConfig = errors.New("failed to parse config from environment")

// EnvFiles are loaded once, before the first Load. Existing variables win.
var EnvFiles = []string{".env"}

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (value copy)
	mu         sync.Mutex
)

// Load fills cfg from the environment. The first successful load for a type
// is cached and copied into later calls for the same type.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(loadEnvFiles)

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("%w %s: %w", ErrParsingConfig, typ, err)
	}

	cache.Store(typ, loaded)
	*cfg = loaded

	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset clears cached configurations.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}

func loadEnvFiles() {
	for _, f := range EnvFiles {
		// Missing files are fine: the environment may be set directly.
		_ = godotenv.Load(f)
	}
}
