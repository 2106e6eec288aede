// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads .env files on first use (missing files are ignored) and
// uses the caarlos0/env library for parsing environment variables into
// struct fields.
//
//	var cfg hub.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure, useful at startup.
//	config.MustLoad(&cfg)
//
// Different types are cached independently. Reset drops the cache, which is
// mainly useful in tests that change the environment.
package config
