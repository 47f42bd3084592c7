// Package config provides type-safe environment variable loading with caching.
// Each configuration type is loaded once and cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/certresolve/core/config"
//
//	type ResolverConfig struct {
//		CertDir      string        `env:"CERT_DIR,required"`
//		ParseTimeout time.Duration `env:"CERT_PARSE_TIMEOUT" envDefault:"5s"`
//	}
//
//	func main() {
//		var cfg ResolverConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 ResolverConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 ResolverConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
package config
