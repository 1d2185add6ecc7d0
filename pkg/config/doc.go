// Package config loads application configuration from environment
// variables and optional YAML files.
//
// Load parses env tags via caarlos0/env, pulling in a .env file once per
// process when one exists. Each configuration type is parsed once and
// cached, so independent components can load the same struct without
// re-reading the environment.
//
//	type AppConfig struct {
//		BaseURL string        `env:"CINETICK_API_BASE_URL" envDefault:"http://localhost:8080/api"`
//		Timeout time.Duration `env:"CINETICK_REQUEST_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil { ... }
//
// LoadFile decodes a YAML file into a struct, used for the optional
// per-user profiles file.
package config
